package manifest_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dnswlt/idlattr/annotate"
	"github.com/dnswlt/idlattr/manifest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFile(t *testing.T) {
	m, err := manifest.LoadFile(filepath.Join("testdata", "todo.yaml"))
	require.NoError(t, err)

	assert.Equal(t, manifest.SupportedVersion, m.Version)
	require.Len(t, m.Types, 4)
	assert.Equal(t, []string{"todo.Todo", "todo.TodoStatus"}, m.Types[0].Paths)
	require.NotNil(t, m.Types[0].JSON)
	assert.True(t, m.Types[0].JSON.Marshal)
	assert.True(t, m.Types[0].JSON.Unmarshal)
	assert.Equal(t, "type", m.Types[1].SQL)
	assert.Equal(t, "string", m.Types[1].Enum)
	assert.True(t, m.Types[2].Builder)
	require.Len(t, m.Types[2].Fields, 2)
	assert.Equal(t, "optional", m.Types[2].Fields[1].Builder)
	assert.Equal(t, "row", m.Types[3].SQL)
	require.Len(t, m.Fields, 1)
}

// The manifest form and the equivalent hand-written annotation chain must
// produce identical attachments.
func TestApplyMatchesHandWrittenChain(t *testing.T) {
	m, err := manifest.LoadFile(filepath.Join("testdata", "todo.yaml"))
	require.NoError(t, err)

	fromManifest := &annotate.Recorder{}
	m.Apply(fromManifest)

	byHand := &annotate.Recorder{}
	annotate.New(byHand).
		WithJSON([]string{"todo.Todo", "todo.TodoStatus"}, true, true, nil).
		WithTypeAttributes([]string{"todo.Todo", "todo.TodoStatus"},
			[]string{"//idlgen:deepcopy"}).
		WithSQLType([]string{"todo.TodoStatus"}, nil).
		WithEnumString([]string{"todo.TodoStatus"}, nil).
		WithBuilder([]string{"todo.Todo"}, nil).
		WithBuilderConvert("todo.Todo", []string{"id", "title", "status"}).
		WithBuilderOptional("todo.Todo", []string{"created_at", "updated_at"}).
		WithSQLRow([]string{"todo.Todo"}, nil).
		WithFieldAttributes(
			[]string{"todo.Todo.created_at", "todo.Todo.updated_at"},
			[]string{"//idlgen:shallow"})

	assert.Equal(t, byHand.Attachments(), fromManifest.Attachments())
}

func TestApplyReturnsSameHandle(t *testing.T) {
	m, err := manifest.LoadFile(filepath.Join("testdata", "todo.yaml"))
	require.NoError(t, err)

	rec := &annotate.Recorder{}
	got := m.Apply(rec)
	assert.Same(t, rec, got)
}

func TestLoadRejectsUnknownFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	content := "version: 1\ntypes:\n  - paths: [todo.Todo]\n    serde: true\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	_, err := manifest.LoadFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema")
}
