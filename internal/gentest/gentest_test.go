package gentest

import (
	"strings"
	"testing"

	"github.com/dnswlt/idlattr/annotate"
)

func TestRenderWithoutAnnotations(t *testing.T) {
	src := Render(TodoSchema(), &annotate.Recorder{})

	if strings.Contains(src, "//idlgen:") {
		t.Errorf("unannotated render contains directive lines:\n%s", src)
	}
	for _, decl := range []string{
		"type Todo struct {",
		"type CreateTodoRequest struct {",
		"type TodoStatus int32",
		"TODO_STATUS_DONE TodoStatus = 1",
	} {
		if !strings.Contains(src, decl) {
			t.Errorf("render is missing %q:\n%s", decl, src)
		}
	}
}

func TestRenderPlacesFieldAnnotationsAboveField(t *testing.T) {
	rec := &annotate.Recorder{}
	rec.FieldAttribute("todo.Todo.created_at", "//idlgen:shallow")

	src := Render(TodoSchema(), rec)

	if !strings.Contains(src, "\t//idlgen:shallow\n\tCreatedAt *Timestamp") {
		t.Errorf("field annotation not directly above CreatedAt:\n%s", src)
	}
}
