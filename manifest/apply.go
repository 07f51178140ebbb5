package manifest

import (
	"github.com/dnswlt/idlattr/annotate"
)

// Apply replays the manifest onto cfg through an Annotator and returns cfg
// for chaining. Type entries are applied in document order, field entries
// after all type entries. Within a type entry the order is: json,
// jsonAdapter, sql, builder, enum, attrs, field groups.
//
// Apply assumes a validated manifest (Load validates); applying an invalid
// manifest silently forwards whatever the entries contain.
func (m *Manifest) Apply(cfg annotate.Config) annotate.Config {
	a := annotate.New(cfg)
	for _, e := range m.Types {
		e.apply(a)
	}
	for _, e := range m.Fields {
		a.WithFieldAttributes(e.Paths, e.Attrs)
	}
	return a.Config()
}

func (e *TypeEntry) apply(a *annotate.Annotator) {
	if e.JSON != nil {
		a.WithJSON(e.Paths, e.JSON.Marshal, e.JSON.Unmarshal, nil)
	}
	if e.JSONAdapter {
		a.WithJSONAdapter(e.Paths[0], nil)
	}
	switch e.SQL {
	case "type":
		a.WithSQLType(e.Paths, nil)
	case "row":
		a.WithSQLRow(e.Paths, nil)
	}
	if e.Builder {
		a.WithBuilder(e.Paths, nil)
	}
	if e.Enum == "string" {
		a.WithEnumString(e.Paths, nil)
	}
	a.WithOptionalTypeAttributes(e.Paths, e.Attrs)
	for _, g := range e.Fields {
		g.apply(a, e.Paths[0])
	}
}

func (g *FieldGroup) apply(a *annotate.Annotator, path string) {
	switch g.Builder {
	case "convert":
		a.WithBuilderConvert(path, g.Names)
	case "optional":
		a.WithBuilderOptional(path, g.Names)
	}
	if len(g.Attrs) > 0 {
		paths := make([]string, len(g.Names))
		for i, n := range g.Names {
			paths[i] = path + "." + n
		}
		a.WithFieldAttributes(paths, g.Attrs)
	}
}
