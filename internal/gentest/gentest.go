// Package gentest plays the role of the external idlgen generator in tests.
// It renders Go-like source for a fixed schema fixture, placing recorded
// annotations directly above the declarations they were attached to. There
// is no schema parsing: the fixture is declared as Go data.
package gentest

import (
	"fmt"
	"strings"

	"github.com/dnswlt/idlattr/annotate"
)

type Field struct {
	Name   string // schema field name, e.g. "created_at"
	GoName string // generated field name, e.g. "CreatedAt"
	GoType string
}

type Message struct {
	Name   string
	Fields []Field
}

type Enum struct {
	Name   string
	Values []string
}

type Schema struct {
	Package  string
	Messages []Message
	Enums    []Enum
}

// TodoSchema returns the fixture schema used throughout the tests: a todo
// package with one annotatable message, an enum and the usual request types.
func TodoSchema() *Schema {
	return &Schema{
		Package: "todo",
		Messages: []Message{
			{
				Name: "Todo",
				Fields: []Field{
					{Name: "id", GoName: "Id", GoType: "string"},
					{Name: "title", GoName: "Title", GoType: "string"},
					{Name: "description", GoName: "Description", GoType: "string"},
					{Name: "status", GoName: "Status", GoType: "TodoStatus"},
					{Name: "created_at", GoName: "CreatedAt", GoType: "*Timestamp"},
					{Name: "updated_at", GoName: "UpdatedAt", GoType: "*Timestamp"},
				},
			},
			{
				Name: "CreateTodoRequest",
				Fields: []Field{
					{Name: "title", GoName: "Title", GoType: "string"},
					{Name: "description", GoName: "Description", GoType: "string"},
				},
			},
			{
				Name: "DeleteTodoRequest",
				Fields: []Field{
					{Name: "id", GoName: "Id", GoType: "string"},
				},
			},
		},
		Enums: []Enum{
			{Name: "TodoStatus", Values: []string{"TODO_STATUS_DOING", "TODO_STATUS_DONE"}},
		},
	}
}

// Render emits the generated source for s, interleaving the annotations
// recorded in rec: type-level annotations appear immediately above the type
// declaration, field-level annotations immediately above the field, each in
// attachment order. Empty annotation texts are attached but contribute no
// lines, matching generator behavior.
func Render(s *Schema, rec *annotate.Recorder) string {
	var b strings.Builder
	fmt.Fprintf(&b, "package %s\n", s.Package)
	for _, m := range s.Messages {
		b.WriteString("\n")
		writeAttrs(&b, rec.TypeAttrs(s.Package+"."+m.Name), "")
		fmt.Fprintf(&b, "type %s struct {\n", m.Name)
		for _, f := range m.Fields {
			writeAttrs(&b, rec.FieldAttrs(s.Package+"."+m.Name+"."+f.Name), "\t")
			fmt.Fprintf(&b, "\t%s %s\n", f.GoName, f.GoType)
		}
		b.WriteString("}\n")
	}
	for _, e := range s.Enums {
		b.WriteString("\n")
		writeAttrs(&b, rec.TypeAttrs(s.Package+"."+e.Name), "")
		fmt.Fprintf(&b, "type %s int32\n\nconst (\n", e.Name)
		for i, v := range e.Values {
			fmt.Fprintf(&b, "\t%s %s = %d\n", v, e.Name, i)
		}
		b.WriteString(")\n")
	}
	return b.String()
}

func writeAttrs(b *strings.Builder, attrs []string, indent string) {
	for _, attr := range attrs {
		if attr == "" {
			continue
		}
		for _, line := range strings.Split(attr, "\n") {
			b.WriteString(indent)
			b.WriteString(line)
			b.WriteString("\n")
		}
	}
}
