// Package annotate decorates the configuration of an idlgen code generator
// with extra annotations for the types and fields it is about to emit.
//
// The generator owns schema parsing and code emission; this package only
// reduces the string-matching boilerplate of its attribute-injection hooks.
// A build script wraps the generator configuration in an Annotator, chains
// the annotation families it needs, and hands the configuration back to the
// generator:
//
//	cfg := idlgen.NewConfig()
//	annotate.New(cfg).
//		WithJSON([]string{"todo.Todo", "todo.TodoStatus"}, true, true, nil).
//		WithSQLType([]string{"todo.TodoStatus"}, nil).
//		WithBuilder([]string{"todo.Todo"}, nil)
//	idlgen.Generate(cfg, ...)
//
// Paths are the fully qualified schema names of the generated declarations
// ("package.Type" for types, "package.Type.field" for fields). They are
// forwarded verbatim; unknown paths are detected by the generator, not here.
package annotate

import "strings"

// Config is the attribute-injection surface of a generator configuration.
// Both the message generator and the service stub generator expose it.
// Annotations attached to the same path accumulate in call order.
type Config interface {
	// TypeAttribute attaches literal annotation text to the type identified
	// by path (e.g. "todo.Todo").
	TypeAttribute(path, attribute string)
	// FieldAttribute attaches literal annotation text to the field
	// identified by path (e.g. "todo.Todo.title").
	FieldAttribute(path, attribute string)
}

// FieldGroup assigns one annotation to a set of fields of a single type.
// Field names are relative to the type the group is applied to.
type FieldGroup struct {
	Fields []string
	Attr   string
}

// Annotator applies annotation families to a generator Config. All methods
// return the Annotator so calls can be chained; the decorated configuration
// is retrieved with Config. Create one with New.
type Annotator struct {
	cfg Config
}

// New returns an Annotator decorating cfg. The Annotator borrows cfg for the
// duration of the call chain; it never copies or replaces it.
func New(cfg Config) *Annotator {
	return &Annotator{cfg: cfg}
}

// Config returns the decorated configuration handle.
func (a *Annotator) Config() Config {
	return a.cfg
}

// WithJSON attaches the JSON codec directive (see JSONAttr) to every path,
// followed by the extra annotations, if any.
func (a *Annotator) WithJSON(paths []string, marshal, unmarshal bool, extra []string) *Annotator {
	attr := JSONAttr(marshal, unmarshal)
	for _, p := range paths {
		a.cfg.TypeAttribute(p, attr)
		a.WithOptionalTypeAttributes([]string{p}, extra)
	}
	return a
}

// WithJSONAdapter enables adapter-based JSON codecs on the type at path and
// attaches each group's annotation to the group's fields of that type. The
// adapter mode is type-level while the adapter choice per field is
// field-level, so this is the one operation that targets both.
func (a *Annotator) WithJSONAdapter(path string, fields []FieldGroup) *Annotator {
	a.cfg.TypeAttribute(path, JSONAdapterAttr())
	for _, g := range fields {
		for _, f := range g.Fields {
			a.cfg.FieldAttribute(path+"."+f, g.Attr)
		}
	}
	return a
}

// WithSQLType attaches the SQL scan/value directive (see SQLTypeAttr) to
// every path, followed by the extra annotations, if any.
func (a *Annotator) WithSQLType(paths []string, extra []string) *Annotator {
	for _, p := range paths {
		a.cfg.TypeAttribute(p, SQLTypeAttr())
		a.WithOptionalTypeAttributes([]string{p}, extra)
	}
	return a
}

// WithSQLRow attaches the row-scanning directive (see SQLRowAttr) to every
// path, followed by the extra annotations, if any.
func (a *Annotator) WithSQLRow(paths []string, extra []string) *Annotator {
	for _, p := range paths {
		a.cfg.TypeAttribute(p, SQLRowAttr())
		a.WithOptionalTypeAttributes([]string{p}, extra)
	}
	return a
}

// WithBuilder attaches the builder marker (see BuilderAttr) to every path,
// followed by the extra annotations, if any. Setter behavior per field is
// selected with WithBuilderConvert and WithBuilderOptional.
func (a *Annotator) WithBuilder(paths []string, extra []string) *Annotator {
	for _, p := range paths {
		a.cfg.TypeAttribute(p, BuilderAttr())
		a.WithOptionalTypeAttributes([]string{p}, extra)
	}
	return a
}

// WithBuilderConvert attaches the converting-setter builder policy to the
// named fields of the type at path.
func (a *Annotator) WithBuilderConvert(path string, fields []string) *Annotator {
	for _, f := range fields {
		a.cfg.FieldAttribute(path+"."+f, BuilderConvertAttr())
	}
	return a
}

// WithBuilderOptional attaches the optional-stripping builder policy to the
// named fields of the type at path.
func (a *Annotator) WithBuilderOptional(path string, fields []string) *Annotator {
	for _, f := range fields {
		a.cfg.FieldAttribute(path+"."+f, BuilderOptionalAttr())
	}
	return a
}

// WithEnumString attaches the enum string-conversion directive (see
// EnumStringAttr) to every path, followed by the extra annotations, if any.
func (a *Annotator) WithEnumString(paths []string, extra []string) *Annotator {
	for _, p := range paths {
		a.cfg.TypeAttribute(p, EnumStringAttr())
		a.WithOptionalTypeAttributes([]string{p}, extra)
	}
	return a
}

// WithTypeAttributes attaches the given annotation lines, joined by
// newlines, to every path as a type-level annotation.
func (a *Annotator) WithTypeAttributes(paths []string, attrs []string) *Annotator {
	attr := strings.Join(attrs, "\n")
	for _, p := range paths {
		a.cfg.TypeAttribute(p, attr)
	}
	return a
}

// WithFieldAttributes attaches the given annotation lines, joined by
// newlines, to every path as a field-level annotation.
func (a *Annotator) WithFieldAttributes(paths []string, attrs []string) *Annotator {
	attr := strings.Join(attrs, "\n")
	for _, p := range paths {
		a.cfg.FieldAttribute(p, attr)
	}
	return a
}

// WithOptionalTypeAttributes is WithTypeAttributes when attrs is non-nil and
// a no-op otherwise. It carries the "optional trailing extras" contract of
// the family operations in one place.
func (a *Annotator) WithOptionalTypeAttributes(paths []string, attrs []string) *Annotator {
	if attrs == nil {
		return a
	}
	return a.WithTypeAttributes(paths, attrs)
}

// WithOptionalFieldAttributes is WithFieldAttributes when attrs is non-nil
// and a no-op otherwise.
func (a *Annotator) WithOptionalFieldAttributes(paths []string, attrs []string) *Annotator {
	if attrs == nil {
		return a
	}
	return a.WithFieldAttributes(paths, attrs)
}
