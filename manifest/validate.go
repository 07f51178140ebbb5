package manifest

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

//go:embed schema.json
var schemaJSON string

var schema = jsonschema.MustCompileString("manifest-schema.json", schemaJSON)

// segmentRegex validates one segment of a dotted schema path. Segments
// follow IDL identifier rules: a letter or underscore followed by letters,
// digits and underscores.
var segmentRegex = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// validateSchema checks the raw YAML document against the embedded JSON
// Schema. The YAML value is round-tripped through encoding/json first, since
// the schema validator expects JSON-decoded values.
func validateSchema(bs []byte) error {
	var doc any
	if err := yaml.Unmarshal(bs, &doc); err != nil {
		return fmt.Errorf("invalid manifest YAML: %v", err)
	}
	js, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("manifest is not representable as JSON: %v", err)
	}
	var jsonDoc any
	if err := json.Unmarshal(js, &jsonDoc); err != nil {
		return fmt.Errorf("manifest is not representable as JSON: %v", err)
	}
	if err := schema.Validate(jsonDoc); err != nil {
		return fmt.Errorf("manifest does not match schema: %v", err)
	}
	return nil
}

// IsValidPath reports whether s is a well-formed dotted schema path
// (non-empty identifier segments separated by single dots). This is manifest
// lint only: the annotate package forwards any path verbatim.
func IsValidPath(s string) bool {
	if s == "" {
		return false
	}
	for _, seg := range strings.Split(s, ".") {
		if !segmentRegex.MatchString(seg) {
			return false
		}
	}
	return true
}

// Validate checks the semantic rules the JSON Schema cannot express
// (path shapes, cross-field constraints).
func (m *Manifest) Validate() error {
	if m.Version != SupportedVersion {
		return fmt.Errorf("unsupported manifest version %d (supported: %d)", m.Version, SupportedVersion)
	}
	for i, e := range m.Types {
		if err := e.validate(); err != nil {
			return fmt.Errorf("types[%d]: %w", i, err)
		}
	}
	for i, e := range m.Fields {
		if err := e.validate(); err != nil {
			return fmt.Errorf("fields[%d]: %w", i, err)
		}
	}
	return nil
}

func (e *TypeEntry) validate() error {
	if len(e.Paths) == 0 {
		return fmt.Errorf("entry has no paths")
	}
	for _, p := range e.Paths {
		if !IsValidPath(p) {
			return fmt.Errorf("invalid path %q", p)
		}
	}
	switch e.SQL {
	case "", "type", "row":
	default:
		return fmt.Errorf("invalid sql family %q (must be \"type\" or \"row\")", e.SQL)
	}
	switch e.Enum {
	case "", "string":
	default:
		return fmt.Errorf("invalid enum family %q (must be \"string\")", e.Enum)
	}
	if e.JSONAdapter && len(e.Paths) != 1 {
		return fmt.Errorf("jsonAdapter requires exactly one path, got %d", len(e.Paths))
	}
	if len(e.Fields) > 0 && len(e.Paths) != 1 {
		return fmt.Errorf("field groups require exactly one path, got %d", len(e.Paths))
	}
	for i, g := range e.Fields {
		if err := g.validate(); err != nil {
			return fmt.Errorf("fields[%d]: %w", i, err)
		}
	}
	return nil
}

func (g *FieldGroup) validate() error {
	if len(g.Names) == 0 {
		return fmt.Errorf("field group has no names")
	}
	for _, n := range g.Names {
		if !segmentRegex.MatchString(n) {
			return fmt.Errorf("invalid field name %q", n)
		}
	}
	switch g.Builder {
	case "", "convert", "optional":
	default:
		return fmt.Errorf("invalid builder policy %q (must be \"convert\" or \"optional\")", g.Builder)
	}
	if g.Builder == "" && len(g.Attrs) == 0 {
		return fmt.Errorf("field group has no effect (neither builder policy nor attrs)")
	}
	return nil
}

func (e *FieldEntry) validate() error {
	if len(e.Paths) == 0 {
		return fmt.Errorf("entry has no paths")
	}
	for _, p := range e.Paths {
		if !IsValidPath(p) {
			return fmt.Errorf("invalid path %q", p)
		}
	}
	if len(e.Attrs) == 0 {
		return fmt.Errorf("entry has no attrs")
	}
	return nil
}
