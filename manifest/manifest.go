// Package manifest provides a declarative YAML form of the annotation
// chains in package annotate. Build scripts that apply the same annotation
// sets across many services keep them in a manifest file (locally or in a
// shared git repository) instead of repeating the With* calls.
package manifest

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// SupportedVersion is the manifest format version this package understands.
const SupportedVersion = 1

// JSONOptions selects the JSON codec directions for a type entry.
type JSONOptions struct {
	Marshal   bool `yaml:"marshal"`
	Unmarshal bool `yaml:"unmarshal"`
}

// FieldGroup applies per-field annotations to fields of the (single) type
// of the enclosing entry.
type FieldGroup struct {
	// Field names, relative to the type path of the enclosing entry.
	// [required]
	Names []string `yaml:"names"`
	// Builder setter policy for these fields: "convert" or "optional".
	// [optional]
	Builder string `yaml:"builder,omitempty"`
	// Extra literal annotation lines for these fields.
	// [optional]
	Attrs []string `yaml:"attrs,omitempty"`
}

// TypeEntry annotates one or more types. Families are applied in a fixed
// order (json, jsonAdapter, sql, builder, enum, attrs, then field groups);
// entries needing a different interleaving use multiple entries.
type TypeEntry struct {
	// Fully qualified type paths ("package.Type") the entry applies to.
	// [required]
	Paths []string `yaml:"paths"`
	// JSON codec directions.
	// [optional]
	JSON *JSONOptions `yaml:"json,omitempty"`
	// Enables adapter-based JSON codecs. Requires a single path.
	// [optional]
	JSONAdapter bool `yaml:"jsonAdapter,omitempty"`
	// SQL mapping family: "type" or "row".
	// [optional]
	SQL string `yaml:"sql,omitempty"`
	// Enables builder generation for the types.
	// [optional]
	Builder bool `yaml:"builder,omitempty"`
	// Enum family: "string" enables string conversion for enum types.
	// [optional]
	Enum string `yaml:"enum,omitempty"`
	// Extra literal annotation lines attached at type level.
	// [optional]
	Attrs []string `yaml:"attrs,omitempty"`
	// Per-field annotations. Requires a single path.
	// [optional]
	Fields []*FieldGroup `yaml:"fields,omitempty"`
}

// FieldEntry attaches literal annotation lines to fully qualified field
// paths ("package.Type.field").
type FieldEntry struct {
	// [required]
	Paths []string `yaml:"paths"`
	// [required]
	Attrs []string `yaml:"attrs"`
}

// Manifest is the root of an annotation manifest document.
type Manifest struct {
	// Manifest format version. Must be 1.
	// [required]
	Version int `yaml:"version"`
	// Type-level entries, applied in document order.
	// [optional]
	Types []*TypeEntry `yaml:"types,omitempty"`
	// Field-level entries, applied after all type entries.
	// [optional]
	Fields []*FieldEntry `yaml:"fields,omitempty"`
}

// Load reads, decodes and validates a manifest. Unknown YAML fields are
// rejected.
func Load(r io.Reader) (*Manifest, error) {
	bs, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("could not read manifest: %v", err)
	}
	if err := validateSchema(bs); err != nil {
		return nil, err
	}
	dec := yaml.NewDecoder(bytes.NewReader(bs))
	dec.KnownFields(true)
	var m Manifest
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("invalid manifest YAML: %v", err)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// LoadFile is Load for a manifest on the local filesystem.
func LoadFile(path string) (*Manifest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open manifest %q: %v", path, err)
	}
	defer f.Close()
	m, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("manifest %q: %w", path, err)
	}
	return m, nil
}
