package annotate

// This file contains the catalog of well-known annotation literals.
// All annotations use the idlgen directive syntax:
//
//	//idlgen:<family>[ <options>]
//
// Type-level directives are emitted by the generator directly above the
// generated type declaration, field-level directives directly above the
// generated field. The functions here only produce the literal text; they
// never touch a generator configuration.

// JSONAttr returns the directive enabling JSON codec generation for a type.
// Marshalling and unmarshalling can be requested independently. Requesting
// neither yields the empty string: the attachment still happens, but
// contributes no text.
func JSONAttr(marshal, unmarshal bool) string {
	switch {
	case marshal && unmarshal:
		return "//idlgen:json"
	case marshal:
		return "//idlgen:json marshal"
	case unmarshal:
		return "//idlgen:json unmarshal"
	}
	return ""
}

// JSONAdapterAttr returns the directives enabling adapter-based JSON codecs
// (per-field representation adapters) together with omission of absent
// optional fields.
func JSONAdapterAttr() string {
	return "//idlgen:json adapter\n//idlgen:json omitempty"
}

// SQLTypeAttr returns the directive that makes the generator emit SQL
// scan/value conversions for a type (typically an enum stored as its
// database representation).
func SQLTypeAttr() string {
	return "//idlgen:sql type"
}

// SQLRowAttr returns the directive that makes the generator emit a
// row-to-struct scanning helper for a message type.
func SQLRowAttr() string {
	return "//idlgen:sql row"
}

// BuilderAttr returns the bare type-level marker enabling builder
// generation. Per-field setter behavior is selected separately via
// BuilderConvertAttr and BuilderOptionalAttr.
func BuilderAttr() string {
	return "//idlgen:builder"
}

// BuilderConvertAttr returns the field-level builder policy: a setter that
// converts compatible argument types, with the zero value used when the
// field is never set.
func BuilderConvertAttr() string {
	return "//idlgen:builder convert,default"
}

// BuilderOptionalAttr returns the field-level builder policy for optional
// fields: like BuilderConvertAttr, but the setter additionally strips the
// optional wrapper from its argument.
func BuilderOptionalAttr() string {
	return "//idlgen:builder convert,optional,default"
}

// EnumStringAttr returns the directive enabling string conversion for an
// enum: a String method, parsing from the string form, and iteration over
// all values.
func EnumStringAttr() string {
	return "//idlgen:enum string,parse,values"
}
