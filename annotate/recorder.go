package annotate

// Level distinguishes type-level from field-level attachments.
type Level int

const (
	TypeLevel Level = iota
	FieldLevel
)

func (l Level) String() string {
	if l == FieldLevel {
		return "field"
	}
	return "type"
}

// Attachment is one annotation attached to one path.
type Attachment struct {
	Level Level
	Path  string
	Attr  string
}

// Recorder is a Config implementation that records attachments in call
// order. It backs the idlattr preview command and can be used to test build
// scripts without running a generator.
type Recorder struct {
	attachments []Attachment
}

func (r *Recorder) TypeAttribute(path, attribute string) {
	r.attachments = append(r.attachments, Attachment{Level: TypeLevel, Path: path, Attr: attribute})
}

func (r *Recorder) FieldAttribute(path, attribute string) {
	r.attachments = append(r.attachments, Attachment{Level: FieldLevel, Path: path, Attr: attribute})
}

// Attachments returns all recorded attachments in call order.
func (r *Recorder) Attachments() []Attachment {
	return r.attachments
}

// TypeAttrs returns the type-level annotation texts attached to path, in
// call order.
func (r *Recorder) TypeAttrs(path string) []string {
	return r.attrs(TypeLevel, path)
}

// FieldAttrs returns the field-level annotation texts attached to path, in
// call order.
func (r *Recorder) FieldAttrs(path string) []string {
	return r.attrs(FieldLevel, path)
}

func (r *Recorder) attrs(level Level, path string) []string {
	var attrs []string
	for _, at := range r.attachments {
		if at.Level == level && at.Path == path {
			attrs = append(attrs, at.Attr)
		}
	}
	return attrs
}
