package docmail

// Document is an ordered sequence of paragraphs supplied by a document
// source (for example the htmlsource package). It is built once per fetch
// and never mutated; every conversion over it is a pure function.
type Document struct {
	Paragraphs []Paragraph
}

// Paragraph is one block of the document: its runs in order, plus optional
// heading and list metadata. Heading takes precedence over list membership
// when both are set.
type Paragraph struct {
	Runs []TextRun

	// HeadingLevel is 1-6 for headings, 0 for body text.
	HeadingLevel int

	// Bullet marks list membership. Rendering flattens all nesting levels
	// to a single level.
	Bullet *Bullet
}

// Bullet identifies the list a paragraph belongs to.
type Bullet struct {
	ListID       string
	NestingLevel int
}

// TextRun is a contiguous span of text sharing one style.
type TextRun struct {
	Content string
	Style   TextStyle
}

// TextStyle holds the inline attributes of a run. Zero values mean unset:
// FontSizePt 0 and nil colors emit nothing.
type TextStyle struct {
	Bold          bool
	Italic        bool
	Underline     bool
	Strikethrough bool
	LinkURL       string
	FontSizePt    float64
	FontFamily    string
	Foreground    *Color
	Background    *Color
}

// Color is an RGB triple with channels normalized to [0,1], as delivered
// by document APIs. Rendering converts each channel via round(c*255)
// clamped to [0,255].
type Color struct {
	Red   float64
	Green float64
	Blue  float64
}

// Template is the parsed result of a composed document: the subject line,
// the plain-text body shown in editors, and the HTML body used for sending.
// Missing sections are empty strings, not errors.
type Template struct {
	Subject  string
	BodyText string
	BodyHTML string
}
