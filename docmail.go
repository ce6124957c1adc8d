package docmail

import (
	"fmt"

	"github.com/mwellner/go-docmail/internal/pipeline"
)

// Compile-time interface implementation checks.
// These ensure implementations satisfy their interfaces at compile time,
// catching signature mismatches before runtime.
var (
	_ pipeline.SectionSplitter = (*pipeline.MarkerSplitter)(nil)
	_ pipeline.Transcoder      = (*pipeline.RewriteTranscoder)(nil)
	_ pipeline.PreviewRenderer = (*pipeline.TextPreview)(nil)
)

// Default stage instances backing the package-level functions. All stages
// are stateless, so sharing them across goroutines is safe.
var (
	defaultSplitter   = pipeline.NewMarkerSplitter(pipeline.DefaultSubjectMarker, pipeline.DefaultBodyMarker)
	defaultTranscoder pipeline.RewriteTranscoder
	defaultPreview    pipeline.TextPreview
)

// Sections is a document split into its subject and body parts. Empty
// fields mean the corresponding marker was not found.
type Sections struct {
	Subject string
	Body    string
}

// Composer turns a structured document into a mail template. Create one
// with NewComposer; the zero configuration uses the standard
// ===SUBJECT=== / ===BODY=== markers.
type Composer struct {
	subjectWord string
	bodyWord    string
	splitter    pipeline.SectionSplitter
}

// Option customizes a Composer.
type Option func(*Composer)

// WithSectionMarkers overrides the marker words used to delimit the two
// sections. The === frame around the word is fixed. Empty words keep the
// defaults.
func WithSectionMarkers(subjectWord, bodyWord string) Option {
	return func(c *Composer) {
		if subjectWord != "" {
			c.subjectWord = subjectWord
		}
		if bodyWord != "" {
			c.bodyWord = bodyWord
		}
	}
}

// NewComposer creates a Composer with default configuration.
func NewComposer(opts ...Option) *Composer {
	c := &Composer{
		subjectWord: pipeline.DefaultSubjectMarker,
		bodyWord:    pipeline.DefaultBodyMarker,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.splitter = pipeline.NewMarkerSplitter(c.subjectWord, c.bodyWord)
	return c
}

// Compose renders the document to text and HTML and splits both into
// sections. The subject and plain body come from the text rendering, the
// HTML body from the HTML rendering.
//
// Missing markers are not errors: the affected fields stay empty and a
// human-readable warning is returned for each, so callers can surface the
// degraded content to the user.
func (c *Composer) Compose(doc Document) (Template, []string) {
	textSections := c.splitter.SplitText(ExtractText(doc))
	htmlSections := c.splitter.SplitHTML(RenderHTML(doc))

	tmpl := Template{
		Subject:  textSections.Subject,
		BodyText: textSections.Body,
		BodyHTML: htmlSections.Body,
	}

	var warnings []string
	if tmpl.Subject == "" {
		warnings = append(warnings, fmt.Sprintf("no ===%s=== section found; subject is empty", c.subjectWord))
	}
	if tmpl.BodyText == "" && tmpl.BodyHTML == "" {
		warnings = append(warnings, fmt.Sprintf("no ===%s=== section found; body is empty", c.bodyWord))
	}
	return tmpl, warnings
}

// SplitSectionsText splits plain text on the default section markers.
func SplitSectionsText(text string) Sections {
	return Sections(defaultSplitter.SplitText(text))
}

// SplitSectionsHTML splits HTML on the default section markers. The
// subject comes back tag-free with collapsed whitespace; the body keeps
// its markup.
func SplitSectionsHTML(html string) Sections {
	return Sections(defaultSplitter.SplitHTML(html))
}

// HTMLToMarkdown rewrites mail-body HTML into the Markdown-like syntax
// used for editing. The conversion is lossy and idempotent on its own
// output.
func HTMLToMarkdown(html string) string {
	return defaultTranscoder.ToMarkdown(html)
}

// MarkdownToHTML rewrites edited Markdown back into mail-body HTML.
func MarkdownToHTML(markdown string) string {
	return defaultTranscoder.ToHTML(markdown)
}

// RenderPreview renders HTML into a plain-text approximation for
// on-screen feedback. Never send the preview; it is presentation-only.
func RenderPreview(html string) string {
	return defaultPreview.Render(html)
}
