package pipeline

import (
	"fmt"
	"regexp"
	"strings"
)

// Default marker words for the two document sections.
const (
	DefaultSubjectMarker = "SUBJECT"
	DefaultBodyMarker    = "BODY"
)

// Sections is the result of splitting a document on its section markers.
// A section whose marker was not found is the empty string; absence is a
// degraded-content signal for the caller, never an error.
type Sections struct {
	Subject string
	Body    string
}

// SectionSplitter locates the subject/body markers in a document and
// splits it into labeled sections.
type SectionSplitter interface {
	SplitText(text string) Sections
	SplitHTML(html string) Sections
}

// Shared postprocessing patterns for HTML subjects.
var (
	anySectionTag = regexp.MustCompile(`<[^>]+>`)
	whitespaceRun = regexp.MustCompile(`\s+`)
)

// MarkerSplitter implements SectionSplitter for ===MARKER=== delimiters.
//
// Plain text and HTML need separate matchers: in text the marker is
// followed by a newline, in HTML it is followed by the closing tag of
// whatever block element the marker line ended up in.
type MarkerSplitter struct {
	textSubject *regexp.Regexp
	textBody    *regexp.Regexp
	htmlSubject *regexp.Regexp
	htmlBody    *regexp.Regexp
}

// NewMarkerSplitter builds a splitter for the given marker words.
// Empty words fall back to the defaults.
func NewMarkerSplitter(subjectWord, bodyWord string) *MarkerSplitter {
	if subjectWord == "" {
		subjectWord = DefaultSubjectMarker
	}
	if bodyWord == "" {
		bodyWord = DefaultBodyMarker
	}
	subject := markerPattern(subjectWord)
	body := markerPattern(bodyWord)

	return &MarkerSplitter{
		// Subject capture stops at the body marker or end of input. The
		// body matcher runs independently on the full input, so consuming
		// the body marker here is harmless.
		textSubject: regexp.MustCompile(`(?is)` + subject + `\s*\n(.+?)(?:\n\s*` + body + `|\z)`),
		textBody:    regexp.MustCompile(`(?is)` + body + `\s*\n(.+)`),
		htmlSubject: regexp.MustCompile(`(?is)` + subject + `\s*</[^>]+>(.+?)(?:<[^>]+>` + body + `|\z)`),
		htmlBody:    regexp.MustCompile(`(?is)` + body + `\s*</[^>]+>(.+)`),
	}
}

// markerPattern builds the regex fragment matching ===WORD===, tolerating
// whitespace between the frame and the word.
func markerPattern(word string) string {
	return fmt.Sprintf(`===\s*%s\s*===`, regexp.QuoteMeta(word))
}

// SplitText splits plain text on the section markers. Captured sections
// are trimmed of surrounding whitespace.
func (s *MarkerSplitter) SplitText(text string) Sections {
	var out Sections
	if m := s.textSubject.FindStringSubmatch(text); m != nil {
		out.Subject = strings.TrimSpace(m[1])
	}
	if m := s.textBody.FindStringSubmatch(text); m != nil {
		out.Body = strings.TrimSpace(m[1])
	}
	return out
}

// SplitHTML splits an HTML document on the section markers. The subject
// must end up tag-free: every tag inside the captured fragment becomes a
// space and whitespace runs collapse to single spaces. The body fragment
// keeps its tags for downstream use.
func (s *MarkerSplitter) SplitHTML(html string) Sections {
	var out Sections
	if m := s.htmlSubject.FindStringSubmatch(html); m != nil {
		subject := anySectionTag.ReplaceAllString(strings.TrimSpace(m[1]), " ")
		out.Subject = strings.TrimSpace(whitespaceRun.ReplaceAllString(subject, " "))
	}
	if m := s.htmlBody.FindStringSubmatch(html); m != nil {
		out.Body = strings.TrimSpace(m[1])
	}
	return out
}
