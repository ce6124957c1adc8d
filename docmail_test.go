package docmail

import (
	"strings"
	"testing"
)

// paragraphOf builds a plain one-run paragraph with the trailing newline a
// document source would supply.
func paragraphOf(text string) Paragraph {
	return Paragraph{Runs: []TextRun{{Content: text + "\n"}}}
}

func TestComposerCompose(t *testing.T) {
	t.Parallel()

	doc := Document{Paragraphs: []Paragraph{
		paragraphOf("===SUBJECT==="),
		paragraphOf("Hello"),
		paragraphOf(""),
		paragraphOf("===BODY==="),
		{Runs: []TextRun{{Content: "World", Style: TextStyle{Bold: true}}, {Content: "\n"}}},
	}}

	tmpl, warnings := NewComposer().Compose(doc)

	if tmpl.Subject != "Hello" {
		t.Errorf("Subject = %q, want %q", tmpl.Subject, "Hello")
	}
	if tmpl.BodyText != "World" {
		t.Errorf("BodyText = %q, want %q", tmpl.BodyText, "World")
	}
	expectedHTML := "<p><strong>World</strong>\n</p>"
	if tmpl.BodyHTML != expectedHTML {
		t.Errorf("BodyHTML = %q, want %q", tmpl.BodyHTML, expectedHTML)
	}
	if len(warnings) != 0 {
		t.Errorf("warnings = %v, want none", warnings)
	}
}

func TestComposerComposeMissingMarkers(t *testing.T) {
	t.Parallel()

	doc := Document{Paragraphs: []Paragraph{
		paragraphOf("just some prose"),
		paragraphOf("without any markers"),
	}}

	tmpl, warnings := NewComposer().Compose(doc)

	if tmpl.Subject != "" || tmpl.BodyText != "" || tmpl.BodyHTML != "" {
		t.Errorf("template = %+v, want all fields empty", tmpl)
	}
	if len(warnings) != 2 {
		t.Fatalf("got %d warnings, want 2: %v", len(warnings), warnings)
	}
	if !strings.Contains(warnings[0], "SUBJECT") {
		t.Errorf("first warning %q does not mention SUBJECT", warnings[0])
	}
	if !strings.Contains(warnings[1], "BODY") {
		t.Errorf("second warning %q does not mention BODY", warnings[1])
	}
}

func TestComposerComposeSubjectOnly(t *testing.T) {
	t.Parallel()

	doc := Document{Paragraphs: []Paragraph{
		paragraphOf("===SUBJECT==="),
		paragraphOf("Only a subject"),
	}}

	tmpl, warnings := NewComposer().Compose(doc)

	if tmpl.Subject != "Only a subject" {
		t.Errorf("Subject = %q, want %q", tmpl.Subject, "Only a subject")
	}
	if tmpl.BodyText != "" || tmpl.BodyHTML != "" {
		t.Errorf("body = %q / %q, want empty", tmpl.BodyText, tmpl.BodyHTML)
	}
	if len(warnings) != 1 || !strings.Contains(warnings[0], "BODY") {
		t.Errorf("warnings = %v, want a single BODY warning", warnings)
	}
}

func TestComposerWithSectionMarkers(t *testing.T) {
	t.Parallel()

	doc := Document{Paragraphs: []Paragraph{
		paragraphOf("===BETREFF==="),
		paragraphOf("Hallo"),
		paragraphOf(""),
		paragraphOf("===TEXT==="),
		paragraphOf("Welt"),
	}}

	tmpl, warnings := NewComposer(WithSectionMarkers("BETREFF", "TEXT")).Compose(doc)

	if tmpl.Subject != "Hallo" {
		t.Errorf("Subject = %q, want %q", tmpl.Subject, "Hallo")
	}
	if tmpl.BodyText != "Welt" {
		t.Errorf("BodyText = %q, want %q", tmpl.BodyText, "Welt")
	}
	if len(warnings) != 0 {
		t.Errorf("warnings = %v, want none", warnings)
	}

	// The custom marker word shows up in warnings too.
	_, warnings = NewComposer(WithSectionMarkers("BETREFF", "TEXT")).Compose(Document{})
	if len(warnings) != 2 || !strings.Contains(warnings[0], "BETREFF") {
		t.Errorf("warnings = %v, want BETREFF mentioned", warnings)
	}
}

func TestSplitSectionsText(t *testing.T) {
	t.Parallel()

	got := SplitSectionsText("===SUBJECT===\nHello\n\n===BODY===\nWorld")
	if got.Subject != "Hello" || got.Body != "World" {
		t.Errorf("SplitSectionsText() = %+v, want {Hello World}", got)
	}

	got = SplitSectionsText("no markers here")
	if got.Subject != "" || got.Body != "" {
		t.Errorf("SplitSectionsText() = %+v, want empty sections", got)
	}
}

func TestSplitSectionsHTML(t *testing.T) {
	t.Parallel()

	input := "<p>===SUBJECT===</p><p>Big <em>News</em></p><p>===BODY===</p><p>Details</p>"
	got := SplitSectionsHTML(input)

	if got.Subject != "Big News" {
		t.Errorf("Subject = %q, want %q", got.Subject, "Big News")
	}
	if got.Body != "<p>Details</p>" {
		t.Errorf("Body = %q, want %q", got.Body, "<p>Details</p>")
	}
}
