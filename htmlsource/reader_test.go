package htmlsource

import (
	"strings"
	"testing"

	docmail "github.com/mwellner/go-docmail"
)

func TestParseBlocks(t *testing.T) {
	t.Parallel()

	input := "<h1>Title</h1><p>plain</p><ul><li>one</li><li>two</li></ul><p>after</p>"

	doc, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if len(doc.Paragraphs) != 5 {
		t.Fatalf("got %d paragraphs, want 5", len(doc.Paragraphs))
	}

	if doc.Paragraphs[0].HeadingLevel != 1 {
		t.Errorf("heading level = %d, want 1", doc.Paragraphs[0].HeadingLevel)
	}
	if doc.Paragraphs[1].HeadingLevel != 0 || doc.Paragraphs[1].Bullet != nil {
		t.Errorf("second paragraph should be plain, got %+v", doc.Paragraphs[1])
	}

	first, second := doc.Paragraphs[2].Bullet, doc.Paragraphs[3].Bullet
	if first == nil || second == nil {
		t.Fatal("list items missing bullet info")
	}
	if first.ListID != second.ListID {
		t.Errorf("items of one list got different ids: %q vs %q", first.ListID, second.ListID)
	}
	if first.NestingLevel != 0 {
		t.Errorf("top-level item nesting = %d, want 0", first.NestingLevel)
	}

	if doc.Paragraphs[4].Bullet != nil {
		t.Error("paragraph after the list should not carry bullet info")
	}
}

func TestParseParagraphTextEndsWithNewline(t *testing.T) {
	t.Parallel()

	doc, err := Parse(strings.NewReader("<p>hello</p><p></p>"))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	for i, p := range doc.Paragraphs {
		last := p.Runs[len(p.Runs)-1]
		if !strings.HasSuffix(last.Content, "\n") {
			t.Errorf("paragraph %d does not end with newline: %q", i, last.Content)
		}
	}
}

func TestParseInlineStyles(t *testing.T) {
	t.Parallel()

	input := `<p>a <strong>b <em>c</em></strong> <u>d</u> <s>e</s> <a href="https://go.dev">f</a></p>`

	doc, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(doc.Paragraphs) != 1 {
		t.Fatalf("got %d paragraphs, want 1", len(doc.Paragraphs))
	}

	styleOf := func(text string) docmail.TextStyle {
		t.Helper()
		for _, run := range doc.Paragraphs[0].Runs {
			if strings.TrimSpace(run.Content) == text {
				return run.Style
			}
		}
		t.Fatalf("no run with content %q", text)
		return docmail.TextStyle{}
	}

	if s := styleOf("a"); s != (docmail.TextStyle{}) {
		t.Errorf("plain run has style %+v", s)
	}
	if s := styleOf("b"); !s.Bold || s.Italic {
		t.Errorf("bold run style = %+v", s)
	}
	if s := styleOf("c"); !s.Bold || !s.Italic {
		t.Errorf("nested bold italic run style = %+v", s)
	}
	if s := styleOf("d"); !s.Underline {
		t.Errorf("underline run style = %+v", s)
	}
	if s := styleOf("e"); !s.Strikethrough {
		t.Errorf("strikethrough run style = %+v", s)
	}
	if s := styleOf("f"); s.LinkURL != "https://go.dev" {
		t.Errorf("link run URL = %q", s.LinkURL)
	}
}

func TestParseSpanCSS(t *testing.T) {
	t.Parallel()

	input := `<p><span style="font-size: 12pt; color: rgb(255, 0, 0); background-color: rgb(0, 0, 255); font-family: Arial">x</span></p>`

	doc, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	style := doc.Paragraphs[0].Runs[0].Style
	if style.FontSizePt != 12 {
		t.Errorf("FontSizePt = %v, want 12", style.FontSizePt)
	}
	if style.FontFamily != "Arial" {
		t.Errorf("FontFamily = %q, want Arial", style.FontFamily)
	}
	if style.Foreground == nil || style.Foreground.Red != 1 || style.Foreground.Green != 0 || style.Foreground.Blue != 0 {
		t.Errorf("Foreground = %+v, want pure red", style.Foreground)
	}
	if style.Background == nil || style.Background.Blue != 1 {
		t.Errorf("Background = %+v, want pure blue", style.Background)
	}
}

func TestParseNestedList(t *testing.T) {
	t.Parallel()

	input := "<ul><li>outer<ul><li>inner</li></ul></li></ul>"

	doc, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(doc.Paragraphs) != 2 {
		t.Fatalf("got %d paragraphs, want 2", len(doc.Paragraphs))
	}

	outer, inner := doc.Paragraphs[0], doc.Paragraphs[1]
	if got := docmail.ExtractText(docmail.Document{Paragraphs: []docmail.Paragraph{outer}}); strings.Contains(got, "inner") {
		t.Errorf("outer item text contains nested item text: %q", got)
	}
	if inner.Bullet == nil || inner.Bullet.NestingLevel != 1 {
		t.Errorf("inner bullet = %+v, want nesting level 1", inner.Bullet)
	}
	if outer.Bullet == nil || outer.Bullet.ListID == inner.Bullet.ListID {
		t.Error("nested list should have its own id")
	}
}

func TestParseSkipsScriptAndStyle(t *testing.T) {
	t.Parallel()

	input := "<style>p { color: red }</style><p>keep</p><script>alert(1)</script>"

	doc, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	text := docmail.ExtractText(doc)
	if strings.Contains(text, "alert") || strings.Contains(text, "color") {
		t.Errorf("script or style content leaked into text: %q", text)
	}
	if !strings.Contains(text, "keep") {
		t.Errorf("paragraph text missing: %q", text)
	}
}

// A parsed export composes like any other document.
func TestParseThenCompose(t *testing.T) {
	t.Parallel()

	input := "<p>===SUBJECT===</p><p>Launch day</p><p>===BODY===</p><p>We are <strong>live</strong>.</p>"

	doc, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	tmpl, warnings := docmail.NewComposer().Compose(doc)
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}
	if tmpl.Subject != "Launch day" {
		t.Errorf("Subject = %q, want %q", tmpl.Subject, "Launch day")
	}
	if !strings.Contains(tmpl.BodyText, "We are live.") {
		t.Errorf("BodyText = %q", tmpl.BodyText)
	}
	if !strings.Contains(tmpl.BodyHTML, "<strong>live</strong>") {
		t.Errorf("BodyHTML = %q", tmpl.BodyHTML)
	}
}

func TestOpenMissingFile(t *testing.T) {
	t.Parallel()

	if _, err := Open("definitely/not/here.html"); err == nil {
		t.Error("Open() of missing file did not fail")
	}
}
