package pipeline

import "testing"

func TestTextPreviewRender(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "h1 framed wide and upper-cased",
			input:    "<h1>Go</h1>",
			expected: "====== GO ======",
		},
		{
			name:     "h3 framed narrower",
			input:    "<h3>Mid</h3>",
			expected: "==== MID ====",
		},
		{
			name:     "h6 narrowest frame",
			input:    "<h6>tiny</h6>",
			expected: "= TINY =",
		},
		{
			name:     "bold and italic keep asterisk markers",
			input:    "<p><strong>B</strong> <em>I</em></p>",
			expected: "**B** *I*",
		},
		{
			name:     "underline uses single underscores",
			input:    "<u>under</u>",
			expected: "_under_",
		},
		{
			name:     "strikethrough keeps tildes",
			input:    "<s>gone</s>",
			expected: "~~gone~~",
		},
		{
			name:     "link shows its target",
			input:    `<a href="https://go.dev">the site</a>`,
			expected: "the site (→ https://go.dev)",
		},
		{
			name:     "list items become indented bullets",
			input:    "<ul><li>a</li><li>b</li></ul>",
			expected: "  • a\n  • b",
		},
		{
			name:     "ordered list container dropped too",
			input:    "<ol><li>first</li></ol>",
			expected: "  • first",
		},
		{
			name:     "paragraphs separated by blank line",
			input:    "<p>a</p><p>b</p>",
			expected: "a\n\nb",
		},
		{
			name:     "breaks become newlines",
			input:    "a<br>b",
			expected: "a\nb",
		},
		{
			name:     "remaining tags stripped and entities decoded",
			input:    `<p><span style="font-size: 12pt">12 &gt; 3 &amp; 2 &lt; 3</span></p>`,
			expected: "12 > 3 & 2 < 3",
		},
		{
			name:     "whitespace normalized",
			input:    "<p>a</p><br><br><br><p>b</p>",
			expected: "a\n\nb",
		},
	}

	var preview TextPreview

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := preview.Render(tt.input)
			if got != tt.expected {
				t.Errorf("Render() = %q, want %q", got, tt.expected)
			}
		})
	}
}

// Preview output of a rendered mail body never contains markup, only the
// readable approximation.
func TestTextPreviewOfRenderedMarkdown(t *testing.T) {
	t.Parallel()

	var tc RewriteTranscoder
	var preview TextPreview

	html := tc.ToHTML("# Launch\n\n- **ready**\n- [docs](https://go.dev)")
	got := preview.Render(html)

	// The list pass indents <li> lines and the preview adds its own bullet
	// prefix and newline, so items come out with a four-space indent and a
	// blank line between them.
	expected := "====== LAUNCH ======\n\n    • **ready**\n\n    • docs (→ https://go.dev)"
	if got != expected {
		t.Errorf("Render() = %q, want %q", got, expected)
	}
}
