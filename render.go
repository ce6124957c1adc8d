package docmail

import (
	"fmt"
	"math"
	"strings"
)

// RenderHTML converts a document to block-level HTML.
//
// Each paragraph renders its runs through the inline formatter and then
// picks a wrapper: <br> when the rendered content is blank, <hN> for
// headings, <li> for list items, <p> otherwise. List items are emitted
// without <ul>/<ol> containers; tracking list boundaries across
// paragraphs is a known limitation of this path.
func RenderHTML(doc Document) string {
	var b strings.Builder
	for _, p := range doc.Paragraphs {
		b.WriteString(renderParagraph(p))
	}
	return b.String()
}

// ExtractText concatenates the raw text of every run in document order.
// No separators are inserted; paragraph breaks exist only as the trailing
// newlines the document source puts on each paragraph's last run.
func ExtractText(doc Document) string {
	var b strings.Builder
	for _, p := range doc.Paragraphs {
		for _, r := range p.Runs {
			b.WriteString(r.Content)
		}
	}
	return b.String()
}

// renderParagraph renders one paragraph to an HTML fragment.
func renderParagraph(p Paragraph) string {
	var b strings.Builder
	for _, r := range p.Runs {
		b.WriteString(formatRun(r.Content, r.Style))
	}
	inner := b.String()

	if strings.TrimSpace(inner) == "" {
		return "<br>"
	}
	if p.HeadingLevel >= 1 && p.HeadingLevel <= 6 {
		return fmt.Sprintf("<h%d>%s</h%d>", p.HeadingLevel, inner, p.HeadingLevel)
	}
	if p.Bullet != nil {
		return "<li>" + inner + "</li>"
	}
	return "<p>" + inner + "</p>"
}

// formatRun wraps run text in inline HTML for its style.
//
// Tags nest innermost-first: <s> inside <u> inside <em> inside <strong>,
// then <a href>, then an outer <span style> when any inline style property
// is set. The order is fixed; the HTML-to-Markdown rewrite rules depend
// on <strong> wrapping <em> and not the other way around.
//
// The text itself is passed through untouched. Escaping is the document
// source's responsibility.
func formatRun(text string, style TextStyle) string {
	if text == "" {
		return ""
	}

	html := text
	if style.Strikethrough {
		html = "<s>" + html + "</s>"
	}
	if style.Underline {
		html = "<u>" + html + "</u>"
	}
	if style.Italic {
		html = "<em>" + html + "</em>"
	}
	if style.Bold {
		html = "<strong>" + html + "</strong>"
	}
	if style.LinkURL != "" {
		html = fmt.Sprintf(`<a href="%s">%s</a>`, style.LinkURL, html)
	}
	if attr := styleAttribute(style); attr != "" {
		html = fmt.Sprintf(`<span style="%s">%s</span>`, attr, html)
	}
	return html
}

// styleAttribute builds the inline CSS declaration list for a run.
// Property order is fixed: font-size, color, background-color, font-family.
func styleAttribute(style TextStyle) string {
	var props []string
	if style.FontSizePt > 0 {
		props = append(props, fmt.Sprintf("font-size: %gpt", style.FontSizePt))
	}
	if style.Foreground != nil {
		props = append(props, "color: "+cssRGB(*style.Foreground))
	}
	if style.Background != nil {
		props = append(props, "background-color: "+cssRGB(*style.Background))
	}
	if style.FontFamily != "" {
		props = append(props, "font-family: "+style.FontFamily)
	}
	return strings.Join(props, "; ")
}

// cssRGB converts normalized [0,1] channels to a CSS rgb() value.
func cssRGB(c Color) string {
	return fmt.Sprintf("rgb(%d, %d, %d)", channelTo255(c.Red), channelTo255(c.Green), channelTo255(c.Blue))
}

// channelTo255 rounds one normalized channel to 0-255, clamping values
// outside [0,1] from malformed sources.
func channelTo255(v float64) int {
	n := int(math.Round(v * 255))
	if n < 0 {
		return 0
	}
	if n > 255 {
		return 255
	}
	return n
}
