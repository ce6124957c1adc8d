package pipeline

import (
	"html"
	"regexp"
	"strings"
)

// PreviewRenderer renders HTML into a readable plain-text approximation
// for on-screen feedback. The output is presentation-only and must never
// be used as the value actually sent.
type PreviewRenderer interface {
	Render(html string) string
}

// TextPreview implements PreviewRenderer with the same pattern set the
// transcoder uses, mapped to terminal-friendly markers instead of
// Markdown syntax.
type TextPreview struct{}

var (
	ulTag = regexp.MustCompile(`(?i)</?ul[^>]*>`)
	olTag = regexp.MustCompile(`(?i)</?ol[^>]*>`)
)

// Render converts HTML to a plain-text preview. Headings become a line
// framed by = runs (wider for higher levels) with the text upper-cased;
// inline styles become marker-wrapped text; links show their target;
// list items become indented bullets. Everything else is stripped.
func (TextPreview) Render(htmlText string) string {
	preview := htmlText

	for i, pattern := range htmlHeadings {
		frame := strings.Repeat("=", 6-i)
		preview = pattern.ReplaceAllStringFunc(preview, func(match string) string {
			inner := pattern.FindStringSubmatch(match)[1]
			return "\n" + frame + " " + strings.ToUpper(inner) + " " + frame + "\n"
		})
	}

	preview = strongTag.ReplaceAllString(preview, "**${1}**")
	preview = bTag.ReplaceAllString(preview, "**${1}**")
	preview = emTag.ReplaceAllString(preview, "*${1}*")
	preview = iTag.ReplaceAllString(preview, "*${1}*")
	preview = uTag.ReplaceAllString(preview, "_${1}_")
	preview = sTag.ReplaceAllString(preview, "~~${1}~~")

	preview = anchorTag.ReplaceAllString(preview, "${2} (→ ${1})")

	preview = listItemTag.ReplaceAllString(preview, "  • ${1}\n")
	preview = ulTag.ReplaceAllString(preview, "")
	preview = olTag.ReplaceAllString(preview, "")

	preview = paragraphTag.ReplaceAllString(preview, "${1}\n\n")
	preview = lineBreakTag.ReplaceAllString(preview, "\n")

	preview = anyTag.ReplaceAllString(preview, "")
	preview = html.UnescapeString(preview)
	preview = excessNewline.ReplaceAllString(preview, "\n\n")

	return strings.TrimSpace(preview)
}
