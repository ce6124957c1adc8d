package pipeline

import (
	"fmt"
	"html"
	"regexp"
	"strings"
)

// Transcoder converts between the constrained HTML subset used for mail
// bodies and the Markdown-like syntax used for editing. Both directions
// are lossy: only the structure the Markdown subset can express survives
// a round trip.
type Transcoder interface {
	ToMarkdown(html string) string
	ToHTML(markdown string) string
}

// RewriteTranscoder implements Transcoder as ordered regex rewrite passes.
// It is stateless; the zero value is ready to use.
type RewriteTranscoder struct{}

// Precompiled HTML-to-Markdown patterns. All tag matching is non-greedy,
// case-insensitive, and spans newlines inside a tag pair.
var (
	// htmlHeadings[i] matches <h(i+1)>...</h(i+1)>.
	htmlHeadings = compileHTMLHeadings()

	// Combined bold+italic in all four nesting permutations. These must
	// run before the single-style patterns so a nested pair is not
	// degraded to one marker.
	boldItalicTags = []*regexp.Regexp{
		regexp.MustCompile(`(?is)<strong[^>]*>\s*<em[^>]*>(.*?)</em>\s*</strong>`),
		regexp.MustCompile(`(?is)<em[^>]*>\s*<strong[^>]*>(.*?)</strong>\s*</em>`),
		regexp.MustCompile(`(?is)<b[^>]*>\s*<i[^>]*>(.*?)</i>\s*</b>`),
		regexp.MustCompile(`(?is)<i[^>]*>\s*<b[^>]*>(.*?)</b>\s*</i>`),
	}

	strongTag = regexp.MustCompile(`(?is)<strong[^>]*>(.*?)</strong>`)
	bTag      = regexp.MustCompile(`(?is)<b[^>]*>(.*?)</b>`)
	emTag     = regexp.MustCompile(`(?is)<em[^>]*>(.*?)</em>`)
	iTag      = regexp.MustCompile(`(?is)<i[^>]*>(.*?)</i>`)
	uTag      = regexp.MustCompile(`(?is)<u[^>]*>(.*?)</u>`)
	sTag      = regexp.MustCompile(`(?is)<s[^>]*>(.*?)</s>`)

	anchorTag    = regexp.MustCompile(`(?is)<a[^>]*href=["'](.*?)["'][^>]*>(.*?)</a>`)
	listItemTag  = regexp.MustCompile(`(?is)<li[^>]*>(.*?)</li>`)
	paragraphTag = regexp.MustCompile(`(?is)<p[^>]*>(.*?)</p>`)
	lineBreakTag = regexp.MustCompile(`(?i)<br\s*/?>`)

	anyTag        = regexp.MustCompile(`<[^>]+>`)
	excessNewline = regexp.MustCompile(`\n{3,}`)
)

func compileHTMLHeadings() [6]*regexp.Regexp {
	var patterns [6]*regexp.Regexp
	for i := range patterns {
		level := i + 1
		patterns[i] = regexp.MustCompile(fmt.Sprintf(`(?is)<h%d[^>]*>(.*?)</h%d>`, level, level))
	}
	return patterns
}

// ToMarkdown rewrites a constrained HTML subset into Markdown-like syntax.
//
// Passes run in a fixed order; each assumes the previous has already run.
// Tags with no dedicated rule are deleted in the final strip pass, so
// unbalanced or unknown markup degrades to its inner text instead of
// failing.
func (RewriteTranscoder) ToMarkdown(htmlText string) string {
	text := htmlText

	// Headings: N leading # plus a blank line, so the heading re-parses
	// as its own block on the way back to HTML.
	for i, pattern := range htmlHeadings {
		text = pattern.ReplaceAllString(text, strings.Repeat("#", i+1)+" ${1}\n\n")
	}

	// Nested bold+italic before the single styles.
	for _, pattern := range boldItalicTags {
		text = pattern.ReplaceAllString(text, "***${1}***")
	}

	text = strongTag.ReplaceAllString(text, "**${1}**")
	text = bTag.ReplaceAllString(text, "**${1}**")
	text = emTag.ReplaceAllString(text, "*${1}*")
	text = iTag.ReplaceAllString(text, "*${1}*")
	text = uTag.ReplaceAllString(text, "__${1}__")
	text = sTag.ReplaceAllString(text, "~~${1}~~")

	text = anchorTag.ReplaceAllString(text, "[${2}](${1})")

	// List items flatten to bullet lines; container tags fall through to
	// the strip pass below.
	text = listItemTag.ReplaceAllString(text, "• ${1}\n")

	text = paragraphTag.ReplaceAllString(text, "${1}\n\n")
	text = lineBreakTag.ReplaceAllString(text, "\n")

	text = anyTag.ReplaceAllString(text, "")
	text = html.UnescapeString(text)
	text = excessNewline.ReplaceAllString(text, "\n\n")

	return strings.TrimSpace(text)
}
