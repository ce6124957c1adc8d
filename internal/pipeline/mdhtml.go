package pipeline

import (
	"fmt"
	"regexp"
	"strings"
)

// Precompiled Markdown-to-HTML patterns. Inline patterns deliberately do
// not span newlines: a style marker left open on one line stays literal.
var (
	// mdHeadings[i] matches a level-(i+1) heading at the start of a line.
	// Applied from level 6 down so ### is not partially consumed by ##.
	mdHeadings = compileMDHeadings()

	// Triple asterisks before double before single: ** is a substring of
	// *** and * is a substring of **.
	tripleAsterisk   = regexp.MustCompile(`\*\*\*(.+?)\*\*\*`)
	doubleAsterisk   = regexp.MustCompile(`\*\*(.+?)\*\*`)
	singleAsterisk   = regexp.MustCompile(`\*(.+?)\*`)
	doubleUnderscore = regexp.MustCompile(`__(.+?)__`)
	doubleTilde      = regexp.MustCompile(`~~(.+?)~~`)

	markdownLink = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)

	bulletPrefix = regexp.MustCompile(`^[•*-]\s*`)

	// Blocks already starting with a block-level tag are not wrapped in <p>.
	blockLevelTag = regexp.MustCompile(`(?i)^\s*<(?:h[1-6]|ul|ol|li|div|blockquote)`)
)

func compileMDHeadings() [6]*regexp.Regexp {
	var patterns [6]*regexp.Regexp
	for i := range patterns {
		patterns[i] = regexp.MustCompile(fmt.Sprintf(`(?m)^#{%d}\s+(.+?)$`, i+1))
	}
	return patterns
}

// ToHTML rewrites Markdown-like syntax into the HTML subset used for mail
// bodies. Inline passes run first, then line-oriented list detection, then
// paragraph detection on blank-line-separated blocks.
func (RewriteTranscoder) ToHTML(markdown string) string {
	text := markdown

	for i := 5; i >= 0; i-- {
		level := i + 1
		text = mdHeadings[i].ReplaceAllString(text, fmt.Sprintf("<h%d>${1}</h%d>", level, level))
	}

	text = tripleAsterisk.ReplaceAllString(text, "<strong><em>${1}</em></strong>")
	text = doubleAsterisk.ReplaceAllString(text, "<strong>${1}</strong>")
	text = singleAsterisk.ReplaceAllString(text, "<em>${1}</em>")
	text = doubleUnderscore.ReplaceAllString(text, "<u>${1}</u>")
	text = doubleTilde.ReplaceAllString(text, "<s>${1}</s>")

	text = markdownLink.ReplaceAllString(text, `<a href="${2}">${1}</a>`)

	text = wrapListBlocks(text)
	return wrapParagraphs(text)
}

// wrapListBlocks converts runs of bullet lines into a single <ul> block.
// A line whose trimmed form starts with a bullet marker opens or extends
// the current list; the first non-bullet line (or end of input) closes it.
func wrapListBlocks(text string) string {
	lines := strings.Split(text, "\n")
	processed := make([]string, 0, len(lines))
	inList := false

	for _, line := range lines {
		stripped := strings.TrimSpace(line)
		if isBulletLine(stripped) {
			if !inList {
				processed = append(processed, "<ul>")
				inList = true
			}
			item := bulletPrefix.ReplaceAllString(stripped, "")
			processed = append(processed, "  <li>"+item+"</li>")
			continue
		}
		if inList {
			processed = append(processed, "</ul>")
			inList = false
		}
		processed = append(processed, line)
	}
	if inList {
		processed = append(processed, "</ul>")
	}

	return strings.Join(processed, "\n")
}

func isBulletLine(stripped string) bool {
	return strings.HasPrefix(stripped, "•") ||
		strings.HasPrefix(stripped, "*") ||
		strings.HasPrefix(stripped, "-")
}

// wrapParagraphs splits on blank lines and wraps each non-block fragment
// in <p>, turning its internal newlines into <br>. Fragments that already
// start with a block-level tag pass through unchanged.
func wrapParagraphs(text string) string {
	blocks := strings.Split(text, "\n\n")
	wrapped := make([]string, 0, len(blocks))

	for _, block := range blocks {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}
		if blockLevelTag.MatchString(block) {
			wrapped = append(wrapped, block)
			continue
		}
		block = strings.ReplaceAll(block, "\n", "<br>")
		wrapped = append(wrapped, "<p>"+block+"</p>")
	}

	return strings.Join(wrapped, "\n")
}
