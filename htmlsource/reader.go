// Package htmlsource builds structured documents from exported HTML files.
//
// It is the local-file document source for the docmail pipeline: point it
// at an HTML export of a document and it returns a docmail.Document with
// headings, list items, paragraphs and inline run styles reconstructed
// from the markup. Unknown elements contribute their text; script and
// style content is skipped.
package htmlsource

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/net/html"

	docmail "github.com/mwellner/go-docmail"
)

// Open reads and parses an HTML file into a document.
func Open(filename string) (docmail.Document, error) {
	f, err := os.Open(filename) // #nosec G304 -- user-provided path
	if err != nil {
		return docmail.Document{}, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// Parse parses HTML from a reader into a document. The parser is
// tolerant: malformed markup yields a best-effort document, not an error.
func Parse(r io.Reader) (docmail.Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return docmail.Document{}, fmt.Errorf("parsing HTML: %w", err)
	}

	b := &builder{}
	start := findElement(root, "body")
	if start == nil {
		start = root
	}
	b.walkBlocks(start, nil, 0)

	return docmail.Document{Paragraphs: b.paragraphs}, nil
}

// builder accumulates paragraphs while walking the parse tree.
type builder struct {
	paragraphs []docmail.Paragraph
	listCount  int
}

// walkBlocks visits block-level elements. bullet is non-nil while inside
// a list, carrying the list identity down to the <li> paragraphs.
func (b *builder) walkBlocks(n *html.Node, bullet *docmail.Bullet, nesting int) {
	if n.Type == html.ElementNode {
		switch n.Data {
		case "script", "style", "head", "template":
			return
		case "h1", "h2", "h3", "h4", "h5", "h6":
			level := int(n.Data[1] - '0')
			b.emit(n, level, nil)
			return
		case "p":
			b.emit(n, 0, bullet)
			return
		case "ul", "ol":
			b.listCount++
			id := fmt.Sprintf("list-%d", b.listCount)
			for c := n.FirstChild; c != nil; c = c.NextSibling {
				if c.Type == html.ElementNode && c.Data == "li" {
					b.walkBlocks(c, &docmail.Bullet{ListID: id, NestingLevel: nesting}, nesting+1)
				}
			}
			return
		case "li":
			b.emit(n, 0, bullet)
			// A nested list inside the item becomes its own paragraphs.
			for c := n.FirstChild; c != nil; c = c.NextSibling {
				if c.Type == html.ElementNode && (c.Data == "ul" || c.Data == "ol") {
					b.walkBlocks(c, bullet, nesting)
				}
			}
			return
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		b.walkBlocks(c, bullet, nesting)
	}
}

// emit collects the inline runs of one block element into a paragraph.
// Every paragraph's text ends with a newline, matching what document
// APIs deliver and what the text extractor relies on for line breaks.
func (b *builder) emit(n *html.Node, heading int, bullet *docmail.Bullet) {
	var runs []docmail.TextRun
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		runs = collectRuns(c, docmail.TextStyle{}, runs)
	}
	if len(runs) == 0 {
		runs = []docmail.TextRun{{Content: "\n"}}
	} else {
		runs[len(runs)-1].Content += "\n"
	}

	b.paragraphs = append(b.paragraphs, docmail.Paragraph{
		Runs:         runs,
		HeadingLevel: heading,
		Bullet:       bullet,
	})
}

// collectRuns walks inline content, threading the inherited style down
// through nested style tags.
func collectRuns(n *html.Node, style docmail.TextStyle, runs []docmail.TextRun) []docmail.TextRun {
	switch n.Type {
	case html.TextNode:
		if n.Data != "" {
			runs = append(runs, docmail.TextRun{Content: n.Data, Style: style})
		}
		return runs
	case html.ElementNode:
		switch n.Data {
		case "strong", "b":
			style.Bold = true
		case "em", "i":
			style.Italic = true
		case "u":
			style.Underline = true
		case "s", "strike", "del":
			style.Strikethrough = true
		case "a":
			style.LinkURL = attr(n, "href")
		case "span":
			style = applyInlineCSS(style, attr(n, "style"))
		case "br":
			return append(runs, docmail.TextRun{Content: "\n", Style: style})
		case "script", "style":
			return runs
		case "ul", "ol":
			// Nested lists are handled by the block walker.
			return runs
		}
	default:
		return runs
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		runs = collectRuns(c, style, runs)
	}
	return runs
}

// attr returns the value of the named attribute, or "".
func attr(n *html.Node, name string) string {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}

// findElement finds the first element with the given tag name.
func findElement(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, tag); found != nil {
			return found
		}
	}
	return nil
}

// applyInlineCSS merges the declarations of a style attribute into the
// run style. Only the properties the renderer emits are recognized;
// everything else is ignored.
func applyInlineCSS(style docmail.TextStyle, css string) docmail.TextStyle {
	for _, decl := range strings.Split(css, ";") {
		name, value, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		name = strings.TrimSpace(strings.ToLower(name))
		value = strings.TrimSpace(value)

		switch name {
		case "font-size":
			if pt, ok := strings.CutSuffix(value, "pt"); ok {
				if size, err := strconv.ParseFloat(strings.TrimSpace(pt), 64); err == nil && size > 0 {
					style.FontSizePt = size
				}
			}
		case "color":
			if c, ok := parseRGB(value); ok {
				style.Foreground = c
			}
		case "background-color":
			if c, ok := parseRGB(value); ok {
				style.Background = c
			}
		case "font-family":
			if value != "" {
				style.FontFamily = value
			}
		}
	}
	return style
}

// parseRGB parses a CSS rgb(r, g, b) value into normalized channels.
func parseRGB(value string) (*docmail.Color, bool) {
	var r, g, b int
	if _, err := fmt.Sscanf(value, "rgb(%d, %d, %d)", &r, &g, &b); err != nil {
		return nil, false
	}
	if r < 0 || r > 255 || g < 0 || g > 255 || b < 0 || b > 255 {
		return nil, false
	}
	return &docmail.Color{
		Red:   float64(r) / 255,
		Green: float64(g) / 255,
		Blue:  float64(b) / 255,
	}, true
}
