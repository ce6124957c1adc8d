// Package docmail converts structured rich-text documents into mail
// templates, and translates mail bodies between HTML and a Markdown-like
// editing syntax.
//
// # Quick Start
//
// Given a Document from a document source (see the htmlsource package),
// compose it into a subject and body:
//
//	composer := docmail.NewComposer()
//	tmpl, warnings := composer.Compose(doc)
//	for _, w := range warnings {
//	    log.Println(w)
//	}
//	send(tmpl.Subject, tmpl.BodyHTML)
//
// The document is expected to delimit its sections with marker lines:
//
//	===SUBJECT===
//	Your subject here
//
//	===BODY===
//	Your mail body here...
//
// Missing markers are not errors. The affected fields come back empty and
// Compose reports a warning for each, so the caller decides how loudly to
// complain.
//
// # Editing Round Trip
//
// Mail bodies are edited as Markdown and sent as HTML:
//
//	md := docmail.HTMLToMarkdown(tmpl.BodyHTML) // show this in the editor
//	html := docmail.MarkdownToHTML(md)          // send this
//	fmt.Println(docmail.RenderPreview(html))    // display only, never send
//
// The codec covers headings, bold, italic, underline, strikethrough,
// links, bullet lists, paragraphs and line breaks. It is deliberately
// lossy: inline colors, fonts and other attributes the Markdown subset
// cannot express are dropped on the way out and do not come back. Running
// a conversion on its own output is stable.
//
// # Conversion Pipeline
//
// Composition follows these stages:
//
//  1. Document rendering: paragraphs and styled runs to block HTML
//     (RenderHTML) and to raw text (ExtractText)
//  2. Section splitting on ===SUBJECT=== / ===BODY=== markers, with
//     separate matchers for the text and HTML renderings
//  3. Markdown round trip for editing (HTMLToMarkdown, MarkdownToHTML)
//  4. Plain-text preview rendering for on-screen feedback (RenderPreview)
//
// Every conversion is a pure function over its input: no I/O, no shared
// state, safe to call concurrently. Malformed markup never fails a
// conversion; unknown tags are stripped and unmatched markers stay
// literal.
package docmail
