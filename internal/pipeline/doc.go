// Package pipeline implements the string-rewrite stages of the mail
// composition pipeline.
//
// This package handles the text-level conversions:
//   - Splitting a document into subject/body sections on ===SUBJECT=== /
//     ===BODY=== markers, for both plain text and HTML input
//   - HTML to Markdown rewriting for in-app editing
//   - Markdown to HTML rewriting for sending
//   - Plain-text preview rendering of HTML
//
// The converters are ordered sequences of textual rewrite rules over a
// constrained grammar, not a parser with an AST. Pass order is load-bearing:
// combined bold+italic runs before single styles, triple asterisks before
// double, headings from level six down. The round trip is lossy by design
// (attributes not modeled by the Markdown subset are dropped) and idempotent
// on its own output.
//
// Structured-document rendering (paragraphs and styled runs to HTML or raw
// text) lives in the root docmail package; this package only ever sees
// strings. Every function here is pure, total, and safe for concurrent use.
package pipeline
