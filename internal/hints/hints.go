// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import "strings"

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in ~/.config/go-docmail/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	// Find a user config path (contains .config/go-docmail) to suggest
	for _, p := range searchedPaths {
		if strings.Contains(p, ".config/go-docmail") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForRemoteDocument returns hints when the input is a URL instead of a
// local file. The tool works on HTML exports, not live documents.
func ForRemoteDocument() string {
	return format("download the document as HTML (File > Download > Web Page) and pass the file")
}

// ForMissingSections returns hints when section markers were not found
// in the document.
func ForMissingSections(subjectWord, bodyWord string) string {
	return format("add ===" + subjectWord + "=== and ===" + bodyWord + "=== marker lines to the document")
}

// ForRecipientColumn returns hints for an invalid recipient column,
// listing the available columns when known.
func ForRecipientColumn(available []string) string {
	hint := "use a spreadsheet column letter like A or BC"
	if len(available) > 0 {
		hint += "; available: " + strings.Join(available, ", ")
	}
	return format(hint)
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}
