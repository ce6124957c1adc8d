// Package docref parses references to hosted documents and spreadsheets:
// share URLs into document IDs, and spreadsheet column letters into
// zero-based indices.
package docref

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// Sentinel errors for reference parsing.
var (
	ErrNoDocumentID    = errors.New("no document ID found in reference")
	ErrNoSpreadsheetID = errors.New("no spreadsheet ID found in reference")
	ErrInvalidColumn   = errors.New("invalid column letter")
)

var (
	documentURL    = regexp.MustCompile(`docs\.google\.com/document/d/([a-zA-Z0-9-_]+)`)
	spreadsheetURL = regexp.MustCompile(`docs\.google\.com/spreadsheets/d/([a-zA-Z0-9-_]+)`)
	bareID         = regexp.MustCompile(`^[a-zA-Z0-9-_]{20,}$`)
	columnLetters  = regexp.MustCompile(`^[A-Z]{1,3}$`)
)

// ExtractDocumentID pulls the document ID out of a share URL. A bare ID
// passes through unchanged.
func ExtractDocumentID(ref string) (string, error) {
	if m := documentURL.FindStringSubmatch(ref); m != nil {
		return m[1], nil
	}
	if bareID.MatchString(ref) {
		return ref, nil
	}
	return "", fmt.Errorf("%w: %s", ErrNoDocumentID, ref)
}

// ExtractSpreadsheetID pulls the spreadsheet ID out of a share URL. A
// bare ID passes through unchanged.
func ExtractSpreadsheetID(ref string) (string, error) {
	if m := spreadsheetURL.FindStringSubmatch(ref); m != nil {
		return m[1], nil
	}
	if bareID.MatchString(ref) {
		return ref, nil
	}
	return "", fmt.Errorf("%w: %s", ErrNoSpreadsheetID, ref)
}

// ColumnIndex converts a spreadsheet column letter to its zero-based
// index: A=0, Z=25, AA=26. Lowercase input is accepted.
func ColumnIndex(letter string) (int, error) {
	upper := strings.ToUpper(strings.TrimSpace(letter))
	if !columnLetters.MatchString(upper) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidColumn, letter)
	}

	index := 0
	for _, r := range upper {
		index = index*26 + int(r-'A') + 1
	}
	return index - 1, nil
}

// ColumnLetter converts a zero-based column index back to its letter:
// 0=A, 25=Z, 26=AA. Negative indices yield "".
func ColumnLetter(index int) string {
	if index < 0 {
		return ""
	}

	var b []byte
	n := index + 1
	for n > 0 {
		n--
		b = append([]byte{byte('A' + n%26)}, b...)
		n /= 26
	}
	return string(b)
}
