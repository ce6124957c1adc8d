package hints

import (
	"strings"
	"testing"
)

func TestForConfigNotFound(t *testing.T) {
	t.Parallel()

	got := ForConfigNotFound([]string{
		"default.yaml",
		"/home/u/.config/go-docmail/default.yaml",
	})
	if !strings.HasPrefix(got, "\n  hint: ") {
		t.Errorf("hint not formatted: %q", got)
	}
	if !strings.Contains(got, "--config") {
		t.Errorf("hint missing --config suggestion: %q", got)
	}
	if !strings.Contains(got, "/home/u/.config/go-docmail/default.yaml") {
		t.Errorf("hint missing user config path: %q", got)
	}
}

func TestForConfigNotFoundNoUserPath(t *testing.T) {
	t.Parallel()

	got := ForConfigNotFound([]string{"default.yaml"})
	if strings.Contains(got, "or create") {
		t.Errorf("hint suggests creating a path it was not given: %q", got)
	}
}

func TestForRemoteDocument(t *testing.T) {
	t.Parallel()

	got := ForRemoteDocument()
	if !strings.Contains(got, "Download") {
		t.Errorf("hint missing download instructions: %q", got)
	}
}

func TestForMissingSections(t *testing.T) {
	t.Parallel()

	got := ForMissingSections("SUBJECT", "BODY")
	if !strings.Contains(got, "===SUBJECT===") || !strings.Contains(got, "===BODY===") {
		t.Errorf("hint missing marker lines: %q", got)
	}
}

func TestForRecipientColumn(t *testing.T) {
	t.Parallel()

	got := ForRecipientColumn([]string{"A", "B", "C"})
	if !strings.Contains(got, "available: A, B, C") {
		t.Errorf("hint missing available columns: %q", got)
	}

	got = ForRecipientColumn(nil)
	if strings.Contains(got, "available") {
		t.Errorf("hint lists columns it does not know: %q", got)
	}
}
