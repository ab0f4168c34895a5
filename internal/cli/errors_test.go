package cli

import (
	"strings"
	"testing"
)

func TestPreflightErrorError(t *testing.T) {
	err := &PreflightError{Message: "store is locked"}
	if err.Error() != "store is locked" {
		t.Errorf("Error() = %q, want message only", err.Error())
	}
}

func TestPreflightErrorFormat(t *testing.T) {
	err := &PreflightError{
		Message:  "unknown key \"txt.primary\"",
		Hint:     "Keys are dot-namespaced.",
		NextStep: "swatch list",
	}

	formatted := err.Format()
	for _, expected := range []string{"error: unknown key", "hint: Keys are dot-namespaced.", "next: swatch list"} {
		if !strings.Contains(formatted, expected) {
			t.Errorf("Expected %q in formatted error, got: %s", expected, formatted)
		}
	}
}

func TestPreflightErrorFormatOmitsEmptySections(t *testing.T) {
	err := &PreflightError{Message: "bad flags"}

	formatted := err.Format()
	if strings.Contains(formatted, "hint:") {
		t.Errorf("Expected no hint section, got: %s", formatted)
	}
	if strings.Contains(formatted, "next:") {
		t.Errorf("Expected no next section, got: %s", formatted)
	}
}
