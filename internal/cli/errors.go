// Package cli provides structured errors for command preflight failures.
package cli

import "strings"

// PreflightError describes a failed precondition with remediation guidance.
type PreflightError struct {
	Message  string
	Hint     string
	NextStep string
}

func (e *PreflightError) Error() string {
	return e.Message
}

// Format renders the error with its hint and next step for terminal display.
func (e *PreflightError) Format() string {
	var b strings.Builder
	b.WriteString("error: ")
	b.WriteString(e.Message)
	if e.Hint != "" {
		b.WriteString("\n  hint: ")
		b.WriteString(e.Hint)
	}
	if e.NextStep != "" {
		b.WriteString("\n  next: ")
		b.WriteString(e.NextStep)
	}
	return b.String()
}
