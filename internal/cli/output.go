// Package cli provides output helpers for machine-readable formats.
package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/opencode-ai/swatch/internal/config"
)

// IsJSONOutput reports whether commands should emit JSON on stdout.
func IsJSONOutput() bool {
	return jsonOutput || GetConfig().Output == config.OutputJSON
}

// WriteOutput writes v as indented JSON.
func WriteOutput(out io.Writer, v any) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	return nil
}
