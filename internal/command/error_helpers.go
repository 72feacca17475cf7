// Where: cli/internal/command/error_helpers.go
// What: Shared CLI error output.
// Why: Keep command failures consistent across handlers.
package command

import (
	"io"
	"strings"
)

// exitWithError prints an error message to the output writer and returns
// exit code 1 for CLI error handling.
func exitWithError(out io.Writer, err error) int {
	commandUI(out).Error(err.Error())
	return 1
}

// exitWithSuggestion prints a message followed by next steps and returns 1.
func exitWithSuggestion(out io.Writer, message string, suggestions []string) int {
	ui := commandUI(out)
	ui.Warn(message)
	if len(suggestions) > 0 {
		ui.Info("Next steps:")
		for _, s := range suggestions {
			ui.Info("  - " + s)
		}
	}
	return 1
}

// exitWithSuggestionAndAvailable also lists the available choices.
func exitWithSuggestionAndAvailable(out io.Writer, message string, suggestions, available []string) int {
	code := exitWithSuggestion(out, message, suggestions)
	if len(available) > 0 {
		commandUI(out).Info("Available: " + strings.Join(available, ", "))
	}
	return code
}
