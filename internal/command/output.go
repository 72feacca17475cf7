// Where: cli/internal/command/output.go
// What: Output helpers for command adapters.
// Why: Centralize UserInterface construction.
package command

import (
	"io"
	"os"

	"github.com/poruru/serverless-invoke/cli/internal/infra/interaction"
	"github.com/poruru/serverless-invoke/cli/internal/infra/ui"
)

func commandUI(out io.Writer) ui.UserInterface {
	return ui.NewConsoleUI(out, emojiEnabled(out))
}

// emojiEnabled turns emoji on only for terminal output.
func emojiEnabled(out io.Writer) bool {
	file, ok := out.(*os.File)
	if !ok {
		return false
	}
	return interaction.IsTerminal(file)
}
