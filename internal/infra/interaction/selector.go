// Where: cli/internal/infra/interaction/selector.go
// What: Interactive selection using the huh library.
// Why: Let users pick a function when --function is omitted on a terminal.
package interaction

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
)

var errNoOptions = errors.New("nothing to select")

var runSelectPrompt = func(title string, options []huh.Option[string], selected *string) error {
	return huh.NewSelect[string]().
		Title(title).
		Options(options...).
		Value(selected).
		Run()
}

// HuhPrompter implements Prompter using the huh TUI library.
type HuhPrompter struct{}

func (p HuhPrompter) Select(title string, options []string) (string, error) {
	if len(options) == 0 {
		return "", fmt.Errorf("prompt select: %w", errNoOptions)
	}
	huhOptions := make([]huh.Option[string], len(options))
	for i, opt := range options {
		huhOptions[i] = huh.NewOption(opt, opt)
	}

	var selected string
	if err := runSelectPrompt(title, huhOptions, &selected); err != nil {
		return "", fmt.Errorf("prompt select: %w", err)
	}
	return selected, nil
}
