// Where: cli/internal/command/logging.go
// What: Diagnostic logger construction.
// Why: Keep debug diagnostics on stderr, separate from user-facing output.
package command

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/poruru/serverless-invoke/cli/internal/constants"
	"github.com/poruru/serverless-invoke/cli/internal/infra/envutil"
	"github.com/poruru/serverless-invoke/cli/internal/meta"
)

// session carries per-run state shared by command handlers.
type session struct {
	logger *log.Logger
}

// newLogger returns a logger at warn level. --verbose selects debug;
// otherwise SLS_LOG_LEVEL may name any level.
func newLogger(out io.Writer, verbose bool) *log.Logger {
	logger := log.NewWithOptions(out, log.Options{Prefix: meta.Slug})
	logger.SetLevel(resolveLogLevel(verbose))
	return logger
}

func resolveLogLevel(verbose bool) log.Level {
	if verbose {
		return log.DebugLevel
	}
	if raw := envutil.GetHostEnv(constants.HostSuffixLogLevel); raw != "" {
		if level, err := log.ParseLevel(raw); err == nil {
			return level
		}
	}
	return log.WarnLevel
}
