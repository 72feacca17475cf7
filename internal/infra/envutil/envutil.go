// Package envutil provides helper functions for environment variable handling.
package envutil

import (
	"os"
	"strings"

	"github.com/poruru/serverless-invoke/cli/internal/constants"
	"github.com/poruru/serverless-invoke/cli/internal/meta"
)

// HostPrefix returns the prefix used for host-level variables.
// ENV_PREFIX overrides the built-in meta.EnvPrefix.
func HostPrefix() string {
	if prefix := strings.TrimSpace(os.Getenv(constants.EnvPrefixOverride)); prefix != "" {
		return prefix
	}
	return meta.EnvPrefix
}

// HostEnvKey constructs a host-level environment variable name
// by combining the host prefix with the given suffix.
// Example: HostEnvKey("CONFIG") returns "SLS_CONFIG".
func HostEnvKey(suffix string) string {
	return HostPrefix() + "_" + suffix
}

// GetHostEnv retrieves a host-level environment variable.
// Example: GetHostEnv("CONFIG") returns the value of SLS_CONFIG.
func GetHostEnv(suffix string) string {
	return os.Getenv(HostEnvKey(suffix))
}

// HostEnvBool reports whether a host-level variable holds a truthy value
// (1, true, yes, on; case-insensitive).
func HostEnvBool(suffix string) bool {
	switch strings.ToLower(strings.TrimSpace(GetHostEnv(suffix))) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}
