// Where: cli/internal/constants/env.go
// What: Environment variable naming constants.
// Why: Centralize environment variable names to avoid typos and inconsistencies.
package constants

const (
	// EnvIsLocal signals to function code that it runs under local invocation.
	EnvIsLocal = "IS_LOCAL"

	// EnvPrefixOverride replaces meta.EnvPrefix for host-level variables.
	EnvPrefixOverride = "ENV_PREFIX"
)

// Host-level suffixes, combined with the env prefix (e.g. SLS_CONFIG).
const (
	HostSuffixConfig    = "CONFIG"
	HostSuffixLogLevel  = "LOG_LEVEL"
	HostSuffixNoPrompts = "NO_PROMPTS"
)
