// Where: cli/internal/version/version.go
// What: Version information retrieval.
// Why: Report the release tag or VCS revision the binary was built from.
package version

import (
	"fmt"
	"runtime/debug"
)

// Version is set at link time (-ldflags "-X .../version.Version=v1.2.3").
var Version = ""

var readBuildInfo = debug.ReadBuildInfo

// GetVersion returns Version when set at link time. Otherwise it returns
// the short VCS revision, suffixed with "(dirty)" for modified trees, or
// "dev" when no revision is recorded.
func GetVersion() string {
	if Version != "" {
		return Version
	}
	info, ok := readBuildInfo()
	if !ok {
		return "dev"
	}

	var revision string
	var modified bool
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			revision = setting.Value
			if len(revision) > 7 {
				revision = revision[:7]
			}
		case "vcs.modified":
			modified = setting.Value == "true"
		}
	}

	switch {
	case revision == "" && info.Main.Version != "" && info.Main.Version != "(devel)":
		return info.Main.Version
	case revision == "":
		return "dev"
	case modified:
		return fmt.Sprintf("%s (dirty)", revision)
	default:
		return revision
	}
}
