// Where: cli/internal/meta/meta.go
// What: CLI-local metadata constants.
// Why: Keep the binary name, env prefix, and service file names in one place.
package meta

const (
	// Project Identity
	Slug      = "sls"
	EnvPrefix = "SLS"

	// Service Definition
	ServiceFile    = "serverless.yml"
	ServiceFileAlt = "serverless.yaml"
)

// ServiceFiles lists accepted service definition file names in lookup order.
var ServiceFiles = []string{ServiceFile, ServiceFileAlt}
