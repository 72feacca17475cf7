// Where: cli/internal/infra/service/loader.go
// What: Service definition discovery and loading.
// Why: Resolve serverless.yml from env, flag, or upward search and decode it once.
package service

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/poruru/serverless-invoke/cli/internal/constants"
	domain "github.com/poruru/serverless-invoke/cli/internal/domain/service"
	"github.com/poruru/serverless-invoke/cli/internal/infra/envutil"
	"github.com/poruru/serverless-invoke/cli/internal/meta"
	"gopkg.in/yaml.v3"
)

// ErrServiceFileNotFound is returned when no service definition can be located.
var ErrServiceFileNotFound = errors.New("service file not found")

// FindServiceFile resolves the service definition path.
// Priority order.
// 1. Brand-prefixed CONFIG environment variable (e.g. SLS_CONFIG).
// 2. Upward search for serverless.yml / serverless.yaml from startDir.
func FindServiceFile(startDir string) (string, error) {
	if configured := strings.TrimSpace(envutil.GetHostEnv(constants.HostSuffixConfig)); configured != "" {
		abs, err := filepath.Abs(configured)
		if err != nil {
			return "", fmt.Errorf("resolve %s: %w", envutil.HostEnvKey(constants.HostSuffixConfig), err)
		}
		if _, err := os.Stat(abs); err != nil {
			return "", fmt.Errorf("%w: %s", ErrServiceFileNotFound, abs)
		}
		return abs, nil
	}

	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("resolve start dir: %w", err)
	}
	for {
		for _, name := range meta.ServiceFiles {
			candidate := filepath.Join(dir, name)
			if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
				return candidate, nil
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", fmt.Errorf(
		"%w: run from a service directory or set %s",
		ErrServiceFileNotFound,
		envutil.HostEnvKey(constants.HostSuffixConfig),
	)
}

// Load reads, validates, and decodes the service definition at path.
func Load(path string) (*domain.Config, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read service file: %w", err)
	}
	if err := validateServiceDefinition(payload); err != nil {
		return nil, fmt.Errorf("validate service file %s: %w", path, err)
	}

	var cfg domain.Config
	if err := yaml.Unmarshal(payload, &cfg); err != nil {
		return nil, fmt.Errorf("decode service file: %w", err)
	}
	return &cfg, nil
}

// Resolve finds the service definition from startDir (or explicitPath when
// set) and loads it.
func Resolve(startDir, explicitPath string) (*domain.Config, string, error) {
	path := strings.TrimSpace(explicitPath)
	if path == "" {
		found, err := FindServiceFile(startDir)
		if err != nil {
			return nil, "", err
		}
		path = found
	}
	cfg, err := Load(path)
	if err != nil {
		return nil, "", err
	}
	return cfg, path, nil
}
