// Where: cli/internal/infra/service/loader_test.go
// What: Tests for service file discovery, validation, and decoding.
// Why: Keep lookup priority and schema errors stable.
package service

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const validService = `service: hello-service
provider:
  name: aws
  runtime: python3.12
  stage: dev
  environment:
    TABLE: users
    RETRIES: 3
functions:
  hello:
    handler: handler.hello
    environment:
      GREETING: hi
`

func writeService(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func clearConfigEnv(t *testing.T) {
	t.Helper()
	t.Setenv("ENV_PREFIX", "")
	t.Setenv("SLS_CONFIG", "")
}

func TestFindServiceFileSearchesUpward(t *testing.T) {
	clearConfigEnv(t)
	root := t.TempDir()
	want := writeService(t, root, "serverless.yml", validService)
	nested := filepath.Join(root, "src", "handlers")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	got, err := FindServiceFile(nested)
	if err != nil {
		t.Fatalf("FindServiceFile: %v", err)
	}
	if got != want {
		t.Fatalf("FindServiceFile() = %q, want %q", got, want)
	}
}

func TestFindServiceFileAcceptsYamlExtension(t *testing.T) {
	clearConfigEnv(t)
	root := t.TempDir()
	want := writeService(t, root, "serverless.yaml", validService)

	got, err := FindServiceFile(root)
	if err != nil {
		t.Fatalf("FindServiceFile: %v", err)
	}
	if got != want {
		t.Fatalf("FindServiceFile() = %q, want %q", got, want)
	}
}

func TestFindServiceFilePrefersEnv(t *testing.T) {
	clearConfigEnv(t)
	root := t.TempDir()
	writeService(t, root, "serverless.yml", validService)
	configured := writeService(t, t.TempDir(), "custom.yml", validService)
	t.Setenv("SLS_CONFIG", configured)

	got, err := FindServiceFile(root)
	if err != nil {
		t.Fatalf("FindServiceFile: %v", err)
	}
	if got != configured {
		t.Fatalf("FindServiceFile() = %q, want %q", got, configured)
	}
}

func TestFindServiceFileMissing(t *testing.T) {
	clearConfigEnv(t)
	_, err := FindServiceFile(t.TempDir())
	if !errors.Is(err, ErrServiceFileNotFound) {
		t.Fatalf("error = %v, want ErrServiceFileNotFound", err)
	}
	if !strings.Contains(err.Error(), "SLS_CONFIG") {
		t.Fatalf("error should mention SLS_CONFIG: %v", err)
	}
}

func TestLoadDecodesService(t *testing.T) {
	path := writeService(t, t.TempDir(), "serverless.yml", validService)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Service != "hello-service" || cfg.Provider.Name != "aws" || cfg.Provider.Stage != "dev" {
		t.Fatalf("unexpected config: %#v", cfg)
	}
	if cfg.Provider.Environment["RETRIES"] != "3" {
		t.Fatalf("RETRIES=%q, want stringified scalar", cfg.Provider.Environment["RETRIES"])
	}
	fn, ok := cfg.Function("hello")
	if !ok || fn.Handler != "handler.hello" || fn.Environment["GREETING"] != "hi" {
		t.Fatalf("function hello = %#v (ok=%v)", fn, ok)
	}
}

func TestLoadRejectsSchemaViolations(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"missing provider", "service: x\n"},
		{"missing provider name", "service: x\nprovider:\n  runtime: go\n"},
		{"function without handler", "service: x\nprovider:\n  name: aws\nfunctions:\n  hello:\n    runtime: go\n"},
		{"nested environment", "service: x\nprovider:\n  name: aws\n  environment:\n    A:\n      b: c\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeService(t, t.TempDir(), "serverless.yml", tt.content)
			_, err := Load(path)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), "validate service file") {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	if err == nil || !strings.Contains(err.Error(), "read service file") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestResolveUsesExplicitPath(t *testing.T) {
	clearConfigEnv(t)
	path := writeService(t, t.TempDir(), "other.yml", validService)

	cfg, got, err := Resolve(t.TempDir(), path)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got != path || cfg.Service != "hello-service" {
		t.Fatalf("Resolve() = (%#v, %q)", cfg, got)
	}
}
