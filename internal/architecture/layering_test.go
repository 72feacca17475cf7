// Where: cli/internal/architecture/layering_test.go
// What: Layer dependency guard tests for CLI internal packages.
// Why: Keep domain types free of infra, and plugins free of the CLI layer.
package architecture

import (
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"
)

const internalImportPrefix = "github.com/poruru/serverless-invoke/cli/internal/"

// forbiddenLayers maps a source layer to the layers it must not import.
var forbiddenLayers = map[string][]string{
	"domain": {"infra", "plugin", "command"},
	"infra":  {"plugin", "command"},
	"plugin": {"command"},
}

func TestLayeringRules(t *testing.T) {
	t.Parallel()

	violations := []string{}
	walkInternalSources(t, parser.ImportsOnly, func(rel string, _ *token.FileSet, file *ast.File) {
		sourceLayer := topLayer(rel)
		for _, imp := range file.Imports {
			importPath := strings.Trim(imp.Path.Value, "\"")
			if violatesRule(sourceLayer, topLayerFromImport(importPath)) {
				violations = append(violations, rel+" -> "+importPath)
			}
		}
	})

	if len(violations) > 0 {
		sort.Strings(violations)
		t.Fatalf("layering rule violations:\n%s", strings.Join(violations, "\n"))
	}
}

func TestViolatesRule(t *testing.T) {
	tests := []struct {
		source, target string
		want           bool
	}{
		{"domain", "infra", true},
		{"domain", "domain", false},
		{"infra", "domain", false},
		{"infra", "command", true},
		{"plugin", "infra", false},
		{"plugin", "command", true},
		{"command", "plugin", false},
		{"domain", "", false},
	}
	for _, tt := range tests {
		if got := violatesRule(tt.source, tt.target); got != tt.want {
			t.Errorf("violatesRule(%q, %q) = %v, want %v", tt.source, tt.target, got, tt.want)
		}
	}
}

// walkInternalSources parses every non-test Go file under internal/.
func walkInternalSources(t *testing.T, mode parser.Mode, visit func(rel string, fset *token.FileSet, file *ast.File)) {
	t.Helper()
	internalRoot := resolveInternalRoot(t)
	fset := token.NewFileSet()

	err := filepath.WalkDir(internalRoot, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !strings.HasSuffix(d.Name(), ".go") || strings.HasSuffix(d.Name(), "_test.go") {
			return nil
		}
		rel, err := filepath.Rel(internalRoot, path)
		if err != nil {
			return err
		}
		file, err := parser.ParseFile(fset, path, nil, mode)
		if err != nil {
			return err
		}
		visit(filepath.ToSlash(rel), fset, file)
		return nil
	})
	if err != nil {
		t.Fatalf("scan internal packages: %v", err)
	}
}

func resolveInternalRoot(t *testing.T) string {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	return filepath.Clean(filepath.Join(wd, ".."))
}

func topLayer(relPath string) string {
	first, _, _ := strings.Cut(relPath, "/")
	return strings.TrimSpace(first)
}

func topLayerFromImport(importPath string) string {
	rest, ok := strings.CutPrefix(importPath, internalImportPrefix)
	if !ok {
		return ""
	}
	return topLayer(rest)
}

func violatesRule(sourceLayer, importLayer string) bool {
	if importLayer == "" {
		return false
	}
	for _, forbidden := range forbiddenLayers[sourceLayer] {
		if forbidden == importLayer {
			return true
		}
	}
	return false
}
