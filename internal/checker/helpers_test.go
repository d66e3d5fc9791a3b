package checker

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// renderPyproject renders a minimal pyproject.toml with the optional fields.
func renderPyproject(requiresPython string, classifiers []string) string {
	lines := []string{"[project]"}
	if requiresPython != "" {
		lines = append(lines, `requires-python = "`+requiresPython+`"`)
	}
	if len(classifiers) > 0 {
		lines = append(lines, "classifiers = [")
		for _, c := range classifiers {
			lines = append(lines, `  "`+c+`",`)
		}
		lines = append(lines, "]")
	}
	return strings.Join(lines, "\n") + "\n"
}

// writePyproject writes a pyproject.toml into a fresh temp dir and returns its path.
func writePyproject(t *testing.T, requiresPython string, classifiers []string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pyproject.toml")
	if err := os.WriteFile(path, []byte(renderPyproject(requiresPython, classifiers)), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
	return path
}

var py310and311 = []string{
	"Programming Language :: Python :: 3.10",
	"Programming Language :: Python :: 3.11",
}
