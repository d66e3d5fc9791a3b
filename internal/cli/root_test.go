package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentx-labs/pyvercheck/internal/checker"
)

const consistentPyproject = `[project]
name = "sample"
requires-python = ">=3.10"
classifiers = [
  "Programming Language :: Python :: 3.10",
  "Programming Language :: Python :: 3.11",
]
`

const inconsistentPyproject = `[project]
name = "sample"
requires-python = ">=3.9"
classifiers = [
  "Programming Language :: Python :: 3.10",
  "Programming Language :: Python :: 3.11",
]
`

// runCLI executes a fresh command tree with args and captures both streams.
func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd, err := newRootCmd()
	require.NoError(t, err)
	cmd.SetArgs(args)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	err = execute(cmd)
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// chdir switches the working directory for the duration of the test,
// equivalent to testing.T.Chdir (Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}

func TestRoot_DefaultPathInWorkingDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "pyproject.toml", consistentPyproject)
	chdir(t, dir)

	stdout, stderr, err := runCLI(t)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Python versions consistency")
	assert.Contains(t, stdout, ">= 3.10")
	assert.Empty(t, stderr)
}

func TestRoot_MissingManifest(t *testing.T) {
	chdir(t, t.TempDir())

	stdout, stderr, err := runCLI(t)
	require.NoError(t, err)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "INFO")
	assert.Contains(t, stderr, "pyproject.toml")
}

func TestRoot_Inconsistent(t *testing.T) {
	path := writeFile(t, t.TempDir(), "pyproject.toml", inconsistentPyproject)

	stdout, stderr, err := runCLI(t, "--file", path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, checker.ErrInconsistent))
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "INCONSISTENCY IN PYTHON VERSIONS")
	assert.Contains(t, stderr, `">=3.9"`)
	// The checker's report is the only error output.
	assert.NotContains(t, stderr, "ERROR: python versions in pyproject.toml are inconsistent")
}

func TestRoot_FileFromEnv(t *testing.T) {
	path := writeFile(t, t.TempDir(), "custom.toml", inconsistentPyproject)
	t.Setenv("PYVERCHECK_FILE", path)

	_, stderr, err := runCLI(t)
	require.ErrorIs(t, err, checker.ErrInconsistent)
	assert.Contains(t, stderr, "Minimum version in `classifiers`: 3.10")
}

func TestRoot_JSONFormat(t *testing.T) {
	path := writeFile(t, t.TempDir(), "pyproject.toml", consistentPyproject)

	stdout, _, err := runCLI(t, "--file", path, "--format", "json")
	require.NoError(t, err)

	var report checker.Report
	require.NoError(t, json.Unmarshal([]byte(stdout), &report))
	assert.Equal(t, checker.StatusConsistent, report.Status)
	assert.Equal(t, "3.10", report.MinClassifierVersion)
	assert.Equal(t, "3.9", report.PreviousMinorVersion)
	assert.Equal(t, path, report.Path)
}

func TestRoot_MinorZero(t *testing.T) {
	path := writeFile(t, t.TempDir(), "pyproject.toml", `[project]
requires-python = ">=3.12"
classifiers = ["Programming Language :: Python :: 4.0"]
`)

	stdout, stderr, err := runCLI(t, "--file", path)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Python versions consistency")
	assert.Contains(t, stdout, ">= 4.0")
	assert.Contains(t, stderr, "INFO: 4.0 has no previous minor version")
}

func TestRoot_HelpNamesEnvVars(t *testing.T) {
	stdout, _, err := runCLI(t, "--help")
	require.NoError(t, err)
	assert.Contains(t, stdout, "PYVERCHECK_FILE")
	assert.Contains(t, stdout, "PYVERCHECK_FORMAT")
}

func TestRoot_BadFormat(t *testing.T) {
	stdout, stderr, err := runCLI(t, "--format", "xml")
	require.Error(t, err)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "ERROR: unknown format")
}

func TestRoot_MalformedManifest(t *testing.T) {
	path := writeFile(t, t.TempDir(), "pyproject.toml", "[project\n")

	stdout, stderr, err := runCLI(t, "--file", path)
	require.Error(t, err)
	assert.False(t, errors.Is(err, checker.ErrInconsistent))
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "ERROR: Error during checking python versions in")
	// Reported once by the checker, not again by execute.
	assert.Equal(t, 1, bytes.Count([]byte(stderr), []byte("ERROR:")))
}

func TestRoot_UnknownFlag(t *testing.T) {
	_, stderr, err := runCLI(t, "--nope")
	require.Error(t, err)
	assert.Contains(t, stderr, "ERROR: unknown flag")
}

func TestVersion(t *testing.T) {
	buildVersion, buildCommit, buildDate = "1.2.3", "abc123", "2026-01-02"

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"default", []string{"version"}, "pyvercheck version 1.2.3 (commit: abc123, built: 2026-01-02)\n"},
		{"short", []string{"version", "--short"}, "1.2.3\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := runCLI(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, stdout)
		})
	}

	t.Run("json", func(t *testing.T) {
		stdout, _, err := runCLI(t, "version", "--json")
		require.NoError(t, err)
		var info map[string]string
		require.NoError(t, json.Unmarshal([]byte(stdout), &info))
		assert.Equal(t, "1.2.3", info["version"])
		assert.Equal(t, "abc123", info["commit"])
	})
}
