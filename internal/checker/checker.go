package checker

import (
	"errors"
	"fmt"

	"github.com/agentx-labs/pyvercheck/internal/pyproject"
	"github.com/agentx-labs/pyvercheck/internal/pyversion"
)

// ErrInconsistent is returned by Run when requires-python admits a version
// the classifiers do not list.
var ErrInconsistent = errors.New("python versions in pyproject.toml are inconsistent")

// Status is the outcome of a check.
type Status string

const (
	StatusSkipped      Status = "skipped"
	StatusWarning      Status = "warning"
	StatusConsistent   Status = "consistent"
	StatusInconsistent Status = "inconsistent"
)

// Report describes the result of checking one manifest.
type Report struct {
	Path                 string `json:"path" yaml:"path"`
	Status               Status `json:"status" yaml:"status"`
	Message              string `json:"message" yaml:"message"`
	RequiresPython       string `json:"requires_python,omitempty" yaml:"requires_python,omitempty"`
	MinClassifierVersion string `json:"min_classifier_version,omitempty" yaml:"min_classifier_version,omitempty"`
	PreviousMinorVersion string `json:"previous_minor_version,omitempty" yaml:"previous_minor_version,omitempty"`
	Recommendation       string `json:"recommendation,omitempty" yaml:"recommendation,omitempty"`
}

// Failed reports whether the check should exit non-zero.
func (r *Report) Failed() bool {
	return r.Status == StatusInconsistent
}

// Check loads the manifest at path and compares its classifiers with
// requires-python. Skips and warnings are reported through the Report; the
// error return is reserved for unreadable or malformed manifests.
func Check(path string) (*Report, error) {
	report := &Report{Path: path}

	m, err := pyproject.Load(path)
	if errors.Is(err, pyproject.ErrNotFound) {
		report.Status = StatusSkipped
		report.Message = fmt.Sprintf("File %s does not exist, skipping checking.", path)
		return report, nil
	}
	if err != nil {
		return nil, err
	}

	requiresPython := m.Project.RequiresPython
	report.RequiresPython = requiresPython
	if requiresPython == "" || len(m.Project.Classifiers) == 0 {
		report.Status = StatusSkipped
		report.Message = fmt.Sprintf("Missing `requires-python` or `classifiers` in %s, skipping.", path)
		return report, nil
	}

	minVer := pyversion.MinClassifierVersion(m.Project.Classifiers)
	if minVer == nil {
		report.Status = StatusWarning
		report.Message = fmt.Sprintf("Cannot find python version classifiers in %s (ie. '... :: 3.10'), skipping.", path)
		return report, nil
	}
	report.MinClassifierVersion = minVer.Original()

	spec, err := pyversion.ParseSpecifier(requiresPython)
	if err != nil {
		return nil, fmt.Errorf("parsing requires-python: %w", err)
	}

	prev, err := pyversion.PreviousMinor(minVer)
	if errors.Is(err, pyversion.ErrNoPreviousMinor) {
		report.Status = StatusConsistent
		report.Message = fmt.Sprintf("%s has no previous minor version to compare against.", report.MinClassifierVersion)
		return report, nil
	}
	if err != nil {
		return nil, err
	}
	report.PreviousMinorVersion = prev

	if spec.Contains(prev) {
		report.Status = StatusInconsistent
		report.Message = fmt.Sprintf("%s version (which is not in the classifiers) still fits in `requires-python`.", prev)
		report.Recommendation = ">= " + report.MinClassifierVersion
		return report, nil
	}

	report.Status = StatusConsistent
	report.Message = consistencyMessage(report.MinClassifierVersion)
	return report, nil
}

func consistencyMessage(minVersion string) string {
	return fmt.Sprintf("Python versions consistency (`requires-python` and `classifiers` >= %s) is verified.", minVersion)
}
