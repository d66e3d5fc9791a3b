package pyversion

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// ClassifierPrefix is the trove classifier prefix for Python interpreter versions.
const ClassifierPrefix = "Programming Language :: Python :: "

// ErrNoPreviousMinor is returned by PreviousMinor for X.0 versions.
var ErrNoPreviousMinor = errors.New("no previous minor version")

// ParseClassifier extracts the interpreter version from a classifier such as
// "Programming Language :: Python :: 3.10". Generic entries like "... :: 3" or
// "... :: 3 :: Only" and anything that does not parse as a version are
// reported as not ok.
func ParseClassifier(classifier string) (*semver.Version, bool) {
	if !strings.HasPrefix(classifier, ClassifierPrefix) {
		return nil, false
	}
	if !strings.Contains(classifier[len(ClassifierPrefix):], ".") {
		return nil, false
	}

	parts := strings.Split(classifier, "::")
	v, err := ParseVersion(parts[len(parts)-1])
	if err != nil {
		return nil, false
	}
	return v, true
}

// MinClassifierVersion returns the lowest interpreter version found in
// classifiers, or nil when none of them declares one.
func MinClassifierVersion(classifiers []string) *semver.Version {
	var lowest *semver.Version
	for _, c := range classifiers {
		v, ok := ParseClassifier(c)
		if !ok {
			continue
		}
		if lowest == nil || v.LessThan(lowest) {
			lowest = v
		}
	}
	return lowest
}

// PreviousMinor returns "major.(minor-1)" for v, e.g. "3.9" for 3.10.5.
func PreviousMinor(v *semver.Version) (string, error) {
	if v.Minor() == 0 {
		return "", fmt.Errorf("%s: %w", v.Original(), ErrNoPreviousMinor)
	}
	return fmt.Sprintf("%d.%d", v.Major(), v.Minor()-1), nil
}
