package pyversion

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// pep440Pattern matches a release segment with an optional pre-release,
// e.g. "3.10", "v3.10.0", "3.10rc1", "3.10.0-beta.2".
var pep440Pattern = regexp.MustCompile(`(?i)^v?(\d+(?:\.\d+)*)(?:[-_.]?(a|alpha|b|beta|c|rc|pre|preview)[-_.]?(\d*))?$`)

var preReleaseLabels = map[string]string{
	"a":       "a",
	"alpha":   "a",
	"b":       "b",
	"beta":    "b",
	"c":       "rc",
	"rc":      "rc",
	"pre":     "rc",
	"preview": "rc",
}

// ParseVersion parses a PEP 440 release or pre-release version into semver.
// Pre-releases become dotted semver pre-release identifiers ("3.10rc1" is
// "3.10-rc.1") so they order numerically and before the final release.
// Release segments past the third are accepted only when they are zero.
func ParseVersion(s string) (*semver.Version, error) {
	normalized, err := normalizeVersion(s)
	if err != nil {
		return nil, err
	}
	return semver.NewVersion(normalized)
}

// normalizeVersion rewrites a PEP 440 version into the text semver parses,
// keeping release segments as written so "3.10" stays "3.10".
func normalizeVersion(s string) (string, error) {
	s = strings.TrimSpace(s)
	m := pep440Pattern.FindStringSubmatch(s)
	if m == nil {
		return "", fmt.Errorf("unsupported version %q", s)
	}

	release := strings.Split(m[1], ".")
	for len(release) > 3 && isZero(release[len(release)-1]) {
		release = release[:len(release)-1]
	}
	if len(release) > 3 {
		return "", fmt.Errorf("version %q has more than three non-zero release segments", s)
	}

	out := strings.Join(release, ".")
	if m[2] != "" {
		n := m[3]
		if n == "" {
			n = "0"
		}
		num, err := strconv.Atoi(n)
		if err != nil {
			return "", fmt.Errorf("version %q has an invalid pre-release number", s)
		}
		out += "-" + preReleaseLabels[strings.ToLower(m[2])] + "." + strconv.Itoa(num)
	}
	return out, nil
}

func isZero(segment string) bool {
	return strings.Trim(segment, "0") == ""
}
