package pyversion

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Operators in match order: longer tokens first so "<=" is not read as "<".
var operators = []string{"===", "~=", "==", "!=", "<=", ">=", "<", ">"}

// Specifier is a parsed PEP 440 specifier set, e.g. ">=3.9, !=3.9.1, <4".
// All clauses must hold for a version to be contained.
type Specifier struct {
	raw         string
	constraints *semver.Constraints
	literals    []string
}

// ParseSpecifier parses a comma separated PEP 440 specifier set. An empty
// string yields a specifier that contains every version.
func ParseSpecifier(s string) (*Specifier, error) {
	spec := &Specifier{raw: s}

	var clauses []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		translated, err := spec.translate(part)
		if err != nil {
			return nil, fmt.Errorf("invalid specifier %q: %w", s, err)
		}
		clauses = append(clauses, translated...)
	}

	if len(clauses) > 0 {
		c, err := semver.NewConstraint(strings.Join(clauses, ", "))
		if err != nil {
			return nil, fmt.Errorf("invalid specifier %q: %w", s, err)
		}
		spec.constraints = c
	}
	return spec, nil
}

// String returns the specifier as it was written.
func (s *Specifier) String() string {
	return s.raw
}

// Contains reports whether version satisfies every clause of the specifier.
// Versions that cannot be parsed are never contained unless they match an
// arbitrary-equality ("===") clause literally.
func (s *Specifier) Contains(version string) bool {
	version = strings.TrimSpace(version)
	for _, lit := range s.literals {
		if !strings.EqualFold(version, lit) {
			return false
		}
	}
	if s.constraints == nil {
		return true
	}

	v, err := ParseVersion(version)
	if err != nil {
		return false
	}
	return s.constraints.Check(v)
}

// translate converts one PEP 440 clause into semver constraint clauses.
// Arbitrary-equality clauses are recorded as literals and produce none.
func (s *Specifier) translate(clause string) ([]string, error) {
	op := ""
	for _, candidate := range operators {
		if strings.HasPrefix(clause, candidate) {
			op = candidate
			break
		}
	}
	if op == "" {
		return nil, fmt.Errorf("clause %q has no comparison operator", clause)
	}

	version := strings.TrimSpace(clause[len(op):])
	if version == "" {
		return nil, fmt.Errorf("clause %q has no version", clause)
	}

	switch op {
	case "===":
		s.literals = append(s.literals, version)
		return nil, nil
	case "~=":
		return compatibleRelease(version)
	}

	if prefix, ok := strings.CutSuffix(version, ".*"); ok {
		if op != "==" && op != "!=" {
			return nil, fmt.Errorf("wildcard version %q is only allowed with == and !=", version)
		}
		if _, err := releaseSegments(prefix); err != nil {
			return nil, err
		}
		return []string{semverOp(op) + prefix + ".x"}, nil
	}

	full, err := normalize(version)
	if err != nil {
		return nil, err
	}
	return []string{semverOp(op) + full}, nil
}

// compatibleRelease expands "~=X.Y" to ">=X.Y, <X+1.0" and "~=X.Y.Z" to
// ">=X.Y.Z, <X.Y+1.0".
func compatibleRelease(version string) ([]string, error) {
	full, err := normalize(version)
	if err != nil {
		return nil, err
	}

	text, err := normalizeVersion(version)
	if err != nil {
		return nil, err
	}
	release, err := releaseSegments(strings.SplitN(text, "-", 2)[0])
	if err != nil {
		return nil, err
	}
	if len(release) < 2 {
		return nil, fmt.Errorf("compatible release %q needs at least two release segments", version)
	}

	upper := release[:len(release)-1]
	upper[len(upper)-1]++
	bound := joinSegments(upper)
	if len(upper) == 1 {
		bound += ".0"
	}
	return []string{">=" + full, "<" + bound + ".0"}, nil
}

// normalize pads a version to the full major.minor.patch form so that
// semver does not treat missing segments as wildcards.
func normalize(version string) (string, error) {
	v, err := ParseVersion(version)
	if err != nil {
		return "", fmt.Errorf("parsing version %q: %w", version, err)
	}
	return v.String(), nil
}

func releaseSegments(version string) ([]int, error) {
	version = strings.TrimPrefix(version, "v")
	fields := strings.Split(version, ".")
	if len(fields) > 3 {
		return nil, fmt.Errorf("version %q has more than three release segments", version)
	}

	segments := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("version %q has a non-numeric release segment %q", version, f)
		}
		segments = append(segments, n)
	}
	return segments, nil
}

func joinSegments(segments []int) string {
	parts := make([]string, len(segments))
	for i, n := range segments {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ".")
}

func semverOp(op string) string {
	if op == "==" {
		return "="
	}
	return op
}
