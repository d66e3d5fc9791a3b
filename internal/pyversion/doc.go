// Package pyversion parses the Python interpreter versions declared in
// trove classifiers and evaluates PEP 440 version specifiers such as the
// requires-python field of pyproject.toml. Versions are represented with
// github.com/Masterminds/semver/v3; specifier clauses are translated into
// semver constraints.
package pyversion
