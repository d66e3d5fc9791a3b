// Package cli defines the Cobra command tree for the pyvercheck CLI. The root
// command runs the requires-python consistency check; version prints build
// info. Commands only resolve settings and wire output streams; the check
// itself lives in the checker package.
package cli
