// Package checker implements the requires-python consistency check.
//
// The check derives the minor version just below the oldest
// "Programming Language :: Python :: X.Y" classifier and fails when
// requires-python still admits it: a project classified for 3.10+ with
// requires-python ">=3.9" would let pip install it on an interpreter the
// project does not claim to support.
package checker
