// Package pyproject loads the [project] table of a pyproject.toml. Decoding
// uses github.com/pelletier/go-toml/v2; before the typed decode the document
// is checked against an embedded JSON Schema that pins the types of the keys
// this tool reads (requires-python, classifiers). Other keys are left alone.
package pyproject
