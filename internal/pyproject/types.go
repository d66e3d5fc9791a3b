package pyproject

// FileName is the conventional manifest name looked up in the working directory.
const FileName = "pyproject.toml"

// Manifest is the subset of pyproject.toml this tool reads.
type Manifest struct {
	Project Project `toml:"project" json:"project"`
}

// Project holds the PEP 621 [project] fields used by the version check.
type Project struct {
	Name           string   `toml:"name,omitempty" json:"name,omitempty"`
	RequiresPython string   `toml:"requires-python,omitempty" json:"requires-python,omitempty"`
	Classifiers    []string `toml:"classifiers,omitempty" json:"classifiers,omitempty"`
}
