package checker

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"go.yaml.in/yaml/v3"
)

// Format selects how a Report is written to stdout.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat validates a user-supplied format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	case "":
		return FormatText, nil
	default:
		return "", fmt.Errorf("unknown format %q (want text, json, or yaml)", s)
	}
}

const rule = "================================================================================"

// WriteDiagnostics writes the human-readable lines for r. Everything except
// the success line goes to stderr.
func WriteDiagnostics(stdout, stderr io.Writer, r *Report) {
	switch r.Status {
	case StatusSkipped:
		fmt.Fprintf(stderr, "INFO: %s\n", r.Message)
	case StatusWarning:
		fmt.Fprintf(stderr, "WARNING: %s\n", r.Message)
	case StatusInconsistent:
		fmt.Fprintln(stderr, rule)
		fmt.Fprintln(stderr, "!!! INCONSISTENCY IN PYTHON VERSIONS IN PYPROJECT.TOML !!!")
		fmt.Fprintf(stderr, "  Minimum version in `classifiers`: %s\n", r.MinClassifierVersion)
		fmt.Fprintf(stderr, "  Previous minor version (not in `classifiers`): %s\n", r.PreviousMinorVersion)
		fmt.Fprintf(stderr, "  `requires-python` setting is: %q\n", r.RequiresPython)
		fmt.Fprintf(stderr, "  ERROR: %s\n", r.Message)
		fmt.Fprintf(stderr, "  RECOMMENDATION: Change `requires-python` into: %q\n", r.Recommendation)
		fmt.Fprintln(stderr, rule)
	case StatusConsistent:
		// Without a previous minor version the message explains why nothing was compared.
		if r.PreviousMinorVersion == "" {
			fmt.Fprintf(stderr, "INFO: %s\n", r.Message)
		}
		fmt.Fprintf(stdout, "✅ %s\n", consistencyMessage(r.MinClassifierVersion))
	}
}

// WriteDocument encodes r as JSON or YAML.
func WriteDocument(w io.Writer, r *Report, format Format) error {
	switch format {
	case FormatJSON:
		out, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling report: %w", err)
		}
		fmt.Fprintln(w, string(out))
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("marshaling report: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("format %q is not a document format", format)
	}
}
