package checker

import (
	"fmt"
	"io"
)

// Options configures Run.
type Options struct {
	Path   string
	Format Format
	Stdout io.Writer
	Stderr io.Writer
}

// Run checks the manifest at opts.Path and writes the outcome. It returns
// ErrInconsistent when the check fails and the underlying error when the
// manifest cannot be checked at all; both mean exit status 1.
func Run(opts Options) error {
	report, err := Check(opts.Path)
	if err != nil {
		fmt.Fprintf(opts.Stderr, "ERROR: Error during checking python versions in %s: %v\n", opts.Path, err)
		return err
	}

	if opts.Format == FormatText || opts.Format == "" {
		WriteDiagnostics(opts.Stdout, opts.Stderr, report)
	} else {
		// Keep stdout machine-readable: the success line is replaced by the document.
		WriteDiagnostics(io.Discard, opts.Stderr, report)
		if err := WriteDocument(opts.Stdout, report, opts.Format); err != nil {
			fmt.Fprintf(opts.Stderr, "ERROR: %v\n", err)
			return err
		}
	}

	if report.Failed() {
		return ErrInconsistent
	}
	return nil
}
