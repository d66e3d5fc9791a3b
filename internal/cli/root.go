package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/agentx-labs/pyvercheck/internal/branding"
	"github.com/agentx-labs/pyvercheck/internal/checker"
	"github.com/agentx-labs/pyvercheck/internal/config"
	"github.com/agentx-labs/pyvercheck/internal/pyproject"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

// newRootCmd builds the command tree. The root command runs the check.
func newRootCmd() (*cobra.Command, error) {
	v := config.New()

	cmd := &cobra.Command{
		Use:   branding.CLIName(),
		Short: branding.Description(),
		Long: branding.DisplayName() + ` verifies that the requires-python specifier in pyproject.toml does not
admit an interpreter older than the oldest "Programming Language :: Python :: X.Y"
classifier. It exits 1 when, for example, the classifiers start at 3.10 but
requires-python is ">=3.9".`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := config.Resolve(v)
			if err != nil {
				return err
			}
			err = checker.Run(checker.Options{
				Path:   settings.File,
				Format: settings.Format,
				Stdout: cmd.OutOrStdout(),
				Stderr: cmd.ErrOrStderr(),
			})
			if err != nil {
				return &reportedError{err: err}
			}
			return nil
		},
	}

	cmd.Flags().String(config.KeyFile, pyproject.FileName,
		fmt.Sprintf("Path to the pyproject.toml to check (env %s)", branding.EnvVar(config.KeyFile)))
	cmd.Flags().String(config.KeyFormat, string(checker.FormatText),
		fmt.Sprintf("Output format: text, json, or yaml (env %s)", branding.EnvVar(config.KeyFormat)))
	if err := config.BindFlags(v, cmd.Flags()); err != nil {
		return nil, err
	}

	cmd.AddCommand(newVersionCmd())
	return cmd, nil
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	cmd, err := newRootCmd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		return err
	}
	return execute(cmd)
}

// execute runs cmd and writes errors the check did not already report.
func execute(cmd *cobra.Command) error {
	err := cmd.Execute()
	var re *reportedError
	if err != nil && !errors.As(err, &re) {
		fmt.Fprintf(cmd.ErrOrStderr(), "ERROR: %v\n", err)
	}
	return err
}

// reportedError marks an error whose diagnostics the checker already wrote.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }

func (e *reportedError) Unwrap() error { return e.err }
