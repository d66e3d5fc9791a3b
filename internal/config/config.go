package config

import (
	"fmt"
	"strings"

	"github.com/agentx-labs/pyvercheck/internal/branding"
	"github.com/agentx-labs/pyvercheck/internal/checker"
	"github.com/agentx-labs/pyvercheck/internal/pyproject"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Setting keys. Each maps to a flag of the same name and a
// PYVERCHECK_<KEY> environment variable.
const (
	KeyFile   = "file"
	KeyFormat = "format"
)

// Settings is the resolved configuration for one run.
type Settings struct {
	File   string
	Format checker.Format
}

// New returns a Viper instance reading the environment with defaults set.
func New() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(branding.EnvPrefix())
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyFile, pyproject.FileName)
	v.SetDefault(KeyFormat, string(checker.FormatText))
	return v
}

// BindFlags binds every setting key that has a flag in fs.
func BindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	for _, key := range []string{KeyFile, KeyFormat} {
		f := fs.Lookup(key)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("binding flag %s: %w", key, err)
		}
	}
	return nil
}

// Resolve reads and validates the settings from v.
func Resolve(v *viper.Viper) (Settings, error) {
	format, err := checker.ParseFormat(v.GetString(KeyFormat))
	if err != nil {
		return Settings{}, err
	}

	file := strings.TrimSpace(v.GetString(KeyFile))
	if file == "" {
		file = pyproject.FileName
	}
	return Settings{File: file, Format: format}, nil
}
