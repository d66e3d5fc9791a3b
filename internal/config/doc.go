// Package config resolves runtime settings for the checker. Values come from
// command-line flags, then PYVERCHECK_* environment variables, then defaults,
// all through a Viper instance.
package config
