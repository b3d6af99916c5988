// Package config handles runtime configuration for the mnemo tools.
//
// The core library in pkg/mnemonic takes everything it needs as
// explicit arguments; configuration here only concerns the CLI
// surface: which word list to load and how to log.
package config

// Config holds CLI runtime configuration.
type Config struct {
	// WordListFile is a path to a word-list JSON file. Empty means the
	// embedded English list.
	WordListFile string

	// JSON switches command output to machine-readable JSON.
	JSON bool

	// Log holds logging configuration.
	Log LogConfig
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string // debug, info, warn, error
	JSON  bool
}

// Default returns the default CLI configuration.
func Default() *Config {
	return &Config{
		WordListFile: "",
		JSON:         false,
		Log: LogConfig{
			Level: "warn",
			JSON:  false,
		},
	}
}
