package main

import (
	"os"

	"golang.org/x/exp/slog"
	"gopkg.in/yaml.v3"
)

//**********************************************************
// run configuration
//**********************************************************

// RunConfig carries the artifact paths and defaults a query run needs.
// Command-line flags override whatever a config file sets.
type RunConfig struct {
	Shortcuts string `yaml:"shortcuts"`
	Edges     string `yaml:"edges"`
	Algorithm string `yaml:"algorithm"`
	LogLevel  string `yaml:"log-level"`
}

func defaultConfig() RunConfig {
	return RunConfig{
		Algorithm: "pruned",
		LogLevel:  "info",
	}
}

// ReadConfig loads a RunConfig from a yaml file, falling back to
// defaultConfig for any field the file doesn't set.
func ReadConfig(file string) (RunConfig, error) {
	cfg := defaultConfig()
	data, err := os.ReadFile(file)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func logLevel(name string) slog.Level {
	switch name {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
