package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	DefsPath string // optional definition file override

	LogFormat string
	LogLevel  string

	// List requests the usage/unit listing instead of a conversion.
	List     bool
	Value    float64
	FromUnit string
	ToUnit   string
}

// NewConfig validates a Config and returns it.
func NewConfig(cfg Config) (*Config, error) {
	if !cfg.List && (cfg.FromUnit == "" || cfg.ToUnit == "") {
		return nil, errors.New("a conversion needs both a source and a destination unit")
	}

	return &cfg, nil
}
