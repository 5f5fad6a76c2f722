package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	ConfigPath string // hcl file or directory
	OutputPath string // overrides output.path from config when set

	LogFormat       string
	LogLevel        string
	HealthcheckPort int
	WorkerCount     int
	DryRun          bool
	Daemon          bool
}

func NewConfig(cfg Config) (*Config, error) {
	if cfg.ConfigPath == "" {
		return nil, errors.New("ConfigPath is a required configuration field and cannot be empty")
	}

	if cfg.WorkerCount <= 0 {
		cfg.WorkerCount = 4
	}

	return &cfg, nil
}
