package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the application-shell configuration: where the input series
// comes from, how the replay is paced, and where steps are recorded. The
// oscillator tuning itself is fixed in code and deliberately absent here.
type Config struct {
	Series struct {
		Name    string `yaml:"name"`
		CSVPath string `yaml:"csv_path"`
	} `yaml:"series"`
	Schedule struct {
		StepCron string `yaml:"step_cron"`
	} `yaml:"schedule"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	RunOnStart bool `yaml:"run_on_start"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides. A missing file is not an error; defaults fill the gaps.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("SERIES_NAME"); v != "" {
		cfg.Series.Name = v
	}
	if v := os.Getenv("SERIES_CSV"); v != "" {
		cfg.Series.CSVPath = v
	}
	if v := os.Getenv("CRON_STEP"); v != "" {
		cfg.Schedule.StepCron = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("RUN_ON_START"); v != "" {
		cfg.RunOnStart = v == "true"
	}

	// Defaults
	if cfg.Series.Name == "" {
		cfg.Series.Name = "VEXEL7"
	}
	if cfg.Schedule.StepCron == "" {
		cfg.Schedule.StepCron = "*/5 * * * * *"
	}
	if cfg.Database.SQLitePath == "" {
		cfg.Database.SQLitePath = "data/kappatrend.db"
	}

	return cfg, nil
}

// Validate checks that all required fields are set.
func (c *Config) Validate() error {
	if c.Series.Name == "" {
		return fmt.Errorf("series.name is required")
	}
	if c.Schedule.StepCron == "" {
		return fmt.Errorf("schedule.step_cron is required")
	}
	return nil
}
