package config

import "time"

// Config represents the complete configuration structure
type Config struct {
	Plex    PlexConfig    `mapstructure:"plex"`
	Export  ExportConfig  `mapstructure:"export"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// PlexConfig holds Plex server connection details
type PlexConfig struct {
	URL   string `mapstructure:"url"`
	Token string `mapstructure:"token"`
}

// ExportConfig contains export output settings
type ExportConfig struct {
	// Dir is the default directory CSV files are written into.
	Dir string `mapstructure:"dir"`
	// LockFile is the single-instance lock path, outside the output dir.
	LockFile string `mapstructure:"lock_file"`
	// PageDelay is the pause between successive page requests.
	PageDelay time.Duration `mapstructure:"page_delay"`
	// RetryDelay is the fixed wait between retries of a failed page.
	RetryDelay time.Duration `mapstructure:"retry_delay"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}
