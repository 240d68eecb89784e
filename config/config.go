package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Load loads the configuration from file
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Set default values
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		// Look for config in standard locations
		v.SetConfigName("config")
		v.SetConfigType("yaml")

		// Check current directory first
		v.AddConfigPath(".")

		// Check home directory
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".plexcsv"))
		}

		// Check /etc
		v.AddConfigPath("/etc/plexcsv/")
	}

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil, fmt.Errorf("config file not found: %w", err)
		}
		return nil, fmt.Errorf("error reading config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Plex defaults
	v.SetDefault("plex.url", "http://localhost:32400")

	// Export defaults
	v.SetDefault("export.dir", ".")
	v.SetDefault("export.lock_file", defaultLockFile())
	v.SetDefault("export.page_delay", 500*time.Millisecond)
	v.SetDefault("export.retry_delay", 5*time.Second)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.color", true)
}

func defaultLockFile() string {
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".plexcsv", "plexcsv.lock")
	}
	return filepath.Join(os.TempDir(), "plexcsv.lock")
}

// validate checks if the configuration is valid
func validate(cfg *Config) error {
	if cfg.Plex.URL == "" {
		return fmt.Errorf("plex.url is required")
	}

	if cfg.Plex.Token == "" || cfg.Plex.Token == "your-plex-token-here" {
		return fmt.Errorf("plex.token must be set to a valid token")
	}

	if cfg.Export.PageDelay < 0 {
		return fmt.Errorf("export.page_delay must not be negative")
	}

	if cfg.Export.RetryDelay < 0 {
		return fmt.Errorf("export.retry_delay must not be negative")
	}

	// Validate logging level
	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("invalid logging level: %s", cfg.Logging.Level)
	}

	// Validate logging format
	validFormats := map[string]bool{
		"console": true,
		"json":    true,
	}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("invalid logging format: %s", cfg.Logging.Format)
	}

	return nil
}
