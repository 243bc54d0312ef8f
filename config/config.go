package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// DefaultBaseURL is used when the credentials file has no base_url
const DefaultBaseURL = "https://twit.tv/api/v1.0"

// Load loads the configuration from file. An empty path searches the
// standard locations for credentials.yml.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Set default values
	setDefaults(v)

	// The credentials file is YAML whatever its extension
	v.SetConfigType("yaml")

	if configPath != "" {
		if _, err := os.Stat(configPath); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
			}
			return nil, fmt.Errorf("error reading config: %w", err)
		}
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("credentials")

		// Check current directory first, then the shared parent location
		v.AddConfigPath(".")
		v.AddConfigPath("..")

		// Check home directory
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".twit"))
		}

		// Check /etc
		v.AddConfigPath("/etc/twit/")
	}

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil, fmt.Errorf("%w: %w", ErrConfigNotFound, err)
		}
		var parseErr viper.ConfigParseError
		if errors.As(err, &parseErr) {
			return nil, fmt.Errorf("%w: %w", ErrConfigParse, err)
		}
		return nil, fmt.Errorf("error reading config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("%w: error unmarshaling config: %w", ErrConfigParse, err)
	}

	// Validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("%w: invalid configuration: %w", ErrConfigParse, err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("twit_api.base_url", DefaultBaseURL)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.color", true)
}

// placeholders are the values shipped in credentials.yml.sample
var placeholders = map[string]bool{
	"your-app-id-here":  true,
	"your-app-key-here": true,
}

var validLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// ValidateLogLevel checks level against the supported log levels
func ValidateLogLevel(level string) error {
	if !validLevels[level] {
		return fmt.Errorf("invalid logging level: %s", level)
	}
	return nil
}

// validate checks if the configuration is valid
func validate(cfg *Config) error {
	cfg.TwitAPI.AppID = strings.TrimSpace(cfg.TwitAPI.AppID)
	cfg.TwitAPI.AppKey = strings.TrimSpace(cfg.TwitAPI.AppKey)

	if cfg.TwitAPI.AppID == "" || placeholders[cfg.TwitAPI.AppID] {
		return fmt.Errorf("twit_api.app_id must be set to a valid app id")
	}

	if cfg.TwitAPI.AppKey == "" || placeholders[cfg.TwitAPI.AppKey] {
		return fmt.Errorf("twit_api.app_key must be set to a valid app key")
	}

	if cfg.TwitAPI.BaseURL == "" {
		cfg.TwitAPI.BaseURL = DefaultBaseURL
	}
	u, err := url.Parse(cfg.TwitAPI.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("invalid twit_api.base_url: %s", cfg.TwitAPI.BaseURL)
	}

	if err := ValidateLogLevel(cfg.Logging.Level); err != nil {
		return err
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
