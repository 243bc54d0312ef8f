package config

// Config represents the complete configuration structure
type Config struct {
	TwitAPI Credentials   `mapstructure:"twit_api"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// Credentials holds the TWiT API key pair and the API root
type Credentials struct {
	AppID   string `mapstructure:"app_id"`
	AppKey  string `mapstructure:"app_key"`
	BaseURL string `mapstructure:"base_url"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}
