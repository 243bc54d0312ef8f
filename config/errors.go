package config

import "errors"

var (
	// ErrConfigNotFound is returned when the credentials file does not exist.
	ErrConfigNotFound = errors.New("config file not found")

	// ErrConfigParse is returned when the credentials file cannot be parsed
	// or lacks required fields.
	ErrConfigParse = errors.New("config parse error")
)
