// Package config loads server settings from the environment.
package config

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Port         string   `envconfig:"PORT" default:"8080"`
	AllowOrigins []string `envconfig:"ALLOW_ORIGINS" default:"http://localhost:3000"`
	LogLevel     string   `envconfig:"LOG_LEVEL" default:"info"`
	// LOG_FORMAT switches between json and console encoders.
	LogFormat string `envconfig:"LOG_FORMAT" default:"json"`
	GinMode   string `envconfig:"GIN_MODE" default:"release"`
}

func Load() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
