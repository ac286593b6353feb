// Package cliconfig loads the utoken.yml/utoken.yaml project config that
// supplies defaults for the utokenize/detokenize CLI flags.
package cliconfig

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config is the utoken.yml project configuration. CLI flags always
// override these values, which override the built-in defaults set below.
type Config struct {
	DataDir          string `mapstructure:"data_dir"`
	DefaultLanguage  string `mapstructure:"default_language"`
	AnnotationFormat string `mapstructure:"annotation_format"`
	MaxLineBytes     int    `mapstructure:"max_line_bytes"`
}

// Load reads utoken.yml/.yaml from the current directory, falling back to
// defaults when no file is present. Environment variables UTOKEN_DATA_DIR,
// UTOKEN_DEFAULT_LANGUAGE, UTOKEN_ANNOTATION_FORMAT, and
// UTOKEN_MAX_LINE_BYTES are auto-bound and take precedence over the file.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("data_dir", "data")
	v.SetDefault("default_language", "eng")
	v.SetDefault("annotation_format", "double-colon")
	v.SetDefault("max_line_bytes", 1<<20)

	v.SetConfigName("utoken")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix("UTOKEN")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("cliconfig: reading utoken.yml: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("cliconfig: unmarshaling config: %w", err)
	}
	return &cfg, nil
}
