package messages

import (
	"context"
	"errors"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config selects where message templates come from.
type Config struct {
	// Dir is a directory of <lang>.yaml|yml|json files. Empty means the
	// embedded translations.
	Dir             string `env:"VALIDATION_MESSAGES_DIR"`
	DefaultLanguage string `env:"VALIDATION_DEFAULT_LANGUAGE" envDefault:"en"`
}

// LoadConfig reads Config from the environment. Files in envFiles are
// loaded first without overriding variables that are already set; when none
// are given, a .env file in the working directory is used if present.
func LoadConfig(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		// The default .env file is optional.
		_ = godotenv.Load()
	} else if err := godotenv.Load(envFiles...); err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}
	return cfg, nil
}

// FromConfig builds a bundle as described by cfg.
func FromConfig(ctx context.Context, cfg Config, opts ...Option) (*Bundle, error) {
	opts = append([]Option{WithDefaultLanguage(cfg.DefaultLanguage)}, opts...)
	if cfg.Dir == "" {
		return Default(ctx, opts...)
	}
	return LoadDir(ctx, cfg.Dir, opts...)
}
