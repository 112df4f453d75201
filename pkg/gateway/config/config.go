// Package config loads gateway configuration from the process environment.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config is the process-wide gateway configuration, loaded once at startup
// and immutable afterwards.
type Config struct {
	Port string `env:"PORT" env-default:"8080"`

	// Comma-separated allow-lists. Both are required; a missing value is
	// startup-fatal, not a per-request error.
	AllowedBuckets string `env:"ALLOWED_BUCKETS" env-required:"true"`
	AllowedOrigins string `env:"ALLOWED_ORIGINS" env-required:"true"`

	S3 S3Config
}

// S3Config holds settings for the S3 storage collaborator.
type S3Config struct {
	Endpoint        string `env:"AWS_S3_ENDPOINT" env-default:""`
	Region          string `env:"AWS_S3_REGION" env-default:"us-east-1"`
	AccessKeyID     string `env:"AWS_ACCESS_KEY_ID" env-default:""`
	SecretAccessKey string `env:"AWS_SECRET_ACCESS_KEY" env-default:""`
	UsePathStyle    bool   `env:"AWS_S3_USE_PATH_STYLE" env-default:"false"`
	PresignDuration int    `env:"AWS_S3_PRESIGN_DURATION" env-default:"3600"`
}

// Load reads configuration from environment variables and validates it.
func Load() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("failed to read configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// Validate checks that both allow-lists contain at least one usable entry.
func (c *Config) Validate() error {
	if len(c.BucketList()) == 0 {
		return errors.New("ALLOWED_BUCKETS must contain at least one bucket")
	}
	if len(c.OriginList()) == 0 {
		return errors.New("ALLOWED_ORIGINS must contain at least one origin")
	}
	return nil
}

// BucketList returns the parsed bucket allow-list.
func (c *Config) BucketList() []string {
	return splitList(c.AllowedBuckets)
}

// OriginList returns the parsed origin allow-list, order preserved. The
// first entry is the fallback CORS origin on error responses.
func (c *Config) OriginList() []string {
	return splitList(c.AllowedOrigins)
}

func splitList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			items = append(items, item)
		}
	}
	return items
}
