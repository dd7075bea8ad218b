package assetstore

import (
	"errors"

	"github.com/juanrengga/seido-web/internal/pkg/env"
)

// Bucket names, one per content area. Mirrored by the store-side policies.
const (
	BucketBlogImages = "blog-images"
	BucketPortfolios = "portfolios"
)

// Config holds the S3-compatible object store configuration
type Config struct {
	AccessKeyID     string
	SecretAccessKey string
	Region          string
	EndpointURL     string // Optional for S3-compatible services
	PublicBaseURL   string // Base URL under which uploaded objects resolve
	Enabled         bool
}

// LoadConfig loads the asset store configuration from environment variables
func LoadConfig() (*Config, error) {
	config := &Config{
		AccessKeyID:     env.GetEnv("S3_ACCESS_KEY_ID", ""),
		SecretAccessKey: env.GetEnv("S3_SECRET_ACCESS_KEY", ""),
		Region:          env.GetEnv("S3_REGION", "us-east-1"),
		EndpointURL:     env.GetEnv("S3_ENDPOINT_URL", ""),
		PublicBaseURL:   env.GetEnv("S3_PUBLIC_BASE_URL", ""),
		Enabled:         env.GetEnv("S3_ENABLED", "false") == "true",
	}

	if config.Enabled {
		if config.AccessKeyID == "" {
			return nil, errors.New("S3_ACCESS_KEY_ID is required when the asset store is enabled")
		}
		if config.SecretAccessKey == "" {
			return nil, errors.New("S3_SECRET_ACCESS_KEY is required when the asset store is enabled")
		}
		if config.PublicBaseURL == "" {
			return nil, errors.New("S3_PUBLIC_BASE_URL is required when the asset store is enabled")
		}
	}

	return config, nil
}

// IsEnabled returns true if the asset store is configured
func (c *Config) IsEnabled() bool {
	return c.Enabled
}
