package assetstore

import (
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gofiber/fiber/v2/log"
)

// Client wraps the S3 client with asset-store-specific functionality
type Client struct {
	s3Client *s3.Client
	config   *Config
}

// NewClient creates a new asset store client
func NewClient(cfg *Config) (*Client, error) {
	if !cfg.IsEnabled() {
		return nil, fmt.Errorf("asset store is disabled")
	}

	awsConfig, err := config.LoadDefaultConfig(context.TODO(),
		config.WithRegion(cfg.Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	s3Client := s3.NewFromConfig(awsConfig, func(o *s3.Options) {
		if cfg.EndpointURL != "" {
			o.BaseEndpoint = aws.String(cfg.EndpointURL)
			// Path-style URLs for S3-compatible services
			o.UsePathStyle = true
			o.UseAccelerate = false
		}
	})

	return &Client{
		s3Client: s3Client,
		config:   cfg,
	}, nil
}

// Upload stores an already-validated file under the given key and returns
// its public URL. Validation (size, type) happens in the upload package
// before this call.
func (c *Client) Upload(ctx context.Context, bucket, key string, body io.Reader, contentType string, size int64) (string, error) {
	_, err := c.s3Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(bucket),
		Key:           aws.String(key),
		Body:          body,
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(size),
		CacheControl:  aws.String("max-age=3600"),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s/%s: %w", bucket, key, err)
	}

	url := c.config.PublicURL(bucket, key)
	log.Infof("[AssetStore] Uploaded %s/%s (%d bytes)", bucket, key, size)

	return url, nil
}

// Release deletes the object behind a public URL, best-effort. Failures are
// logged and swallowed: an orphaned asset must never fail the parent
// operation that triggered the cleanup.
func (c *Client) Release(ctx context.Context, bucket, publicURL string) {
	key := c.config.KeyFromURL(bucket, publicURL)
	if key == "" {
		log.Warnf("[AssetStore] Cannot derive object key from URL %s, skipping delete", publicURL)
		return
	}

	_, err := c.s3Client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		log.Errorf("[AssetStore] Failed to delete %s/%s: %v", bucket, key, err)
		return
	}

	log.Infof("[AssetStore] Deleted %s/%s", bucket, key)
}
