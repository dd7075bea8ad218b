package assetstore

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var keyPattern = regexp.MustCompile(`^\d{13}-[0-9a-f]{12}\.png$`)

func TestNewObjectKeyFormat(t *testing.T) {
	key := NewObjectKey("Foto Proyek.PNG")
	assert.Regexp(t, keyPattern, key)
}

func TestNewObjectKeyUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		key := NewObjectKey("a.jpg")
		require.False(t, seen[key], "duplicate key %s", key)
		seen[key] = true
	}
}

func TestNewObjectKeyNoExtension(t *testing.T) {
	key := NewObjectKey("README")
	assert.Regexp(t, `^\d{13}-[0-9a-f]{12}$`, key)
}

func TestPublicURL(t *testing.T) {
	cfg := &Config{PublicBaseURL: "https://cdn.seido.co.id/"}
	url := cfg.PublicURL(BucketBlogImages, "1700000000000-abcdef123456.png")
	assert.Equal(t, "https://cdn.seido.co.id/blog-images/1700000000000-abcdef123456.png", url)
}

func TestKeyFromURLRoundTrip(t *testing.T) {
	cfg := &Config{PublicBaseURL: "https://cdn.seido.co.id"}
	key := NewObjectKey("logo.webp")

	url := cfg.PublicURL(BucketPortfolios, key)
	assert.Equal(t, key, cfg.KeyFromURL(BucketPortfolios, url))
}

func TestKeyFromURLWrongBucket(t *testing.T) {
	cfg := &Config{PublicBaseURL: "https://cdn.seido.co.id"}
	url := cfg.PublicURL(BucketBlogImages, "k.png")
	assert.Empty(t, cfg.KeyFromURL(BucketPortfolios, url))
}

func TestKeyFromURLForeignURL(t *testing.T) {
	cfg := &Config{PublicBaseURL: "https://cdn.seido.co.id"}
	assert.Empty(t, cfg.KeyFromURL(BucketBlogImages, "https://example.com/x.png"))
}
