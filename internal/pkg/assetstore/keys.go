package assetstore

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// NewObjectKey generates a collision-resistant object key for an uploaded
// file: millisecond timestamp prefix, random suffix, original extension
// preserved. Keys never collide with unrelated assets, so uploads never
// overwrite each other.
func NewObjectKey(originalFilename string) string {
	ext := strings.ToLower(filepath.Ext(originalFilename))
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:12]

	return fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), suffix, ext)
}

// PublicURL resolves the publicly reachable URL of an object.
func (c *Config) PublicURL(bucket, key string) string {
	base := strings.TrimRight(c.PublicBaseURL, "/")
	return fmt.Sprintf("%s/%s/%s", base, bucket, key)
}

// KeyFromURL extracts the storage-relative object key from a public URL.
// Returns an empty string when the URL does not belong to the given bucket.
func (c *Config) KeyFromURL(bucket, publicURL string) string {
	marker := "/" + bucket + "/"
	idx := strings.Index(publicURL, marker)
	if idx < 0 {
		return ""
	}
	return publicURL[idx+len(marker):]
}
