package upload

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
)

// MaxImageBytes is the upload size ceiling enforced before any call to the
// asset store.
const MaxImageBytes = 5 * 1024 * 1024 // 5 MB

var allowedExt = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

var allowedMime = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

const allowedTypesLabel = "JPEG, PNG, WebP and GIF"

// ValidateImage checks declared size, filename extension and the sniffed
// content of the first bytes against the image allow-list. It runs entirely
// locally so a rejected file never reaches the asset store. Returns the
// detected mime type or a client-visible validation error.
func ValidateImage(filename string, size int64, head []byte) (string, error) {
	if size > MaxImageBytes {
		return "", fmt.Errorf("file too large: maximum size is %d MB", MaxImageBytes/(1024*1024))
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedExt[ext] {
		return "", fmt.Errorf("invalid file type: only %s images are allowed", allowedTypesLabel)
	}

	detected := http.DetectContentType(head)

	// Block obvious scriptable types regardless of extension
	if strings.HasPrefix(detected, "text/html") || strings.HasPrefix(detected, "application/xhtml") {
		return "", fmt.Errorf("invalid file type: HTML content is not allowed")
	}
	if strings.HasPrefix(detected, "text/xml") || strings.HasPrefix(detected, "application/xml") || detected == "image/svg+xml" {
		return "", fmt.Errorf("invalid file type: SVG/XML are not supported")
	}

	// Some encoders produce octet-stream for valid images; allow by extension
	if detected == "application/octet-stream" && allowedExt[ext] {
		return detected, nil
	}

	if allowedMime[detected] {
		return detected, nil
	}

	return "", fmt.Errorf("invalid file type: only %s images are allowed", allowedTypesLabel)
}
