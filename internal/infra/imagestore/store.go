package imagestore

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"
)

// Store persists uploaded image blobs under a deterministic name. Delete is
// idempotent: removing a name that was never stored is a success.
type Store interface {
	Upload(ctx context.Context, imageData, name string) error
	Delete(ctx context.Context, urlOrName string) error
	URLFor(name string) string
}

var validDataPrefixes = []string{
	"data:image/jpeg;base64,",
	"data:image/png;base64,",
	"data:image/gif;base64,",
	"data:image/webp;base64,",
}

// IsValidImageData reports whether imageData carries one of the accepted
// data-URI prefixes (JPEG, PNG, GIF, WebP).
func IsValidImageData(imageData string) bool {
	for _, prefix := range validDataPrefixes {
		if strings.HasPrefix(imageData, prefix) {
			return true
		}
	}
	return false
}

// decodeDataURI extracts and decodes the base64 payload of an image data
// URI, enforcing the configured size cap.
func decodeDataURI(imageData string, maxSize int64) ([]byte, error) {
	if !strings.Contains(imageData, ",") {
		return nil, fmt.Errorf("Invalid image data format")
	}

	payload := imageData[strings.Index(imageData, ",")+1:]
	if payload == "" {
		return nil, fmt.Errorf("No image data found")
	}

	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("Invalid base64 image data")
	}

	if int64(len(raw)) > maxSize {
		return nil, fmt.Errorf("Image size exceeds maximum allowed size of %dMB", maxSize/(1024*1024))
	}

	return raw, nil
}
