package imagestore

import (
	"context"
	"os"
	"path"
	"path/filepath"
)

// Local writes images to <publicDir>/images on the local filesystem and
// serves them from the /images static route.
type Local struct {
	uploadDir string
	maxSize   int64
}

func NewLocal(publicDir string, maxSize int64) (*Local, error) {
	uploadDir := filepath.Join(publicDir, "images")
	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		return nil, err
	}
	return &Local{uploadDir: uploadDir, maxSize: maxSize}, nil
}

// Dir returns the directory images are written to, for static serving.
func (l *Local) Dir() string {
	return l.uploadDir
}

func (l *Local) Upload(_ context.Context, imageData, name string) error {
	raw, err := decodeDataURI(imageData, l.maxSize)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(l.uploadDir, name), raw, 0o644)
}

func (l *Local) Delete(_ context.Context, urlOrName string) error {
	name := path.Base(urlOrName)
	err := os.Remove(filepath.Join(l.uploadDir, name))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (l *Local) URLFor(name string) string {
	return "/images/" + name
}
