package imagestore

import (
	"context"
	"path"
	"sync"
)

// Fake is an in-memory Store used by service tests. FailUploads makes every
// Upload return the given error message, to exercise rollback paths.
type Fake struct {
	mu      sync.Mutex
	maxSize int64
	objects map[string]string

	FailUploads error
}

func NewFake() *Fake {
	return &Fake{
		maxSize: 10 * 1024 * 1024,
		objects: make(map[string]string),
	}
}

func (f *Fake) Upload(_ context.Context, imageData, name string) error {
	if f.FailUploads != nil {
		return f.FailUploads
	}
	if _, err := decodeDataURI(imageData, f.maxSize); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.objects[name] = imageData
	return nil
}

func (f *Fake) Delete(_ context.Context, urlOrName string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.objects, path.Base(urlOrName))
	return nil
}

func (f *Fake) URLFor(name string) string {
	return "/images/" + name
}

// Has reports whether name is currently stored.
func (f *Fake) Has(name string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.objects[name]
	return ok
}
