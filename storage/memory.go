package storage

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
)

type memoryUploader struct {
	mu            sync.RWMutex
	publicBaseURL string
	objects       map[string][]byte
}

// NewMemoryUploader keeps uploaded objects in process memory. It is the
// default when no R2 credentials are configured, and the uploader used in
// tests.
func NewMemoryUploader(publicBaseURL string) FileUploader {
	return &memoryUploader{
		publicBaseURL: strings.TrimSuffix(publicBaseURL, "/"),
		objects:       map[string][]byte{},
	}
}

func (u *memoryUploader) Upload(_ context.Context, key string, _ string, reader io.Reader) (*UploadResult, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read upload body (key: %s): %w", key, err)
	}

	u.mu.Lock()
	u.objects[key] = data
	u.mu.Unlock()

	return &UploadResult{
		Key:      key,
		Location: u.GetPublicURL(key),
	}, nil
}

func (u *memoryUploader) Delete(_ context.Context, key string) error {
	u.mu.Lock()
	delete(u.objects, key)
	u.mu.Unlock()
	return nil
}

func (u *memoryUploader) GetPublicURL(key string) string {
	if key == "" {
		return ""
	}
	return u.publicBaseURL + "/" + strings.TrimPrefix(key, "/")
}
