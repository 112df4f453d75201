// Package memory provides an in-memory blob store for testing. Presigned
// URLs are synthetic but follow the shape of real S3 presigned GETs so
// callers can assert on host and expiry.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/tendant/presigned-gateway/pkg/gateway"
)

// Store is an in-memory implementation of the gateway.BlobStore interface
type Store struct {
	mu      sync.RWMutex
	objects map[string][]byte
}

// New creates a new in-memory blob store
func New() *Store {
	return &Store{
		objects: make(map[string][]byte),
	}
}

// Put stores an object so later calls can resolve it
func (s *Store) Put(bucket, key string, data []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[bucket+"/"+key] = data
}

// ObjectExists confirms the object was stored with Put
func (s *Store) ObjectExists(ctx context.Context, bucket, key string) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.objects[bucket+"/"+key]; !ok {
		return gateway.ErrObjectNotFound
	}
	return nil
}

// GetDownloadURL returns a synthetic presigned-style URL for the object
func (s *Store) GetDownloadURL(ctx context.Context, bucket, key string) (string, error) {
	if err := s.ObjectExists(ctx, bucket, key); err != nil {
		return "", err
	}

	return fmt.Sprintf("https://%s.s3.amazonaws.com/%s?X-Amz-Algorithm=AWS4-HMAC-SHA256&X-Amz-Expires=3600", bucket, key), nil
}
