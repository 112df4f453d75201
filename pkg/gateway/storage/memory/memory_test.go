package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tendant/presigned-gateway/pkg/gateway"
)

func TestObjectExists(t *testing.T) {
	store := New()
	store.Put("bucket", "path/to/file.txt", []byte("data"))

	assert.NoError(t, store.ObjectExists(context.Background(), "bucket", "path/to/file.txt"))
	assert.ErrorIs(t, store.ObjectExists(context.Background(), "bucket", "missing.txt"), gateway.ErrObjectNotFound)
	assert.ErrorIs(t, store.ObjectExists(context.Background(), "other", "path/to/file.txt"), gateway.ErrObjectNotFound)
}

func TestGetDownloadURL(t *testing.T) {
	store := New()
	store.Put("bucket", "file.txt", []byte("data"))

	url, err := store.GetDownloadURL(context.Background(), "bucket", "file.txt")
	require.NoError(t, err)
	assert.Contains(t, url, "bucket.s3.amazonaws.com")
	assert.Contains(t, url, "X-Amz-Expires=3600")

	_, err = store.GetDownloadURL(context.Background(), "bucket", "missing.txt")
	assert.ErrorIs(t, err, gateway.ErrObjectNotFound)
}
