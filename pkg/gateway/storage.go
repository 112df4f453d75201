package gateway

import "context"

// BlobStore is the storage collaborator the gateway consults before issuing
// a redirect. Implementations span multiple buckets, so both operations take
// an explicit bucket.
type BlobStore interface {
	// ObjectExists confirms the object is present in storage. It returns
	// ErrObjectNotFound (possibly wrapped) when the object is missing or
	// inaccessible.
	ObjectExists(ctx context.Context, bucket, key string) error

	// GetDownloadURL returns a presigned, read-only URL for the object,
	// valid for the store's configured duration.
	GetDownloadURL(ctx context.Context, bucket, key string) (string, error)
}
