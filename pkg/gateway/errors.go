package gateway

import (
	"errors"
	"fmt"
)

// Error types
var (
	// ErrUnauthorizedOrigin indicates the request origin is not allow-listed
	ErrUnauthorizedOrigin = errors.New("unauthorized origin")

	// ErrMissingLocator indicates no locator was supplied with the request
	ErrMissingLocator = errors.New("locator is required")

	// ErrInvalidScheme indicates a locator that does not start with s3://
	ErrInvalidScheme = errors.New("locator must use the s3:// scheme")

	// ErrMissingObjectKey indicates a locator with no object key after the bucket
	ErrMissingObjectKey = errors.New("locator has no object key")

	// ErrBucketNotAllowed indicates the bucket is not allow-listed
	ErrBucketNotAllowed = errors.New("bucket not allowed")

	// ErrObjectNotFound indicates the object does not exist in storage
	ErrObjectNotFound = errors.New("object not found")
)

// GatewayError carries the HTTP status and the public message for a failed
// resolve step. Message is safe to return to the caller; Err holds the
// underlying cause and is only logged.
type GatewayError struct {
	Status  int
	Message string
	Err     error
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("resolve failed with status %d: %v", e.Status, e.Err)
}

func (e *GatewayError) Unwrap() error {
	return e.Err
}
