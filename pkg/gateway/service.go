package gateway

import (
	"context"
	"errors"
)

// ResolveRequest carries the request-scoped inputs of a download resolution.
type ResolveRequest struct {
	// Origin is the value of the Origin header, empty when absent.
	Origin string
	// Referer is the value of the Referer header, empty when absent.
	Referer string
	// URI is the s3://bucket/key locator supplied by the caller.
	URI string
}

// Service resolves download requests into presigned URLs.
type Service interface {
	// ResolveDownload runs the authorization and validation pipeline for a
	// single request. On success it returns a presigned download URL; on
	// failure it returns a *GatewayError describing the HTTP status and
	// public message for the response.
	ResolveDownload(ctx context.Context, req ResolveRequest) (string, error)
}

// Option configures a Service during construction.
type Option func(*service)

// WithBlobStore sets the storage collaborator.
func WithBlobStore(store BlobStore) Option {
	return func(s *service) {
		s.store = store
	}
}

// WithAllowedBuckets sets the bucket allow-list.
func WithAllowedBuckets(buckets []string) Option {
	return func(s *service) {
		s.allowedBuckets = buckets
	}
}

// WithAllowedOrigins sets the origin allow-list.
func WithAllowedOrigins(origins []string) Option {
	return func(s *service) {
		s.allowedOrigins = origins
	}
}

// New creates a Service with the given options. A blob store and non-empty
// allow-lists are required.
func New(opts ...Option) (Service, error) {
	s := &service{}
	for _, opt := range opts {
		opt(s)
	}

	if s.store == nil {
		return nil, errors.New("blob store is required")
	}
	if len(s.allowedBuckets) == 0 {
		return nil, errors.New("at least one allowed bucket is required")
	}
	if len(s.allowedOrigins) == 0 {
		return nil, errors.New("at least one allowed origin is required")
	}

	return s, nil
}
