package gateway

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
)

type service struct {
	store          BlobStore
	allowedBuckets []string
	allowedOrigins []string
}

func (s *service) ResolveDownload(ctx context.Context, req ResolveRequest) (string, error) {
	if !OriginAuthorized(req.Origin, req.Referer, s.allowedOrigins) {
		slog.Warn("Rejected unauthorized origin", "origin", req.Origin, "referer", req.Referer)
		return "", &GatewayError{
			Status:  http.StatusForbidden,
			Message: "Unauthorized origin.",
			Err:     ErrUnauthorizedOrigin,
		}
	}

	if req.URI == "" {
		return "", &GatewayError{
			Status:  http.StatusBadRequest,
			Message: "URI parameter is required with format s3://bucket-name/path/to/file",
			Err:     ErrMissingLocator,
		}
	}

	loc, err := ParseLocator(req.URI)
	if errors.Is(err, ErrInvalidScheme) {
		return "", &GatewayError{
			Status:  http.StatusBadRequest,
			Message: "URI must have the format s3://bucket-name/path/to/file",
			Err:     fmt.Errorf("parsing %q: %w", req.URI, err),
		}
	}
	if err != nil {
		return "", &GatewayError{
			Status:  http.StatusBadRequest,
			Message: "Invalid S3 URI. Expected format: s3://bucket-name/path/to/file",
			Err:     fmt.Errorf("parsing %q: %w", req.URI, err),
		}
	}

	if !s.bucketAllowed(loc.Bucket) {
		slog.Warn("Rejected bucket outside allow-list", "bucket", loc.Bucket)
		return "", &GatewayError{
			Status: http.StatusForbidden,
			Message: fmt.Sprintf("You don't have permission to access bucket: %s. Allowed buckets: %v",
				loc.Bucket, s.allowedBuckets),
			Err: ErrBucketNotAllowed,
		}
	}

	// Any storage error here, access denied included, reads as not-found to
	// the caller. The cause is logged, never exposed.
	if err := s.store.ObjectExists(ctx, loc.Bucket, loc.Key); err != nil {
		slog.Warn("Object lookup failed", "bucket", loc.Bucket, "key", loc.Key, "err", err)
		return "", &GatewayError{
			Status:  http.StatusNotFound,
			Message: "File not found",
			Err:     fmt.Errorf("%w: %v", ErrObjectNotFound, err),
		}
	}

	signedURL, err := s.store.GetDownloadURL(ctx, loc.Bucket, loc.Key)
	if err != nil {
		slog.Error("Failed to generate presigned URL", "bucket", loc.Bucket, "key", loc.Key, "err", err)
		return "", &GatewayError{
			Status:  http.StatusInternalServerError,
			Message: "Internal server error",
			Err:     fmt.Errorf("presigning %s: %w", loc, err),
		}
	}

	return signedURL, nil
}

func (s *service) bucketAllowed(bucket string) bool {
	for _, allowed := range s.allowedBuckets {
		if bucket == allowed {
			return true
		}
	}
	return false
}
