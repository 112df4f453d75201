// Package gateway implements an access-control gateway in front of an
// S3-compatible object store. A caller presents an s3://bucket/key locator;
// the gateway checks the request origin and the bucket against configured
// allow-lists, confirms the object exists, and resolves a time-limited
// presigned download URL for it.
//
// The package holds no state across requests: configuration is injected at
// construction time and the storage collaborator is abstracted behind the
// BlobStore interface, so the pipeline is pure and testable.
package gateway
