package gateway

import "strings"

// Scheme is the locator prefix identifying an object in S3-compatible storage.
const Scheme = "s3://"

// Locator identifies a single object in storage.
type Locator struct {
	Bucket string
	Key    string
}

// String formats the locator back into s3://bucket/key form.
func (l Locator) String() string {
	return Scheme + l.Bucket + "/" + l.Key
}

// ParseLocator parses an s3://bucket/key string. The remainder after the
// scheme is split on the first "/" only, so the key keeps any further "/"
// characters verbatim. A locator without a key, or with an empty key
// (s3://bucket/), is rejected with ErrMissingObjectKey.
func ParseLocator(uri string) (Locator, error) {
	if !strings.HasPrefix(uri, Scheme) {
		return Locator{}, ErrInvalidScheme
	}

	parts := strings.SplitN(uri[len(Scheme):], "/", 2)
	if len(parts) < 2 || parts[1] == "" {
		return Locator{Bucket: parts[0]}, ErrMissingObjectKey
	}

	return Locator{Bucket: parts[0], Key: parts[1]}, nil
}
