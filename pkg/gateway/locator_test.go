package gateway

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLocator(t *testing.T) {
	t.Run("NestedKey", func(t *testing.T) {
		loc, err := ParseLocator("s3://bucket/a/b/c")
		require.NoError(t, err)
		assert.Equal(t, "bucket", loc.Bucket)
		assert.Equal(t, "a/b/c", loc.Key)
	})

	t.Run("SimpleKey", func(t *testing.T) {
		loc, err := ParseLocator("s3://mybucket/file.txt")
		require.NoError(t, err)
		assert.Equal(t, "mybucket", loc.Bucket)
		assert.Equal(t, "file.txt", loc.Key)
	})

	t.Run("BucketOnly", func(t *testing.T) {
		loc, err := ParseLocator("s3://bucketonly")
		assert.ErrorIs(t, err, ErrMissingObjectKey)
		assert.Equal(t, "bucketonly", loc.Bucket)
	})

	t.Run("EmptyKey", func(t *testing.T) {
		loc, err := ParseLocator("s3://bucket/")
		assert.ErrorIs(t, err, ErrMissingObjectKey)
		assert.Equal(t, "bucket", loc.Bucket)
	})

	t.Run("WrongScheme", func(t *testing.T) {
		_, err := ParseLocator("ftp://bucket/file")
		assert.ErrorIs(t, err, ErrInvalidScheme)
	})

	t.Run("EmptyString", func(t *testing.T) {
		_, err := ParseLocator("")
		assert.ErrorIs(t, err, ErrInvalidScheme)
	})

	t.Run("SchemeOnly", func(t *testing.T) {
		_, err := ParseLocator("s3://")
		assert.ErrorIs(t, err, ErrMissingObjectKey)
	})
}

func TestLocatorString(t *testing.T) {
	loc := Locator{Bucket: "bucket", Key: "a/b/c"}
	assert.Equal(t, "s3://bucket/a/b/c", loc.String())
}
