package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Setenv("ALLOWED_BUCKETS", "mybucket,otherbucket")
	t.Setenv("ALLOWED_ORIGINS", "https://app.example.com")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, []string{"mybucket", "otherbucket"}, cfg.BucketList())
	assert.Equal(t, []string{"https://app.example.com"}, cfg.OriginList())
	assert.Equal(t, "us-east-1", cfg.S3.Region)
	assert.Equal(t, 3600, cfg.S3.PresignDuration)
}

func TestLoad_MissingRequired(t *testing.T) {
	t.Run("NoBuckets", func(t *testing.T) {
		t.Setenv("ALLOWED_ORIGINS", "https://app.example.com")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("NoOrigins", func(t *testing.T) {
		t.Setenv("ALLOWED_BUCKETS", "mybucket")
		_, err := Load()
		assert.Error(t, err)
	})
}

func TestLoad_BlankListsRejected(t *testing.T) {
	t.Setenv("ALLOWED_BUCKETS", " , ,")
	t.Setenv("ALLOWED_ORIGINS", "https://app.example.com")

	_, err := Load()
	assert.ErrorContains(t, err, "ALLOWED_BUCKETS")
}

func TestSplitList(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  []string
	}{
		{"single", "mybucket", []string{"mybucket"}},
		{"multiple", "a,b,c", []string{"a", "b", "c"}},
		{"spaces trimmed", " a , b ", []string{"a", "b"}},
		{"empty entries dropped", "a,,b,", []string{"a", "b"}},
		{"empty string", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, splitList(tt.value))
		})
	}
}

func TestOrderPreserved(t *testing.T) {
	// The first origin is the CORS fallback, so order matters.
	t.Setenv("ALLOWED_BUCKETS", "b1")
	t.Setenv("ALLOWED_ORIGINS", "https://first.example.com,https://second.example.com")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "https://first.example.com", cfg.OriginList()[0])
}
