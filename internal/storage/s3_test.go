package storage

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() Config {
	return Config{
		Type:      "s3",
		Bucket:    "test-bucket",
		Region:    "eu-central-1",
		AccessKey: "AKIATEST",
		SecretKey: "secret",
		SignTTL:   60 * time.Second,
	}
}

func TestBuildObjectKey(t *testing.T) {
	now := time.UnixMilli(1700000000000)

	key := BuildObjectKey("movie.mp4", now)
	assert.Equal(t, "uploads/1700000000000-movie.mp4", key)

	// Spaces are replaced, path segments are stripped
	key = BuildObjectKey("my summer movie.mp4", now)
	assert.Equal(t, "uploads/1700000000000-my_summer_movie.mp4", key)

	key = BuildObjectKey("../../etc/passwd", now)
	assert.Equal(t, "uploads/1700000000000-passwd", key)

	key = BuildObjectKey(`C:\Users\clip.mov`, now)
	assert.Equal(t, "uploads/1700000000000-clip.mov", key)

	// Different timestamps never collide for the same filename
	later := BuildObjectKey("movie.mp4", now.Add(time.Millisecond))
	assert.NotEqual(t, key, later)
}

func TestNewSigner_Validation(t *testing.T) {
	t.Run("missing credentials are named, never echoed", func(t *testing.T) {
		cfg := testConfig()
		cfg.Bucket = ""
		cfg.SecretKey = ""

		_, err := NewSigner(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "bucket")
		assert.Contains(t, err.Error(), "secret_key")
		assert.NotContains(t, err.Error(), "AKIATEST")
	})

	t.Run("s3 requires region", func(t *testing.T) {
		cfg := testConfig()
		cfg.Region = ""

		_, err := NewSigner(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "region")
	})

	t.Run("r2 requires endpoint", func(t *testing.T) {
		cfg := testConfig()
		cfg.Type = "cloudflare_r2"
		cfg.Endpoint = ""

		_, err := NewSigner(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "endpoint")
	})

	t.Run("unsupported type", func(t *testing.T) {
		cfg := testConfig()
		cfg.Type = "gcs"

		_, err := NewSigner(cfg)
		require.Error(t, err)
	})
}

func TestSignTTL_Clamp(t *testing.T) {
	cfg := testConfig()

	cfg.SignTTL = 5 * time.Second
	assert.Equal(t, MinSignTTL, cfg.signTTL())

	cfg.SignTTL = time.Hour
	assert.Equal(t, MaxSignTTL, cfg.signTTL())

	cfg.SignTTL = 120 * time.Second
	assert.Equal(t, 120*time.Second, cfg.signTTL())
}

func TestS3Signer_SignUpload(t *testing.T) {
	// Presigning is pure local computation, no network involved
	signer, err := NewS3Signer(testConfig())
	require.NoError(t, err)

	signed, err := signer.SignUpload(context.Background(), "demo clip.mp4", "video/mp4")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(signed.Key, "uploads/"))
	assert.True(t, strings.HasSuffix(signed.Key, "-demo_clip.mp4"))
	assert.Contains(t, signed.SignedURL, "test-bucket")
	assert.Contains(t, signed.SignedURL, "X-Amz-Signature=")
	assert.Equal(t, fmt.Sprintf("https://test-bucket.s3.eu-central-1.amazonaws.com/%s", signed.Key), signed.PublicURL)
	assert.WithinDuration(t, time.Now().Add(60*time.Second), signed.ExpiresAt, 5*time.Second)

	// A second sign for the same filename must hit a distinct key
	time.Sleep(2 * time.Millisecond)
	again, err := signer.SignUpload(context.Background(), "demo clip.mp4", "video/mp4")
	require.NoError(t, err)
	assert.NotEqual(t, signed.Key, again.Key)
}

func TestS3Signer_KeyFromURL(t *testing.T) {
	cfg := testConfig()
	cfg.BaseURL = "https://cdn.example.com"
	signer, err := NewS3Signer(cfg)
	require.NoError(t, err)

	key, ok := signer.KeyFromURL("https://cdn.example.com/uploads/123-movie.mp4")
	assert.True(t, ok)
	assert.Equal(t, "uploads/123-movie.mp4", key)

	// External user-entered URLs do not belong to the bucket
	_, ok = signer.KeyFromURL("https://videos.example.org/clip.mp4")
	assert.False(t, ok)

	_, ok = signer.KeyFromURL("https://cdn.example.com/")
	assert.False(t, ok)
}
