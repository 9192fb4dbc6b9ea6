package storage

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"
)

// Upload object keys live under a single namespace segment.
const keyPrefix = "uploads"

// Sign TTL bounds. Values outside this window are clamped at construction.
const (
	MinSignTTL = 60 * time.Second
	MaxSignTTL = 300 * time.Second
)

// SignedUpload is a one-shot write credential for a single object plus the
// URL the object will be readable from once the client finishes the PUT.
type SignedUpload struct {
	SignedURL string    `json:"signedUrl"`
	PublicURL string    `json:"publicUrl"`
	Key       string    `json:"-"`
	ExpiresAt time.Time `json:"-"`
}

// Signer issues scoped, time-bounded write credentials for direct-to-bucket
// uploads. Signing has no side effects: no object is written until the
// client performs the PUT itself.
type Signer interface {
	// SignUpload produces a presigned PUT URL for a fresh object key derived
	// from filename. Repeated calls with the same filename sign distinct keys.
	SignUpload(ctx context.Context, filename, contentType string) (*SignedUpload, error)

	// Delete removes an object. Used for best-effort cleanup only.
	Delete(ctx context.Context, key string) error

	// KeyFromURL maps a public URL back to an object key, or reports false
	// when the URL does not belong to this bucket.
	KeyFromURL(url string) (string, bool)
}

// Config holds signer configuration. Passed in explicitly at construction;
// the signer never reads the environment.
type Config struct {
	Type      string // s3, cloudflare_r2
	Bucket    string
	Region    string // For S3
	AccessKey string
	SecretKey string
	Endpoint  string        // For R2 or custom S3
	BaseURL   string        // Public URL base (CDN), optional
	SignTTL   time.Duration // Presigned URL lifetime, clamped to [MinSignTTL, MaxSignTTL]
}

// NewSigner creates a signer based on configuration. A missing bucket or
// credential is a fatal misconfiguration; the returned error names the
// missing field but never echoes values.
func NewSigner(cfg Config) (Signer, error) {
	switch cfg.Type {
	case "s3":
		return NewS3Signer(cfg)
	case "cloudflare_r2":
		return NewR2Signer(cfg)
	default:
		return nil, fmt.Errorf("unsupported storage type: %s", cfg.Type)
	}
}

func (c Config) validate() error {
	var missing []string
	if c.Bucket == "" {
		missing = append(missing, "bucket")
	}
	if c.AccessKey == "" {
		missing = append(missing, "access_key")
	}
	if c.SecretKey == "" {
		missing = append(missing, "secret_key")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing storage credentials: %s", strings.Join(missing, ", "))
	}
	return nil
}

func (c Config) signTTL() time.Duration {
	ttl := c.SignTTL
	if ttl < MinSignTTL {
		ttl = MinSignTTL
	}
	if ttl > MaxSignTTL {
		ttl = MaxSignTTL
	}
	return ttl
}

// BuildObjectKey derives a namespaced, collision-free object key from a
// client filename. The millisecond token keeps concurrent uploads of the
// same filename on distinct keys.
func BuildObjectKey(filename string, now time.Time) string {
	name := path.Base(strings.ReplaceAll(filename, "\\", "/"))
	name = strings.ReplaceAll(name, " ", "_")
	return fmt.Sprintf("%s/%d-%s", keyPrefix, now.UnixMilli(), name)
}
