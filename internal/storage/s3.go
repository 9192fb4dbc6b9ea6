package storage

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
)

// S3Signer issues presigned PUT URLs against S3 or any S3-compatible
// endpoint (Cloudflare R2 uses the same SDK with a custom endpoint).
type S3Signer struct {
	client  *s3.S3
	bucket  string
	baseURL string
	ttl     time.Duration
}

// NewS3Signer creates a signer for AWS S3.
func NewS3Signer(cfg Config) (*S3Signer, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if cfg.Region == "" {
		return nil, fmt.Errorf("missing storage credentials: region")
	}

	awsConfig := &aws.Config{
		Region:      aws.String(cfg.Region),
		Credentials: credentials.NewStaticCredentials(cfg.AccessKey, cfg.SecretKey, ""),
	}
	if cfg.Endpoint != "" {
		awsConfig.Endpoint = aws.String(cfg.Endpoint)
		awsConfig.S3ForcePathStyle = aws.Bool(true)
	}

	sess, err := session.NewSession(awsConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create S3 session: %w", err)
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		// Standard regional S3 URL; a CDN in front goes through base_url
		baseURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Bucket, cfg.Region)
	}

	return &S3Signer{
		client:  s3.New(sess),
		bucket:  cfg.Bucket,
		baseURL: strings.TrimRight(baseURL, "/"),
		ttl:     cfg.signTTL(),
	}, nil
}

// NewR2Signer creates a signer for Cloudflare R2.
// R2 is S3-compatible, so we use the same SDK.
func NewR2Signer(cfg Config) (*S3Signer, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("endpoint is required for Cloudflare R2")
	}

	awsConfig := &aws.Config{
		Region:           aws.String("auto"),
		Endpoint:         aws.String(cfg.Endpoint),
		Credentials:      credentials.NewStaticCredentials(cfg.AccessKey, cfg.SecretKey, ""),
		S3ForcePathStyle: aws.Bool(true),
	}

	sess, err := session.NewSession(awsConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create R2 session: %w", err)
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		// R2 public bucket URL
		baseURL = fmt.Sprintf("https://%s.r2.dev", cfg.Bucket)
	}

	return &S3Signer{
		client:  s3.New(sess),
		bucket:  cfg.Bucket,
		baseURL: strings.TrimRight(baseURL, "/"),
		ttl:     cfg.signTTL(),
	}, nil
}

// SignUpload presigns a PUT for a fresh object key. The credential is
// scoped to the key and content type and expires after the configured TTL.
func (s *S3Signer) SignUpload(ctx context.Context, filename, contentType string) (*SignedUpload, error) {
	now := time.Now()
	key := BuildObjectKey(filename, now)

	req, _ := s.client.PutObjectRequest(&s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
		ACL:         aws.String("public-read"), // bucket policy may override
	})
	req.SetContext(ctx)

	signedURL, err := req.Presign(s.ttl)
	if err != nil {
		return nil, fmt.Errorf("failed to presign upload: %w", err)
	}

	return &SignedUpload{
		SignedURL: signedURL,
		PublicURL: fmt.Sprintf("%s/%s", s.baseURL, key),
		Key:       key,
		ExpiresAt: now.Add(s.ttl),
	}, nil
}

// Delete removes an object from the bucket.
func (s *S3Signer) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObjectWithContext(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete object: %w", err)
	}
	return nil
}

// KeyFromURL reports the object key when url points into this bucket's
// public base. External URLs (user-entered sources) report false.
func (s *S3Signer) KeyFromURL(url string) (string, bool) {
	prefix := s.baseURL + "/"
	if !strings.HasPrefix(url, prefix) {
		return "", false
	}
	key := strings.TrimPrefix(url, prefix)
	if key == "" {
		return "", false
	}
	return key, true
}
