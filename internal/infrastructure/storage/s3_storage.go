package storage

import (
	"bytes"
	"confeccao_os/internal/config"
	"confeccao_os/internal/infrastructure/database"
	"confeccao_os/internal/usecase/interfaces"
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// objectPutter is the part of *s3.Client the storage adapter calls.
type objectPutter interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Storage stores quote attachments in an S3-compatible bucket and builds
// their public URLs.
type S3Storage struct {
	client  objectPutter
	bucket  string
	baseURL string
}

var _ interfaces.IObjectStorage = (*S3Storage)(nil)

// NewS3Storage connects to S3 (or a local emulator when S3Endpoint is set).
func NewS3Storage(ctx context.Context, cfg *config.Config) (*S3Storage, error) {
	awsCfg, err := database.NewAWSConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3Endpoint)
			o.UsePathStyle = true
		}
	})
	return &S3Storage{
		client:  client,
		bucket:  cfg.StorageBucket,
		baseURL: publicBaseURL(cfg),
	}, nil
}

func (s *S3Storage) Upload(ctx context.Context, key string, contentType string, body []byte) error {
	log.Printf("[storage][s3] upload start bucket=%s key=%s size=%d", s.bucket, key, len(body))
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(body),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(body))),
	})
	if err != nil {
		log.Printf("[storage][s3] upload failed key=%s err=%v", key, err)
		return fmt.Errorf("put object %s: %w", key, err)
	}
	return nil
}

func (s *S3Storage) PublicURL(key string) string {
	return s.baseURL + "/" + strings.TrimLeft(key, "/")
}

// publicBaseURL picks, in order: the configured public base, the emulator
// endpoint in path style, or the regional virtual-hosted bucket URL.
func publicBaseURL(cfg *config.Config) string {
	if base := strings.TrimSpace(cfg.StoragePublicBaseURL); base != "" {
		return strings.TrimRight(base, "/")
	}
	if cfg.S3Endpoint != "" {
		return strings.TrimRight(cfg.S3Endpoint, "/") + "/" + cfg.StorageBucket
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.StorageBucket, cfg.AWSRegion)
}
