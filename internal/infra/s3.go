package infra

import (
	"bytes"
	"context"
	"fmt"

	awscfg "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// BlobStore archives imported spreadsheets. Upload returns the object's
// public download URL; no presigning, the bucket serves the audit view.
type BlobStore interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) (string, error)
}

type s3Store struct {
	client *s3.Client
	bucket string
	region string
}

// NewBlobStore builds an S3-backed BlobStore from the ambient AWS config.
func NewBlobStore(ctx context.Context, region, bucket string) (BlobStore, error) {
	cfg, err := awscfg.LoadDefaultConfig(ctx, awscfg.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("cargando config de aws: %w", err)
	}
	return &s3Store{client: s3.NewFromConfig(cfg), bucket: bucket, region: region}, nil
}

func (s *s3Store) Upload(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      &s.bucket,
		Key:         &key,
		Body:        bytes.NewReader(data),
		ContentType: &contentType,
	})
	if err != nil {
		return "", fmt.Errorf("subiendo %s: %w", key, err)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key), nil
}
