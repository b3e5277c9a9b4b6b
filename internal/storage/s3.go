package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/affu-79/PII-SENTINEL-BACKEND-sub002/internal/common"
)

// S3Store backs the object contract with any S3-compatible endpoint
// (AWS, R2, MinIO). Locations are "s3://<bucket>/<key>".
type S3Store struct {
	client *s3.Client
	bucket string
	logger *slog.Logger
}

func NewS3Store(ctx context.Context, cfg common.StorageConfig, logger *slog.Logger) (*S3Store, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Bucket == "" || cfg.AccessKeyID == "" || cfg.SecretAccessKey == "" {
		return nil, fmt.Errorf("s3 configuration incomplete")
	}

	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID, cfg.SecretAccessKey, "")),
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})
	return &S3Store{client: client, bucket: cfg.Bucket, logger: logger}, nil
}

func (s *S3Store) Store(ctx context.Context, data []byte) (string, error) {
	key := uuid.New().String()
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
		Body:   bytes.NewReader(data),
	})
	if err != nil {
		return "", fmt.Errorf("put object: %w", err)
	}
	s.logger.Debug("object stored", "key", key, "bytes", len(data))
	return "s3://" + s.bucket + "/" + key, nil
}

func (s *S3Store) Fetch(ctx context.Context, location string) ([]byte, error) {
	key, err := s.objectKey(location)
	if err != nil {
		return nil, err
	}
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("get object: %w", err)
	}
	defer func() { _ = out.Body.Close() }()
	return io.ReadAll(out.Body)
}

func (s *S3Store) Delete(ctx context.Context, location string) error {
	key, err := s.objectKey(location)
	if err != nil {
		return err
	}
	_, err = s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("delete object: %w", err)
	}
	return nil
}

func (s *S3Store) objectKey(location string) (string, error) {
	rest, ok := strings.CutPrefix(location, "s3://"+s.bucket+"/")
	if !ok || rest == "" {
		return "", fmt.Errorf("invalid s3 location %q", location)
	}
	return rest, nil
}
