package storage

import (
	"bytes"
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/CarePulseLabs/clinic-scheduler/internal/config"
)

// S3API is the subset of the S3 client the uploader needs.
type S3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// Uploader stores processed documents and photos in an S3 bucket. With no
// bucket configured every call is a no-op, so local development works
// without object storage.
type Uploader struct {
	bucket string
	client S3API
}

func NewUploader(cfg *config.Config) *Uploader {
	opts := s3.Options{
		Region: cfg.S3Region,
		Credentials: aws.NewCredentialsCache(
			credentials.NewStaticCredentialsProvider(cfg.S3AccessKeyID, cfg.S3SecretAccessKey, ""),
		),
	}

	// Custom endpoint covers S3-compatible stores (MinIO in dev).
	if cfg.S3Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.S3Endpoint)
		opts.UsePathStyle = true
	}

	return &Uploader{
		bucket: cfg.S3Bucket,
		client: s3.New(opts),
	}
}

func NewUploaderWithClient(client S3API, bucket string) *Uploader {
	return &Uploader{bucket: bucket, client: client}
}

func (u *Uploader) Enabled() bool {
	return u != nil && u.bucket != "" && u.client != nil
}

func (u *Uploader) Put(ctx context.Context, key string, contentType string, body []byte) error {
	if !u.Enabled() {
		return nil
	}

	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(contentType),
	})
	return err
}
