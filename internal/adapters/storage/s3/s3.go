// Package s3 reads and writes audio objects in an S3 bucket.
package s3

import (
	"context"
	"fmt"
	"io"

	"github.com/SscSPs/voice_journal_app/internal/core/domain"
	"github.com/SscSPs/voice_journal_app/internal/core/ports/gateways"
	"github.com/SscSPs/voice_journal_app/internal/utils/locator"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Config holds the bucket and credentials. Empty credentials fall back to the default AWS chain.
type Config struct {
	Region          string
	Bucket          string
	Endpoint        string // for S3-compatible stores; enables path-style addressing
	AccessKeyID     string
	SecretAccessKey string
}

// Store implements gateways.ObjectFetcher and gateways.ObjectUploader.
type Store struct {
	client   *s3.Client
	uploader *manager.Uploader
	bucket   string
	region   string
}

var (
	_ gateways.ObjectFetcher  = (*Store)(nil)
	_ gateways.ObjectUploader = (*Store)(nil)
)

// NewStore loads the AWS configuration and builds the S3 client.
func NewStore(ctx context.Context, cfg Config) (*Store, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("s3 bucket name cannot be empty")
	}
	if cfg.Region == "" {
		return nil, fmt.Errorf("s3 region cannot be empty")
	}

	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(cfg.Region)}
	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return &Store{
		client:   client,
		uploader: manager.NewUploader(client),
		bucket:   cfg.Bucket,
		region:   cfg.Region,
	}, nil
}

// FetchObject opens the object body. The caller closes it.
func (s *Store) FetchObject(ctx context.Context, ref domain.ObjectRef) (io.ReadCloser, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(ref.Container),
		Key:    aws.String(ref.Key),
	})
	if err != nil {
		return nil, fmt.Errorf("get s3://%s/%s: %w", ref.Container, ref.Key, err)
	}
	return out.Body, nil
}

// UploadObject writes body under key in the configured bucket and returns its canonical locator.
func (s *Store) UploadObject(ctx context.Context, key string, body io.Reader, contentType string) (string, error) {
	_, err := s.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("put s3://%s/%s: %w", s.bucket, key, err)
	}
	return locator.Format(domain.ObjectRef{Container: s.bucket, Region: s.region, Key: key}), nil
}
