package storage

import (
	"bytes"
	"context"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type S3Config struct {
	Bucket    string
	Region    string
	Endpoint  string
	AccessKey string
	SecretKey string
	// PublicURL overrides the base of returned object URLs, e.g. a CDN.
	PublicURL string
}

// S3Store writes public objects to an S3 compatible bucket.
type S3Store struct {
	client *s3.Client
	cfg    S3Config
}

func NewS3Store(cfg S3Config) *S3Store {
	opts := s3.Options{
		Region: cfg.Region,
		Credentials: aws.NewCredentialsCache(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		),
	}
	if cfg.Endpoint != "" {
		// minio and other self-hosted endpoints
		opts.BaseEndpoint = aws.String(cfg.Endpoint)
		opts.UsePathStyle = true
	}

	return &S3Store{client: s3.New(opts), cfg: cfg}
}

func (s *S3Store) Put(ctx context.Context, key string, body []byte, contentType string) (string, error) {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:       aws.String(s.cfg.Bucket),
		Key:          aws.String(key),
		Body:         bytes.NewReader(body),
		ContentType:  aws.String(contentType),
		CacheControl: aws.String("public, max-age=31536000"),
	})
	if err != nil {
		return "", err
	}
	return ObjectURL(s.cfg, key), nil
}

// ObjectURL is the public address of key in the configured bucket.
func ObjectURL(cfg S3Config, key string) string {
	switch {
	case cfg.PublicURL != "":
		return strings.TrimRight(cfg.PublicURL, "/") + "/" + key
	case cfg.Endpoint != "":
		return strings.TrimRight(cfg.Endpoint, "/") + "/" + cfg.Bucket + "/" + key
	default:
		return "https://" + cfg.Bucket + ".s3." + cfg.Region + ".amazonaws.com/" + key
	}
}
