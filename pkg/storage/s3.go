package storage

import (
	"context"
	"fmt"
	"io"
	"time"

	"travel-functions/pkg/utils"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3API is the part of the S3 client the store uses.
type S3API interface {
	ListBuckets(ctx context.Context, params *s3.ListBucketsInput, optFns ...func(*s3.Options)) (*s3.ListBucketsOutput, error)
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// ObjectStore abstraction untuk object storage
type ObjectStore interface {
	ListBuckets(ctx context.Context) ([]Bucket, error)
	OpenObject(ctx context.Context, bucket, key string) (*Object, error)
	Region() string
}

type Bucket struct {
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// Object is an open object body plus the metadata returned with it.
type Object struct {
	Body         io.ReadCloser
	Bucket       string
	Key          string
	Size         int64
	ContentType  string
	LastModified time.Time
}

// S3Store wrapper struct
type S3Store struct {
	client S3API
	region string
}

func NewS3Store(client S3API, region string) *S3Store {
	return &S3Store{client: client, region: region}
}

// InitS3 builds an S3 client from the default credential chain, or from
// static keys and a custom endpoint when those are configured.
func InitS3(ctx context.Context, config utils.StorageConfig) (*S3Store, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(config.Region),
	}
	if config.AccessKey != "" && config.SecretKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(config.AccessKey, config.SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if config.Endpoint != "" {
			o.BaseEndpoint = aws.String(config.Endpoint)
		}
		o.UsePathStyle = config.PathStyle
	})

	return NewS3Store(client, config.Region), nil
}

func (s *S3Store) Region() string {
	return s.region
}

// ListBuckets returns every bucket in a single call, no pagination.
func (s *S3Store) ListBuckets(ctx context.Context) ([]Bucket, error) {
	out, err := s.client.ListBuckets(ctx, &s3.ListBucketsInput{})
	if err != nil {
		return nil, fmt.Errorf("list buckets: %w", err)
	}

	buckets := make([]Bucket, 0, len(out.Buckets))
	for _, b := range out.Buckets {
		buckets = append(buckets, Bucket{
			Name:      aws.ToString(b.Name),
			CreatedAt: aws.ToTime(b.CreationDate),
		})
	}
	return buckets, nil
}

// OpenObject streams the object body in one GetObject call. Callers close Body.
func (s *S3Store) OpenObject(ctx context.Context, bucket, key string) (*Object, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", URI(bucket, key), err)
	}

	return &Object{
		Body:         out.Body,
		Bucket:       bucket,
		Key:          key,
		Size:         aws.ToInt64(out.ContentLength),
		ContentType:  aws.ToString(out.ContentType),
		LastModified: aws.ToTime(out.LastModified),
	}, nil
}

// URI formats an s3:// location for logs and error messages.
func URI(bucket, key string) string {
	return fmt.Sprintf("s3://%s/%s", bucket, key)
}
