// Package s3store implementa blob.Store sobre S3 (o MinIO vía endpoint custom).
package s3store

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"pet-care-records/internal/platform/config"
	"pet-care-records/internal/platform/httpclient"
	"pet-care-records/internal/platform/logger"
	"pet-care-records/internal/ports/blob"
)

// API es el subconjunto del cliente S3 que usamos (permite fakes en tests).
type API interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	HeadObject(ctx context.Context, in *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error)
	DeleteObject(ctx context.Context, in *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

type Store struct {
	client API
	bucket string
	log    logger.Logger
}

var _ blob.Store = (*Store)(nil)

// NewClient construye el cliente S3 a partir de la config.
// Si hay Endpoint (MinIO/localstack) se usa como BaseEndpoint.
func NewClient(ctx context.Context, cfg config.S3Config) (*s3.Client, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithHTTPClient(httpclient.New(cfg.Timeout)),
	}
	if cfg.AccessKeyID != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("s3: load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if ep := strings.TrimSpace(cfg.Endpoint); ep != "" {
			o.BaseEndpoint = aws.String(ep)
		}
		o.UsePathStyle = cfg.UsePathStyle
	})
	return client, nil
}

func NewStore(client API, bucket string, log logger.Logger) *Store {
	if log == nil {
		log = logger.NewNop()
	}
	return &Store{
		client: client,
		bucket: bucket,
		log:    log.With(map[string]any{"component": "blob.s3", "bucket": bucket}),
	}
}

// EnsureBucket crea el bucket si no existe. Pensado para dev con MinIO.
func EnsureBucket(ctx context.Context, client *s3.Client, bucket, region string, log logger.Logger) error {
	if _, err := client.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: aws.String(bucket)}); err == nil {
		return nil
	}

	in := &s3.CreateBucketInput{Bucket: aws.String(bucket)}
	// us-east-1 no acepta LocationConstraint explícito.
	if region != "" && region != "us-east-1" {
		in.CreateBucketConfiguration = &types.CreateBucketConfiguration{
			LocationConstraint: types.BucketLocationConstraint(region),
		}
	}
	if _, err := client.CreateBucket(ctx, in); err != nil {
		var owned *types.BucketAlreadyOwnedByYou
		if errors.As(err, &owned) {
			return nil
		}
		return fmt.Errorf("s3: create bucket: %w", err)
	}
	if log != nil {
		log.Info("bucket created", map[string]any{"bucket": bucket})
	}
	return nil
}

func (s *Store) Put(ctx context.Context, namespace string, data []byte, contentType string) (string, error) {
	key := blob.NewKey(namespace, contentType)

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(data))),
	})
	if err != nil {
		s.log.Error("put object failed", map[string]any{"key": key, "err": err})
		return "", fmt.Errorf("s3: put object: %w", err)
	}

	s.log.Debug("object stored", map[string]any{"key": key, "size": len(data)})
	return key, nil
}

// Delete consulta primero HeadObject: S3 responde 204 aunque el key no exista
// y necesitamos distinguir "ya no estaba".
func (s *Store) Delete(ctx context.Context, path string) error {
	_, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(path),
	})
	if err != nil {
		if isNotFound(err) {
			return blob.ErrNotFound
		}
		return fmt.Errorf("s3: head object: %w", err)
	}

	if _, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(path),
	}); err != nil {
		s.log.Error("delete object failed", map[string]any{"key": path, "err": err})
		return fmt.Errorf("s3: delete object: %w", err)
	}
	return nil
}

func isNotFound(err error) bool {
	var nf *types.NotFound
	if errors.As(err, &nf) {
		return true
	}
	var nsk *types.NoSuchKey
	return errors.As(err, &nsk)
}
