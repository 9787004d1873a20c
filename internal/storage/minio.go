package storage

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/op/go-logging"

	"github.com/mediabox/service/internal/logger"
)

// MinioOptions configures the S3-compatible backend.
type MinioOptions struct {
	Endpoint string // "host:port" or "http(s)://host:port"
	Region   string
	Bucket   string

	// CredentialsPath points at a service-account file: a MinIO client
	// config.json (looked up by CredentialsAlias) or an AWS shared
	// credentials file. AccessKey/SecretKey are used when the file is absent.
	CredentialsPath  string
	CredentialsAlias string
	AccessKey        string
	SecretKey        string
}

// MinioStorage implements Storage using a MinIO (or any S3-compatible) backend.
type MinioStorage struct {
	client *minio.Client
	bucket string
	log    *logging.Logger
}

// NewMinioStorage creates a MinIO client, ensures the bucket exists, and
// returns a ready-to-use MinioStorage. An unreachable backend is an error.
func NewMinioStorage(ctx context.Context, opts MinioOptions, log *logging.Logger) (*MinioStorage, error) {
	client, err := newMinioClient(opts)
	if err != nil {
		return nil, err
	}

	exists, err := client.BucketExists(ctx, opts.Bucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket existence: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, opts.Bucket, minio.MakeBucketOptions{Region: opts.Region}); err != nil {
			return nil, fmt.Errorf("create bucket %q: %w", opts.Bucket, err)
		}
		log.Noticef("storage: created bucket %q", opts.Bucket)
	}

	return &MinioStorage{client: client, bucket: opts.Bucket, log: log}, nil
}

func newMinioClient(opts MinioOptions) (*minio.Client, error) {
	endpoint, secure, err := normaliseEndpoint(opts.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("storage endpoint: %w", err)
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentialChain(opts),
		Secure: secure,
		Region: opts.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client: %w", err)
	}
	return client, nil
}

// credentialChain resolves keys from the credential file first, then from
// static keys, then from the standard MINIO_* and AWS_* variables.
func credentialChain(opts MinioOptions) *credentials.Credentials {
	var providers []credentials.Provider
	if opts.CredentialsPath != "" {
		providers = append(providers,
			&credentials.FileMinioClient{Filename: opts.CredentialsPath, Alias: opts.CredentialsAlias},
			&credentials.FileAWSCredentials{Filename: opts.CredentialsPath},
		)
	}
	providers = append(providers,
		&credentials.Static{Value: credentials.Value{
			AccessKeyID:     opts.AccessKey,
			SecretAccessKey: opts.SecretKey,
			SignerType:      credentials.SignatureV4,
		}},
		&credentials.EnvMinio{},
		&credentials.EnvAWS{},
	)
	return credentials.NewChainCredentials(providers)
}

// normaliseEndpoint accepts either "minio:9000" or "http(s)://minio:9000".
func normaliseEndpoint(raw string) (endpoint string, secure bool, err error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false, fmt.Errorf("empty endpoint")
	}

	if strings.Contains(raw, "://") {
		u, err := url.Parse(raw)
		if err != nil {
			return "", false, err
		}
		if u.Host == "" {
			return "", false, fmt.Errorf("invalid endpoint")
		}
		if u.Path != "" && u.Path != "/" {
			return "", false, fmt.Errorf("endpoint must not contain a path")
		}
		return u.Host, u.Scheme == "https", nil
	}

	// No scheme, treat as host:port (insecure, as for a local MinIO).
	return raw, false, nil
}

// Upload streams reader to the bucket under key. size must be the exact byte
// count (pass -1 only if the size is genuinely unknown, MinIO will buffer it).
func (s *MinioStorage) Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error {
	opts := minio.PutObjectOptions{ContentType: contentType}
	if s.log != nil && size > 0 {
		opts.Progress = logger.NewUploadProgress(s.log, key, size)
	}

	info, err := s.client.PutObject(ctx, s.bucket, key, reader, size, opts)
	if err != nil {
		return fmt.Errorf("put object %q: %w", key, err)
	}
	if s.log != nil {
		s.log.Debugf("storage: stored %q (%d bytes, etag %s)", key, info.Size, info.ETag)
	}
	return nil
}

// List returns all objects under prefix, descending into "folders".
// WithMetadata makes MinIO report each object's stored content type;
// providers without the extension leave it empty.
func (s *MinioStorage) List(ctx context.Context, prefix string) ([]Object, error) {
	objects := make([]Object, 0)
	opts := minio.ListObjectsOptions{Prefix: prefix, Recursive: true, WithMetadata: true}
	for info := range s.client.ListObjects(ctx, s.bucket, opts) {
		if info.Err != nil {
			return nil, fmt.Errorf("list objects: %w", info.Err)
		}
		if strings.TrimSpace(info.Key) == "" {
			continue
		}
		objects = append(objects, objectFromInfo(info))
	}
	return objects, nil
}

func objectFromInfo(info minio.ObjectInfo) Object {
	contentType := info.ContentType
	if contentType == "" {
		for k, v := range info.UserMetadata {
			if strings.EqualFold(k, "Content-Type") {
				contentType = v
				break
			}
		}
	}
	return Object{
		Key:         info.Key,
		Size:        info.Size,
		ContentType: contentType,
		// S3 listings only carry the last-modified time; objects are
		// never rewritten so it is also the creation time.
		Created: info.LastModified,
		Updated: info.LastModified,
	}
}

// SignedURL returns a presigned GET URL for key valid for expiry.
func (s *MinioStorage) SignedURL(ctx context.Context, key string, expiry time.Duration) (string, error) {
	u, err := s.client.PresignedGetObject(ctx, s.bucket, key, expiry, nil)
	if err != nil {
		return "", fmt.Errorf("presign object %q: %w", key, err)
	}
	return u.String(), nil
}
