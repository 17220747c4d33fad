package storage

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"path"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

type MinioOptions struct {
	// Endpoint is host:port, e.g. "127.0.0.1:9000".
	Endpoint   string
	AccessKey  string
	SecretKey  string
	Bucket     string
	UseSSL     bool
	PublicBase string
}

// MinioStorage stores objects in an S3 compatible bucket that is readable at PublicBase.
type MinioStorage struct {
	client     *minio.Client
	bucket     string
	publicBase string
}

// NewMinioStorage connects and creates the bucket when it is missing.
func NewMinioStorage(ctx context.Context, o MinioOptions) (*MinioStorage, error) {
	if o.Endpoint == "" || o.Bucket == "" {
		return nil, fmt.Errorf("MINIO_ENDPOINT or MINIO_BUCKET is not set")
	}
	c, err := minio.New(o.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(o.AccessKey, o.SecretKey, ""),
		Secure: o.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("minio client: %w", err)
	}

	exists, err := c.BucketExists(ctx, o.Bucket)
	if err != nil {
		return nil, fmt.Errorf("minio bucket check: %w", err)
	}
	if !exists {
		if err := c.MakeBucket(ctx, o.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("minio make bucket: %w", err)
		}
	}

	base := strings.TrimRight(o.PublicBase, "/")
	if base == "" {
		scheme := "http"
		if o.UseSSL {
			scheme = "https"
		}
		base = scheme + "://" + o.Endpoint
	}
	return &MinioStorage{client: c, bucket: o.Bucket, publicBase: base}, nil
}

// PublicURL is <PublicBase>/<bucket>/<key>.
func (m *MinioStorage) PublicURL(key string) string {
	u, err := url.Parse(m.publicBase)
	if err != nil {
		return m.publicBase + "/" + m.bucket + "/" + key
	}
	u.Path = path.Join(u.Path, m.bucket, key)
	return u.String()
}

func (m *MinioStorage) Put(ctx context.Context, key, contentType string, data []byte) (string, error) {
	_, err := m.client.PutObject(ctx, m.bucket, key, bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", fmt.Errorf("minio put %s: %w", key, err)
	}
	return m.PublicURL(key), nil
}

// Delete accepts a key or a URL returned by Put.
func (m *MinioStorage) Delete(ctx context.Context, key string) error {
	key = strings.TrimPrefix(key, m.publicBase+"/"+m.bucket+"/")
	if u, err := url.PathUnescape(key); err == nil {
		key = u
	}
	return m.client.RemoveObject(ctx, m.bucket, key, minio.RemoveObjectOptions{})
}
