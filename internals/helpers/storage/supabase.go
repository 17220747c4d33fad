package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
)

// SupabaseStorage uploads to a public Supabase Storage bucket.
type SupabaseStorage struct {
	ProjectURL string
	ServiceKey string
	Bucket     string
	Client     *http.Client
}

func NewSupabaseStorage(projectURL, serviceKey, bucket string) (*SupabaseStorage, error) {
	if projectURL == "" || serviceKey == "" {
		return nil, fmt.Errorf("SUPABASE_PROJECT_URL or SUPABASE_SERVICE_ROLE_KEY is not set")
	}
	if bucket == "" {
		bucket = "image"
	}
	return &SupabaseStorage{
		ProjectURL: strings.TrimRight(projectURL, "/"),
		ServiceKey: serviceKey,
		Bucket:     bucket,
		Client:     &http.Client{Timeout: 30 * time.Second},
	}, nil
}

func (s *SupabaseStorage) objectURL(key string) string {
	return fmt.Sprintf("%s/storage/v1/object/%s/%s", s.ProjectURL, s.Bucket, key)
}

// PublicURL is the URL returned to clients for key.
func (s *SupabaseStorage) PublicURL(key string) string {
	parts := strings.Split(key, "/")
	for i, p := range parts {
		parts[i] = url.PathEscape(p)
	}
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", s.ProjectURL, s.Bucket, strings.Join(parts, "/"))
}

func (s *SupabaseStorage) do(ctx context.Context, method, key, contentType string, body io.Reader) error {
	req, err := http.NewRequestWithContext(ctx, method, s.objectURL(key), body)
	if err != nil {
		return fmt.Errorf("build storage request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.ServiceKey)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := s.Client.Do(req)
	if err != nil {
		return fmt.Errorf("storage request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return fmt.Errorf("storage %s failed with status %d: %s", method, resp.StatusCode, string(msg))
	}
	return nil
}

func (s *SupabaseStorage) Put(ctx context.Context, key, contentType string, data []byte) (string, error) {
	if err := s.do(ctx, http.MethodPut, key, contentType, bytes.NewReader(data)); err != nil {
		return "", err
	}
	log.WithFields(log.Fields{"bucket": s.Bucket, "key": key, "size": len(data)}).Debug("object uploaded")
	return s.PublicURL(key), nil
}

// Delete accepts a key or a URL returned by Put.
func (s *SupabaseStorage) Delete(ctx context.Context, key string) error {
	if strings.HasPrefix(key, s.ProjectURL+"/") {
		k, err := s.KeyFromPublicURL(key)
		if err != nil {
			return err
		}
		key = k
	}
	return s.do(ctx, http.MethodDelete, key, "", nil)
}

// KeyFromPublicURL extracts the object key from a URL produced by PublicURL.
func (s *SupabaseStorage) KeyFromPublicURL(fullURL string) (string, error) {
	u, err := url.Parse(fullURL)
	if err != nil {
		return "", err
	}
	prefix := "/storage/v1/object/public/" + s.Bucket + "/"
	if !strings.HasPrefix(u.Path, prefix) {
		return "", fmt.Errorf("not a public object of bucket %q", s.Bucket)
	}
	return strings.TrimPrefix(u.Path, prefix), nil
}
