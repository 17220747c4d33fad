package storage

import (
	"context"
	"fmt"
	"path"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"mutualaid_backend/internals/configs"
)

// Storage persists uploaded and generated images and returns a URL for each object.
// A URL starting with "/" is relative to the API host.
type Storage interface {
	Put(ctx context.Context, key, contentType string, data []byte) (string, error)
	Delete(ctx context.Context, key string) error
}

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9.\-_]+`)

func sanitizeFilename(filename string) string {
	return unsafeChars.ReplaceAllString(path.Base(filename), "_")
}

// GenerateUniqueFilename returns "<folder>/<yyyymmdd>-<uuid>-<name>".
func GenerateUniqueFilename(folder, originalFilename string) string {
	name := sanitizeFilename(originalFilename)
	if name == "" || name == "." || name == "_" {
		name = "image"
	}
	key := fmt.Sprintf("%s-%s-%s", time.Now().Format("20060102"), uuid.New().String(), name)
	if folder = strings.Trim(folder, "/"); folder != "" {
		key = folder + "/" + key
	}
	return key
}

// AbsoluteURL prefixes a host-relative URL with baseURL.
func AbsoluteURL(baseURL, u string) string {
	if !strings.HasPrefix(u, "/") || baseURL == "" {
		return u
	}
	return strings.TrimRight(baseURL, "/") + u
}

// LocalURLPrefix is where app.Static serves LocalStorage objects.
const LocalURLPrefix = "/uploads"

// FromConfig builds the backend selected by STORAGE_DRIVER.
func FromConfig(cfg *configs.Config) (Storage, error) {
	switch cfg.StorageDriver {
	case "", "local":
		return NewLocalStorage(cfg.UploadDir, LocalURLPrefix)
	case "supabase":
		return NewSupabaseStorage(cfg.SupabaseURL, cfg.SupabaseKey, cfg.SupabaseBucket)
	case "minio":
		return NewMinioStorage(context.Background(), MinioOptions{
			Endpoint:   cfg.MinioEndpoint,
			AccessKey:  cfg.MinioAccessKey,
			SecretKey:  cfg.MinioSecretKey,
			Bucket:     cfg.MinioBucket,
			UseSSL:     cfg.MinioUseSSL,
			PublicBase: cfg.MinioPublicBase,
		})
	default:
		return nil, fmt.Errorf("unknown STORAGE_DRIVER %q", cfg.StorageDriver)
	}
}
