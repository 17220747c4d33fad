package storage

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// LocalStorage writes objects below Dir; they are served at URLPrefix (app.Static).
type LocalStorage struct {
	Dir       string
	URLPrefix string
}

func NewLocalStorage(dir, urlPrefix string) (*LocalStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &LocalStorage{Dir: dir, URLPrefix: "/" + strings.Trim(urlPrefix, "/")}, nil
}

// cleanKey keeps keys below Dir, "../x" resolves to "/x".
func cleanKey(key string) (string, error) {
	clean := path.Clean("/" + key)
	if clean == "/" {
		return "", fmt.Errorf("empty storage key")
	}
	return clean, nil
}

func (s *LocalStorage) Put(ctx context.Context, key, _ string, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	clean, err := cleanKey(key)
	if err != nil {
		return "", err
	}
	p := filepath.Join(s.Dir, filepath.FromSlash(clean))
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return "", fmt.Errorf("create object dir: %w", err)
	}
	if err := os.WriteFile(p, data, 0o644); err != nil {
		return "", fmt.Errorf("write object: %w", err)
	}
	return s.URLPrefix + clean, nil
}

// Delete accepts a key or a URL returned by Put.
func (s *LocalStorage) Delete(_ context.Context, key string) error {
	key = strings.TrimPrefix(key, s.URLPrefix+"/")
	clean, err := cleanKey(key)
	if err != nil {
		return err
	}
	if err := os.Remove(filepath.Join(s.Dir, filepath.FromSlash(clean))); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
