package storage

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
)

func TestGenerateUniqueFilename(t *testing.T) {
	key := GenerateUniqueFilename("/images/", "../my photo (1).PNG")
	re := regexp.MustCompile(`^images/\d{8}-[0-9a-f-]{36}-my_photo_1_.PNG$`)
	if !re.MatchString(key) {
		t.Fatalf("key %q does not match %s", key, re)
	}
	if a, b := GenerateUniqueFilename("x", "a.png"), GenerateUniqueFilename("x", "a.png"); a == b {
		t.Fatal("keys must be unique")
	}
	if key := GenerateUniqueFilename("", ""); !strings.HasSuffix(key, "-image") {
		t.Fatalf("empty name: %q", key)
	}
}

func TestAbsoluteURL(t *testing.T) {
	cases := map[string]string{
		"/uploads/a.png":             "http://api.test/uploads/a.png",
		"https://cdn.test/a.png":     "https://cdn.test/a.png",
		"relative/without/slash.png": "relative/without/slash.png",
	}
	for in, want := range cases {
		if got := AbsoluteURL("http://api.test/", in); got != want {
			t.Errorf("AbsoluteURL(%q) = %q, want %q", in, got, want)
		}
	}
	if got := AbsoluteURL("", "/uploads/a.png"); got != "/uploads/a.png" {
		t.Errorf("no base: %q", got)
	}
}

func TestLocalStorage(t *testing.T) {
	dir := t.TempDir()
	s, err := NewLocalStorage(dir, "uploads/")
	if err != nil {
		t.Fatalf("NewLocalStorage: %v", err)
	}
	ctx := context.Background()

	u, err := s.Put(ctx, "images/a.png", "image/png", []byte("png"))
	if err != nil {
		t.Fatalf("Put: %v", err)
	}
	if u != "/uploads/images/a.png" {
		t.Fatalf("url = %q", u)
	}
	if b, err := os.ReadFile(filepath.Join(dir, "images", "a.png")); err != nil || string(b) != "png" {
		t.Fatalf("stored file: %q %v", b, err)
	}

	// keys never escape the storage directory
	u, err = s.Put(ctx, "../../escape.png", "image/png", []byte("x"))
	if err != nil {
		t.Fatalf("Put traversal: %v", err)
	}
	if u != "/uploads/escape.png" {
		t.Fatalf("traversal url = %q", u)
	}
	if _, err := os.Stat(filepath.Join(dir, "escape.png")); err != nil {
		t.Fatalf("traversal key not kept below dir: %v", err)
	}

	if _, err := s.Put(ctx, "/", "image/png", nil); err == nil {
		t.Fatal("empty key accepted")
	}

	if err := s.Delete(ctx, "/uploads/images/a.png"); err != nil {
		t.Fatalf("Delete by url: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "images", "a.png")); !os.IsNotExist(err) {
		t.Fatalf("file still present: %v", err)
	}
	if err := s.Delete(ctx, "images/a.png"); err != nil {
		t.Fatalf("Delete missing object: %v", err)
	}
}

func TestSupabaseStorage(t *testing.T) {
	var gotMethod, gotPath, gotAuth, gotType, gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath = r.Method, r.URL.Path
		gotAuth, gotType = r.Header.Get("Authorization"), r.Header.Get("Content-Type")
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		if strings.HasSuffix(r.URL.Path, "/missing.png") {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	s, err := NewSupabaseStorage(srv.URL+"/", "service-key", "")
	if err != nil {
		t.Fatalf("NewSupabaseStorage: %v", err)
	}
	ctx := context.Background()

	u, err := s.Put(ctx, "images/a b.png", "image/png", []byte("data"))
	if err != nil {
		t.Fatalf("Put: %v", err)
	}
	if gotMethod != http.MethodPut || gotPath != "/storage/v1/object/image/images/a b.png" {
		t.Fatalf("request %s %s", gotMethod, gotPath)
	}
	if gotAuth != "Bearer service-key" || gotType != "image/png" || gotBody != "data" {
		t.Fatalf("headers/body: %q %q %q", gotAuth, gotType, gotBody)
	}
	if want := srv.URL + "/storage/v1/object/public/image/images/a%20b.png"; u != want {
		t.Fatalf("public url = %q, want %q", u, want)
	}

	key, err := s.KeyFromPublicURL(u)
	if err != nil || key != "images/a b.png" {
		t.Fatalf("KeyFromPublicURL = %q, %v", key, err)
	}
	if _, err := s.KeyFromPublicURL("https://elsewhere.test/x.png"); err == nil {
		t.Fatal("foreign url accepted")
	}

	if err := s.Delete(ctx, u); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if gotMethod != http.MethodDelete || gotPath != "/storage/v1/object/image/images/a b.png" {
		t.Fatalf("delete request %s %s", gotMethod, gotPath)
	}

	if _, err := s.Put(ctx, "missing.png", "image/png", nil); err == nil || !strings.Contains(err.Error(), "404") {
		t.Fatalf("error status not reported: %v", err)
	}

	if _, err := NewSupabaseStorage("", "", ""); err == nil {
		t.Fatal("missing credentials accepted")
	}
}

func TestMinioPublicURL(t *testing.T) {
	m := &MinioStorage{bucket: "images", publicBase: "https://cdn.example.com/s3"}
	if got := m.PublicURL("images/2026-a.png"); got != "https://cdn.example.com/s3/images/images/2026-a.png" {
		t.Fatalf("PublicURL = %q", got)
	}
	if _, err := NewMinioStorage(context.Background(), MinioOptions{}); err == nil {
		t.Fatal("missing endpoint accepted")
	}
}
