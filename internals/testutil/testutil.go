// Package testutil builds an in-memory app for handler tests.
package testutil

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"mutualaid_backend/internals/configs"
	database "mutualaid_backend/internals/databases"
	profileModel "mutualaid_backend/internals/features/users/profiles/model"
	helper "mutualaid_backend/internals/helpers"
	authHelper "mutualaid_backend/internals/helpers/auth"
	"mutualaid_backend/internals/helpers/storage"
	"mutualaid_backend/internals/middlewares"
	routes "mutualaid_backend/internals/route"
)

const Secret = "test-secret"

var dbSeq atomic.Int64

// NewTestDB opens a private in-memory SQLite database with the full schema and
// foreign keys enforced.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared&_foreign_keys=1", name, dbSeq.Add(1))

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	// one connection keeps the shared-cache database alive and serializes writes
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

// App is a fully routed fiber app over a test database.
type App struct {
	*fiber.App
	DB    *gorm.DB
	Store *storage.LocalStorage
}

// NewApp wires the real routes the way main does, with local storage in a temp dir.
func NewApp(t *testing.T) *App {
	t.Helper()
	configs.JWTSecret = Secret
	db := NewTestDB(t)

	store, err := storage.NewLocalStorage(t.TempDir(), storage.LocalURLPrefix)
	if err != nil {
		t.Fatalf("local storage: %v", err)
	}

	app := fiber.New(fiber.Config{
		JSONEncoder:  sonic.Marshal,
		JSONDecoder:  sonic.Unmarshal,
		ErrorHandler: helper.ErrorHandler,
		BodyLimit:    8 << 20,
	})
	app.Use(middlewares.RecoveryMiddleware())
	app.Use(middlewares.RequestContext())
	routes.SetupRoutes(app, db, store, &configs.Config{
		MaxUploadSizeMB:    5,
		UploadRateLimitMax: 1000,
	})
	return &App{App: app, DB: db, Store: store}
}

// Token signs a one hour token for username.
func Token(t *testing.T, username string, isAdmin bool) string {
	t.Helper()
	tok, err := authHelper.IssueToken(username, isAdmin, Secret, time.Hour)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	return tok
}

// SeedProfile inserts an active profile.
func SeedProfile(t *testing.T, db *gorm.DB, username string, isAdmin bool) profileModel.ProfileModel {
	t.Helper()
	p := profileModel.ProfileModel{
		Username:    username,
		FirstName:   "First",
		LastName:    "Last",
		Gender:      true,
		AvatarURL:   "https://example.com/" + username + ".png",
		DateOfBirth: datatypes.Date(time.Date(1990, 1, 2, 0, 0, 0, 0, time.UTC)),
		Country:     "VN",
		Province:    "HCM",
		District:    "1",
		Ward:        "Ben Nghe",
		Street:      "Le Loi",
		IsAdmin:     isAdmin,
	}
	if err := db.Create(&p).Error; err != nil {
		t.Fatalf("seed profile %s: %v", username, err)
	}
	return p
}

type Response struct {
	Status int
	Body   []byte
	Header http.Header
}

// Decode unmarshals the body into v.
func (r Response) Decode(t *testing.T, v any) {
	t.Helper()
	if err := sonic.Unmarshal(r.Body, v); err != nil {
		t.Fatalf("decode %q: %v", string(r.Body), err)
	}
}

// Map decodes the body as a JSON object.
func (r Response) Map(t *testing.T) map[string]any {
	t.Helper()
	m := map[string]any{}
	r.Decode(t, &m)
	return m
}

// Error returns the "error" message of an error body.
func (r Response) Error(t *testing.T) string {
	t.Helper()
	msg, _ := r.Map(t)["error"].(string)
	return msg
}

// Do sends a JSON request. body may be nil, a string (sent raw) or any value encoded as JSON.
func (a *App) Do(t *testing.T, method, path, token string, body any) Response {
	t.Helper()
	var rd io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		rd = strings.NewReader(b)
	default:
		raw, err := sonic.Marshal(b)
		if err != nil {
			t.Fatalf("encode body: %v", err)
		}
		rd = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, rd)
	if rd != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}
	return a.Send(t, req)
}

// Send runs req through the app.
func (a *App) Send(t *testing.T, req *http.Request) Response {
	t.Helper()
	resp, err := a.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return Response{Status: resp.StatusCode, Body: raw, Header: resp.Header}
}

// Expect fails the test when the status differs, printing the body.
func (r Response) Expect(t *testing.T, status int) Response {
	t.Helper()
	if r.Status != status {
		t.Fatalf("status = %d, want %d; body: %s", r.Status, status, string(r.Body))
	}
	return r
}
