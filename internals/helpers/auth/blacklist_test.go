package helper

import (
	"context"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	authModel "mutualaid_backend/internals/features/users/auth/model"
)

func newBlacklistDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	if err := db.AutoMigrate(&authModel.TokenBlacklist{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestRevokeAndPurge(t *testing.T) {
	db := newBlacklistDB(t)
	ctx := context.Background()

	if err := Revoke(ctx, db, "live-token", secret, time.Now().Add(time.Hour)); err != nil {
		t.Fatalf("Revoke: %v", err)
	}
	// revoking again refreshes the row instead of failing on the unique token
	if err := Revoke(ctx, db, "live-token", secret, time.Now().Add(2*time.Hour)); err != nil {
		t.Fatalf("second Revoke: %v", err)
	}
	if err := Revoke(ctx, db, "old-token", secret, time.Now().Add(-time.Hour)); err != nil {
		t.Fatalf("Revoke old: %v", err)
	}

	if ok, err := IsRevoked(ctx, db, "live-token", secret); err != nil || !ok {
		t.Fatalf("live token: revoked=%v err=%v", ok, err)
	}
	if ok, _ := IsRevoked(ctx, db, "old-token", secret); ok {
		t.Fatal("expired blacklist row still reported")
	}
	if ok, _ := IsRevoked(ctx, db, "never-seen", secret); ok {
		t.Fatal("unknown token reported revoked")
	}

	n, err := PurgeExpired(ctx, db)
	if err != nil {
		t.Fatalf("PurgeExpired: %v", err)
	}
	if n != 1 {
		t.Fatalf("purged %d rows, want 1", n)
	}

	var rows []authModel.TokenBlacklist
	db.Find(&rows)
	if len(rows) != 1 || rows[0].Token != HashToken("live-token", secret) {
		t.Fatalf("remaining rows: %+v", rows)
	}
}
