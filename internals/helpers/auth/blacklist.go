package helper

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const blacklistTable = "token_blacklist"

// HashToken is the value stored in token_blacklist.token; raw tokens are never persisted.
func HashToken(raw, secret string) string {
	m := hmac.New(sha256.New, []byte(secret))
	_, _ = m.Write([]byte(raw))
	return hex.EncodeToString(m.Sum(nil))
}

// Revoke blacklists raw until expiresAt. Revoking twice only refreshes the expiry.
func Revoke(ctx context.Context, db *gorm.DB, raw, secret string, expiresAt time.Time) error {
	if db == nil || strings.TrimSpace(raw) == "" || secret == "" {
		return nil
	}
	row := map[string]any{
		"token":      HashToken(raw, secret),
		"expired_at": expiresAt,
		"created_at": time.Now(),
	}
	return db.WithContext(ctx).Table(blacklistTable).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "token"}},
			DoUpdates: clause.AssignmentColumns([]string{"expired_at"}),
		}).
		Create(row).Error
}

// IsRevoked reports whether raw is blacklisted and not yet expired.
func IsRevoked(ctx context.Context, db *gorm.DB, raw, secret string) (bool, error) {
	if db == nil || strings.TrimSpace(raw) == "" || secret == "" {
		return false, nil
	}
	var n int64
	err := db.WithContext(ctx).Table(blacklistTable).
		Where("token = ? AND expired_at > ?", HashToken(raw, secret), time.Now()).
		Count(&n).Error
	return n > 0, err
}

// PurgeExpired removes rows whose token can no longer be used anyway.
func PurgeExpired(ctx context.Context, db *gorm.DB) (int64, error) {
	if db == nil {
		return 0, nil
	}
	res := db.WithContext(ctx).Exec(`DELETE FROM token_blacklist WHERE expired_at <= ?`, time.Now())
	return res.RowsAffected, res.Error
}
