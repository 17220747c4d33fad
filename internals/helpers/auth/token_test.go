package helper

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

const secret = "unit-secret"

func TestIssueAndParse(t *testing.T) {
	raw, err := IssueToken("alice", true, secret, time.Hour)
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}
	claims, err := ParseToken(raw, secret)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if claims.Username != "alice" || !claims.IsAdmin {
		t.Fatalf("claims = %+v", claims)
	}
	if claims.ExpiresAt == nil || time.Until(claims.ExpiresAt.Time) <= 0 {
		t.Fatalf("exp not in the future: %v", claims.ExpiresAt)
	}
}

func TestParseTokenRejects(t *testing.T) {
	expired, _ := IssueToken("alice", false, secret, -time.Minute)
	if _, err := ParseToken(expired, secret); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expired: got %v", err)
	}

	good, _ := IssueToken("alice", false, secret, time.Hour)
	if _, err := ParseToken(good, "other-secret"); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("wrong secret: got %v", err)
	}

	noUser, _ := IssueToken("  ", false, secret, time.Hour)
	if _, err := ParseToken(noUser, secret); !errors.Is(err, ErrTokenNoUser) {
		t.Fatalf("blank username: got %v", err)
	}

	noExp, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{Username: "alice"}).SignedString([]byte(secret))
	if _, err := ParseToken(noExp, secret); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("missing exp: got %v", err)
	}

	none, _ := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{Username: "alice"}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if _, err := ParseToken(none, secret); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("alg none: got %v", err)
	}

	if _, err := ParseToken(good, ""); !errors.Is(err, ErrMissingSecret) {
		t.Fatalf("empty secret: got %v", err)
	}
}
