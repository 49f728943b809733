package auth

import (
	"testing"
	"time"

	"personel-backend/internal/config"

	"github.com/golang-jwt/jwt/v5"
)

func testTokenConfig() *config.Config {
	return &config.Config{
		JWTSecret:          "test-secret-test-secret-test-secret",
		AccessTokenTTLMin:  30,
		RefreshTokenTTLDay: 7,
	}
}

func TestGenerateAndParse_Success(t *testing.T) {
	t.Parallel()

	cfg := testTokenConfig()
	now := time.Now()

	tok, err := GenerateAccessToken(cfg, 42, now)
	if err != nil {
		t.Fatalf("GenerateAccessToken error: %v", err)
	}

	userID, err := ParseToken(cfg.JWTSecret, tok, now)
	if err != nil {
		t.Fatalf("ParseToken error: %v", err)
	}
	if userID != 42 {
		t.Fatalf("userID mismatch: got %d want 42", userID)
	}
}

func TestParseToken_Expired(t *testing.T) {
	t.Parallel()

	cfg := testTokenConfig()
	now := time.Now()

	tok, err := GenerateAccessToken(cfg, 1, now)
	if err != nil {
		t.Fatalf("GenerateAccessToken error: %v", err)
	}

	// Access TTL 30 dakika; 31 dakika sonrası için geçersiz olmalı.
	_, err = ParseToken(cfg.JWTSecret, tok, now.Add(31*time.Minute))
	if err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestParseToken_RefreshOutlivesAccess(t *testing.T) {
	t.Parallel()

	cfg := testTokenConfig()
	now := time.Now()

	tok, err := GenerateRefreshToken(cfg, 1, now)
	if err != nil {
		t.Fatalf("GenerateRefreshToken error: %v", err)
	}

	// Access token çoktan ölmüşken refresh token hala geçerli.
	userID, err := ParseToken(cfg.JWTSecret, tok, now.Add(48*time.Hour))
	if err != nil {
		t.Fatalf("ParseToken error: %v", err)
	}
	if userID != 1 {
		t.Fatalf("userID mismatch: got %d want 1", userID)
	}

	_, err = ParseToken(cfg.JWTSecret, tok, now.Add(8*24*time.Hour))
	if err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken after refresh TTL, got %v", err)
	}
}

func TestParseToken_WrongSecret(t *testing.T) {
	t.Parallel()

	cfg := testTokenConfig()
	now := time.Now()

	tok, err := GenerateAccessToken(cfg, 1, now)
	if err != nil {
		t.Fatalf("GenerateAccessToken error: %v", err)
	}

	_, err = ParseToken("wrong-secret-wrong-secret-wrong-secret", tok, now)
	if err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestParseToken_Malformed(t *testing.T) {
	t.Parallel()

	_, err := ParseToken("secret", "not.a.jwt", time.Now())
	if err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestParseToken_NonIntegerSubject(t *testing.T) {
	t.Parallel()

	cfg := testTokenConfig()
	now := time.Now()

	claims := jwt.RegisteredClaims{
		Subject:   "abc",
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		IssuedAt:  jwt.NewNumericDate(now),
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(cfg.JWTSecret))
	if err != nil {
		t.Fatalf("SignedString error: %v", err)
	}

	_, err = ParseToken(cfg.JWTSecret, tok, now)
	if err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestParseToken_MissingExpiry(t *testing.T) {
	t.Parallel()

	cfg := testTokenConfig()
	now := time.Now()

	// exp olmayan token, imzası doğru olsa bile reddedilir.
	claims := jwt.RegisteredClaims{Subject: "1"}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(cfg.JWTSecret))
	if err != nil {
		t.Fatalf("SignedString error: %v", err)
	}

	_, err = ParseToken(cfg.JWTSecret, tok, now)
	if err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestParseToken_RejectsNoneAlgorithm(t *testing.T) {
	t.Parallel()

	cfg := testTokenConfig()
	now := time.Now()

	claims := jwt.RegisteredClaims{
		Subject:   "1",
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("SignedString error: %v", err)
	}

	_, err = ParseToken(cfg.JWTSecret, tok, now)
	if err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for alg=none, got %v", err)
	}
}
