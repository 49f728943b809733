package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-test-secret-test-secret")

	cfg := Load()

	if cfg.HTTPPort != "8080" {
		t.Fatalf("HTTPPort default beklenen 8080, gelen %q", cfg.HTTPPort)
	}
	if cfg.AccessTokenTTLMin != 30 {
		t.Fatalf("AccessTokenTTLMin default beklenen 30, gelen %d", cfg.AccessTokenTTLMin)
	}
	if cfg.RefreshTokenTTLDay != 7 {
		t.Fatalf("RefreshTokenTTLDay default beklenen 7, gelen %d", cfg.RefreshTokenTTLDay)
	}
}

func TestLoad_TTLOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-test-secret-test-secret")
	t.Setenv("ACCESS_TOKEN_TTL_MINUTES", "5")
	t.Setenv("REFRESH_TOKEN_TTL_DAYS", "30")

	cfg := Load()

	if cfg.AccessTokenTTLMin != 5 {
		t.Fatalf("AccessTokenTTLMin beklenen 5, gelen %d", cfg.AccessTokenTTLMin)
	}
	if cfg.RefreshTokenTTLDay != 30 {
		t.Fatalf("RefreshTokenTTLDay beklenen 30, gelen %d", cfg.RefreshTokenTTLDay)
	}
}
