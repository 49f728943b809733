package config

import (
	"log"
	"os"
	"strconv"
)

type Config struct {
	HTTPPort           string
	DatabaseDSN        string
	JWTSecret          string
	CORSOrigins        string
	AccessTokenTTLMin  int // Access token ömrü (dakika)
	RefreshTokenTTLDay int // Refresh token ömrü (gün)
}

func Load() *Config {
	cfg := &Config{
		HTTPPort:           getEnv("HTTP_PORT", "8080"),
		DatabaseDSN:        getEnv("DATABASE_DSN", "host=localhost user=postgres password=postgres dbname=personel port=5432 sslmode=disable"),
		JWTSecret:          getEnv("JWT_SECRET", ""),
		CORSOrigins:        getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
		AccessTokenTTLMin:  getEnvInt("ACCESS_TOKEN_TTL_MINUTES", 30),
		RefreshTokenTTLDay: getEnvInt("REFRESH_TOKEN_TTL_DAYS", 7),
	}

	// Production güvenlik kontrolleri
	if cfg.JWTSecret == "" {
		log.Fatal("[FATAL] JWT_SECRET environment değişkeni tanımlanmamış! Production için zorunludur.")
	}
	if len(cfg.JWTSecret) < 32 {
		log.Fatal("[FATAL] JWT_SECRET en az 32 karakter olmalıdır! Güvenlik riski.")
	}
	if cfg.AccessTokenTTLMin <= 0 || cfg.RefreshTokenTTLDay <= 0 {
		log.Fatal("[FATAL] Token TTL değerleri pozitif olmalıdır.")
	}
	if cfg.CORSOrigins == "http://localhost:5173" {
		log.Println("[WARN] CORS_ALLOWED_ORIGINS varsayılan değer kullanılıyor, production için mutlaka kendi domain'ini tanımla.")
	}

	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Fatalf("[FATAL] %s sayısal bir değer olmalı: %q", key, v)
	}
	return n
}
