package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"personel-backend/internal/config"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken imza, exp veya claim hatalarının tamamını kapsar.
// İstemciye hangi kontrolün başarısız olduğu söylenmez.
var ErrInvalidToken = errors.New("geçersiz veya süresi dolmuş token")

func GenerateAccessToken(cfg *config.Config, userID uint, now time.Time) (string, error) {
	ttl := time.Duration(cfg.AccessTokenTTLMin) * time.Minute
	return generateToken(cfg.JWTSecret, userID, now, ttl)
}

func GenerateRefreshToken(cfg *config.Config, userID uint, now time.Time) (string, error) {
	ttl := time.Duration(cfg.RefreshTokenTTLDay) * 24 * time.Hour
	return generateToken(cfg.JWTSecret, userID, now, ttl)
}

func generateToken(secret string, userID uint, now time.Time, ttl time.Duration) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatUint(uint64(userID), 10),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseToken imzayı ve exp'i doğrular, sub'ı kullanıcı id olarak çözer.
// Tüm zaman karşılaştırmaları çağıranın verdiği tek now değeri üzerinden yapılır.
func ParseToken(secret, tokenStr string, now time.Time) (uint, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("geçersiz imzalama yöntemi: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	}, jwt.WithTimeFunc(func() time.Time { return now }), jwt.WithExpirationRequired())
	if err != nil || !token.Valid {
		return 0, ErrInvalidToken
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok {
		return 0, ErrInvalidToken
	}

	userID, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil {
		return 0, ErrInvalidToken
	}

	return uint(userID), nil
}
