package auth

import (
	"strings"
	"time"

	"personel-backend/internal/config"
	"personel-backend/internal/database"
	"personel-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

const refreshCookieName = "refresh_token"

type RegisterRequest struct {
	Username    string `json:"username"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	Role        string `json:"role"`
	SecurityKey string `json:"security_key"` // Sadece admin kaydı için
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
}

type UserResponse struct {
	ID       uint            `json:"id"`
	Username string          `json:"username"`
	Name     string          `json:"name"`
	Email    string          `json:"email"`
	Role     models.UserRole `json:"role"`
	IsActive bool            `json:"is_active"`
}

func toUserResponse(u *models.User) UserResponse {
	return UserResponse{
		ID:       u.ID,
		Username: u.Username,
		Name:     u.Name,
		Email:    u.Email,
		Role:     u.Role,
		IsActive: u.IsActive,
	}
}

func RegisterHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body RegisterRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		body.Username = strings.TrimSpace(body.Username)
		body.Name = strings.TrimSpace(body.Name)
		// Email büyük/küçük harf korunarak saklanır, lookup birebir eşleşmedir.
		body.Email = strings.TrimSpace(body.Email)

		if body.Username == "" || body.Email == "" || body.Password == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Kullanıcı adı, email ve şifre zorunlu")
		}

		role, ok := models.ParseRole(body.Role)
		if !ok {
			return fiber.NewError(fiber.StatusBadRequest, "Rol 'admin' veya 'employee' olmalı")
		}

		var count int64
		database.DB.Model(&models.User{}).Where("email = ?", body.Email).Count(&count)
		if count > 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Bu email zaten kayıtlı")
		}
		database.DB.Model(&models.User{}).Where("username = ?", body.Username).Count(&count)
		if count > 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Bu kullanıcı adı zaten alınmış")
		}

		if role == models.RoleAdmin && body.SecurityKey == "" {
			return fiber.NewError(fiber.StatusForbidden, "Admin kaydı için güvenlik anahtarı zorunlu")
		}

		hash, err := HashPassword(body.Password)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Şifre hashlenemedi")
		}

		user := models.User{
			Username:     body.Username,
			Name:         body.Name,
			Email:        body.Email,
			PasswordHash: hash,
			Role:         role,
			IsActive:     true,
		}

		// Anahtar tüketimi ve kullanıcı kaydı tek transaction:
		// kayıt başarısız olursa anahtar yanmaz, anahtar alınamazsa kayıt olmaz.
		err = database.DB.Transaction(func(tx *gorm.DB) error {
			if role == models.RoleAdmin {
				claimed, err := ConsumeSecurityKey(tx, body.SecurityKey)
				if err != nil {
					return fiber.NewError(fiber.StatusInternalServerError, "Güvenlik anahtarı doğrulanamadı")
				}
				// Bilinmeyen anahtar ile kullanılmış anahtar ayırt edilmez.
				if !claimed {
					return fiber.NewError(fiber.StatusForbidden, "Geçersiz veya kullanılmış güvenlik anahtarı")
				}
			}

			if err := tx.Create(&user).Error; err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "Kullanıcı oluşturulamadı")
			}
			return nil
		})
		if err != nil {
			return err
		}

		return c.Status(fiber.StatusCreated).JSON(toUserResponse(&user))
	}
}

func LoginHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body LoginRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		body.Email = strings.TrimSpace(body.Email)

		// Kullanıcı yok / şifre yanlış / hesap askıda: hepsi aynı cevap,
		// hesap varlığı dışarı sızdırılmaz.
		var user models.User
		if err := database.DB.Where("email = ?", body.Email).First(&user).Error; err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Email veya şifre hatalı")
		}
		if !CheckPassword(body.Password, user.PasswordHash) {
			return fiber.NewError(fiber.StatusUnauthorized, "Email veya şifre hatalı")
		}
		if !user.IsActive {
			return fiber.NewError(fiber.StatusUnauthorized, "Email veya şifre hatalı")
		}

		now := time.Now()
		accessToken, err := GenerateAccessToken(cfg, user.ID, now)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Token oluşturulamadı")
		}
		refreshToken, err := GenerateRefreshToken(cfg, user.ID, now)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Token oluşturulamadı")
		}

		c.Cookie(&fiber.Cookie{
			Name:     refreshCookieName,
			Value:    refreshToken,
			Path:     "/",
			MaxAge:   cfg.RefreshTokenTTLDay * 24 * 60 * 60,
			HTTPOnly: true,
			SameSite: fiber.CookieSameSiteLaxMode,
		})

		return c.JSON(TokenResponse{
			AccessToken:  accessToken,
			RefreshToken: refreshToken,
			TokenType:    "bearer",
		})
	}
}

// RefreshHandler cookie'deki refresh token ile yeni bir access token üretir.
// Refresh token rotasyona uğramaz, aynen geri döner.
func RefreshHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		refreshToken := c.Cookies(refreshCookieName)
		if refreshToken == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Kimlik doğrulanamadı")
		}

		now := time.Now()
		userID, err := ParseToken(cfg.JWTSecret, refreshToken, now)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Kimlik doğrulanamadı")
		}

		// Kullanıcı bu arada silinmiş veya askıya alınmış olabilir.
		var user models.User
		if err := database.DB.First(&user, userID).Error; err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Kimlik doğrulanamadı")
		}
		if !user.IsActive {
			return fiber.NewError(fiber.StatusUnauthorized, "Kimlik doğrulanamadı")
		}

		accessToken, err := GenerateAccessToken(cfg, user.ID, now)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Token oluşturulamadı")
		}

		return c.JSON(TokenResponse{
			AccessToken:  accessToken,
			RefreshToken: refreshToken,
			TokenType:    "bearer",
		})
	}
}

// LogoutHandler sadece cookie'yi temizler; sunucu tarafında oturum durumu yok.
func LogoutHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Cookie(&fiber.Cookie{
			Name:     refreshCookieName,
			Value:    "",
			Path:     "/",
			Expires:  time.Now().Add(-time.Hour),
			MaxAge:   -1,
			HTTPOnly: true,
			SameSite: fiber.CookieSameSiteLaxMode,
		})

		return c.JSON(fiber.Map{"msg": "Çıkış yapıldı"})
	}
}

func MeHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := CurrentUser(c)
		if user == nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Kimlik doğrulanamadı")
		}
		return c.JSON(toUserResponse(user))
	}
}
