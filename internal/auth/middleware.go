package auth

import (
	"strings"
	"time"

	"personel-backend/internal/config"
	"personel-backend/internal/database"
	"personel-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

const (
	CtxUserIDKey   = "user_id"
	CtxUserRoleKey = "user_role"
	CtxUserKey     = "current_user"
)

// RequireAuth bearer token'ı doğrular ve kimliği c.Locals'a koyar.
// Token, kullanıcı veya aktiflik kontrollerinden hangisinin başarısız
// olduğu istemciye sızdırılmaz; hepsi aynı 401 ile döner.
func RequireAuth(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Authorization header eksik")
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			return fiber.NewError(fiber.StatusUnauthorized, "Authorization formatı 'Bearer <token>' olmalı")
		}

		// İmza ve exp aynı now değeriyle kontrol edilir.
		userID, err := ParseToken(cfg.JWTSecret, parts[1], time.Now())
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Kimlik doğrulanamadı")
		}

		var user models.User
		if err := database.DB.First(&user, userID).Error; err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Kimlik doğrulanamadı")
		}

		// Askıya alınmış kullanıcının eldeki token'ı da çalışmaz.
		if !user.IsActive {
			return fiber.NewError(fiber.StatusUnauthorized, "Kimlik doğrulanamadı")
		}

		c.Locals(CtxUserIDKey, user.ID)
		c.Locals(CtxUserRoleKey, user.Role)
		c.Locals(CtxUserKey, &user)

		return c.Next()
	}
}

// RequireAdmin RequireAuth'tan sonra zincirlenir.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals(CtxUserRoleKey).(models.UserRole)
		if !ok || role != models.RoleAdmin {
			return fiber.NewError(fiber.StatusForbidden, "Bu işlem için admin yetkisi gerekli")
		}
		return c.Next()
	}
}

// CurrentUser RequireAuth'un çözdüğü kullanıcıyı döner, yoksa nil.
func CurrentUser(c *fiber.Ctx) *models.User {
	user, ok := c.Locals(CtxUserKey).(*models.User)
	if !ok {
		return nil
	}
	return user
}
