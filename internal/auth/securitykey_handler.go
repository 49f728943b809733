package auth

import (
	"crypto/rand"
	"encoding/base64"

	"personel-backend/internal/database"
	"personel-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type SecurityKeyResponse struct {
	ID     uint   `json:"id"`
	Key    string `json:"key"`
	IsUsed bool   `json:"is_used"`
}

// GenerateSecurityKey 16 byte entropili URL-safe rastgele anahtar üretir.
func GenerateSecurityKey() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// ConsumeSecurityKey anahtarı koşullu UPDATE ile alır: aynı anahtara yarışan
// iki kayıttan yalnızca biri satırı etkiler, diğeri false görür.
// Okuyup-sonra-yazma yarışına yer bırakmaz.
func ConsumeSecurityKey(tx *gorm.DB, key string) (bool, error) {
	res := tx.Model(&models.SecurityKey{}).
		Where("key = ? AND is_used = ?", key, false).
		Update("is_used", true)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func CreateSecurityKeyHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		keyValue, err := GenerateSecurityKey()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Güvenlik anahtarı üretilemedi")
		}

		key := models.SecurityKey{Key: keyValue}
		if err := database.DB.Create(&key).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Güvenlik anahtarı kaydedilemedi")
		}

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"security_key": key.Key,
			"id":           key.ID,
		})
	}
}

// ListSecurityKeysHandler anahtar değerlerini düz metin döner.
// Bu endpoint zaten sadece admin'e açık; operasyonel bir tercih.
func ListSecurityKeysHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var keys []models.SecurityKey
		if err := database.DB.Order("id").Find(&keys).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Anahtarlar listelenemedi")
		}

		res := make([]SecurityKeyResponse, 0, len(keys))
		for _, k := range keys {
			res = append(res, SecurityKeyResponse{
				ID:     k.ID,
				Key:    k.Key,
				IsUsed: k.IsUsed,
			})
		}

		return c.JSON(res)
	}
}

func DeleteSecurityKeyHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var key models.SecurityKey
		if err := database.DB.First(&key, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Güvenlik anahtarı bulunamadı")
		}

		// Kullanılmış anahtar da silinebilir.
		if err := database.DB.Delete(&key).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Güvenlik anahtarı silinemedi")
		}

		return c.JSON(fiber.Map{"msg": "Güvenlik anahtarı silindi"})
	}
}
