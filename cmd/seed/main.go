package main

import (
	"log"
	"os"

	"personel-backend/internal/auth"
	"personel-backend/internal/config"
	"personel-backend/internal/database"
	"personel-backend/internal/models"
)

// İlk admin hesabını oluşturur. Sistemde zaten bir admin varsa dokunmaz.
func main() {
	cfg := config.Load()
	database.Init(cfg)

	email := getEnv("ADMIN_EMAIL", "admin@site.com")
	password := getEnv("ADMIN_PASSWORD", "admin123")
	username := getEnv("ADMIN_USERNAME", "admin")
	name := getEnv("ADMIN_NAME", "Super Admin")

	if password == "admin123" {
		log.Println("[WARN] ADMIN_PASSWORD varsayılan değerde, ilk girişten sonra mutlaka değiştir.")
	}

	var count int64
	database.DB.Model(&models.User{}).Where("role = ?", models.RoleAdmin).Count(&count)
	if count > 0 {
		log.Println("Zaten bir admin var, seed atlanıyor.")
		return
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		log.Fatalf("Şifre hashlenemedi: %v", err)
	}

	user := models.User{
		Username:     username,
		Email:        email,
		Name:         name,
		PasswordHash: hash,
		Role:         models.RoleAdmin,
		IsActive:     true,
	}
	if err := database.DB.Create(&user).Error; err != nil {
		log.Fatalf("Admin oluşturulamadı: %v", err)
	}

	log.Printf("Admin oluşturuldu: %s (id=%d)", user.Email, user.ID)
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
