package database

import (
	"log"

	"personel-backend/internal/config"
	"personel-backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init(cfg *config.Config) {
	var err error

	DB, err = gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		log.Fatalf("Veritabanına bağlanılamadı: %v", err)
	}

	Migrate(DB)

	log.Println("Veritabanı bağlantısı başarılı. Migration tamamlandı.")
}

// Migrate tabloları oluşturur. Testler in-memory SQLite ile de çağırır.
func Migrate(db *gorm.DB) {
	if err := db.AutoMigrate(
		&models.User{},
		&models.SecurityKey{},
	); err != nil {
		log.Fatalf("AutoMigrate hatası: %v", err)
	}
}
