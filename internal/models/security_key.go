package models

import "time"

// SecurityKey admin kaydı için tek kullanımlık davet anahtarı.
// IsUsed bir kez true olduktan sonra anahtar bir daha kayıt yetkilendiremez.
type SecurityKey struct {
	ID        uint   `gorm:"primaryKey"`
	Key       string `gorm:"size:100;uniqueIndex;not null"`
	IsUsed    bool   `gorm:"not null;default:false"`
	CreatedAt time.Time
}
