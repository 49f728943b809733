package models

import "time"

type UserRole string

const (
	RoleAdmin    UserRole = "admin"
	RoleEmployee UserRole = "employee"
)

// ParseRole kapalı enum: admin ve employee dışında hiçbir değer kabul edilmez.
func ParseRole(s string) (UserRole, bool) {
	switch UserRole(s) {
	case RoleAdmin:
		return RoleAdmin, true
	case RoleEmployee:
		return RoleEmployee, true
	}
	return "", false
}

type User struct {
	ID           uint     `gorm:"primaryKey"`
	Username     string   `gorm:"size:50;uniqueIndex;not null"`
	Email        string   `gorm:"size:255;uniqueIndex;not null"`
	Name         string   `gorm:"size:255"`
	PasswordHash string   `gorm:"size:255;not null"`
	Role         UserRole `gorm:"size:10;not null;default:employee"`
	IsActive     bool     `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
