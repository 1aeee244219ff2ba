package models

import "gorm.io/gorm"

// AdminUser can trigger CSV reloads through the admin API. Seeded by
// cmd/seed; there is no self-service registration.
type AdminUser struct {
	gorm.Model
	Email    string `gorm:"uniqueIndex;not null"`
	Password string `gorm:"not null"`
	Role     string `gorm:"default:'admin'"`
}
