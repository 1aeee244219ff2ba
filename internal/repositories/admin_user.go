package repositories

import (
	"insights/internal/models"

	"gorm.io/gorm"
)

// AdminUserRepository looks up the operators allowed to trigger
// reloads through the admin API.
type AdminUserRepository interface {
	GetByEmail(email string) (*models.AdminUser, error)
	Create(user *models.AdminUser) error
}

type adminUserRepository struct {
	db *gorm.DB
}

func NewAdminUserRepository(db *gorm.DB) AdminUserRepository {
	return &adminUserRepository{db: db}
}

func (r *adminUserRepository) GetByEmail(email string) (*models.AdminUser, error) {
	var user models.AdminUser
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *adminUserRepository) Create(user *models.AdminUser) error {
	return r.db.Create(user).Error
}
