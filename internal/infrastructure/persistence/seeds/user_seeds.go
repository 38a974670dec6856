package seeds

import (
	"gorm.io/gorm"

	"quarry/internal/infrastructure/auth"
	"quarry/internal/infrastructure/persistence/models"
	"quarry/internal/shared/constants"
)

// SeedAdminUser creates the bootstrap admin account when no admin exists.
// The password must be changed after first login.
func SeedAdminUser(db *gorm.DB, hasher *auth.PasswordHasher) error {
	var count int64
	if err := db.Model(&models.UserModel{}).
		Where("role = ?", constants.RoleAdmin).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	passwordHash, err := hasher.Hash("admin")
	if err != nil {
		return err
	}

	admin := models.UserModel{
		Name:         "Administrator",
		Email:        "admin@quarry.local",
		PasswordHash: passwordHash,
		Role:         constants.RoleAdmin,
	}

	return db.Create(&admin).Error
}
