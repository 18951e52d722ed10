package database

import (
	"errors"
	"fmt"

	"github.com/sarthakyadav7225/hms-WeCare/internal/domain/entity"
	"github.com/sarthakyadav7225/hms-WeCare/pkg/password"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// SeedDemoAccounts inserts the two demo accounts when they are missing.
// Idempotent: existing accounts are left untouched.
func SeedDemoAccounts(db *gorm.DB) error {
	demoAccounts := []entity.User{
		{
			Email:    "admin@wecare.com",
			Password: password.Hash("admin123"),
			FullName: "Admin User",
			Role:     entity.RoleAdmin,
		},
		{
			Email:    "user@wecare.com",
			Password: password.Hash("user123"),
			FullName: "Test User",
			Role:     entity.RoleUser,
		},
	}

	for _, account := range demoAccounts {
		var existing entity.User
		err := db.Where("email = ?", account.Email).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to check for seed account %s: %w", account.Email, err)
		}

		if err := db.Create(&account).Error; err != nil {
			return fmt.Errorf("failed to seed account %s: %w", account.Email, err)
		}
		logrus.Infof("Seeded demo account %s (role %s)", account.Email, account.Role)
	}

	return nil
}
