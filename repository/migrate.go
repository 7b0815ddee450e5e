package repository

import (
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Migrate creates or updates every table the repositories use.
func Migrate(db *gorm.DB) error {
	logrus.Info("[DB] running schema migration")

	return db.AutoMigrate(
		&categoryModel{},
		&itemModel{},
		&offerModel{},
		&drinkModel{},
		&reviewModel{},
		&ingredientModel{},
		&locationModel{},
		&backgroundModel{},
		&orderModel{},
		&staffModel{},
		&qrCodeModel{},
		&settingModel{},
		&imageModel{},
	)
}
