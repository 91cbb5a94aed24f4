package migrations

import (
	"groupeatlas.com/configs/configslog"
	"groupeatlas.com/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigrateProductsTables(db *gorm.DB) error {
	configslog.SLog.Info("Migration des tables product_categories & products...")
	if err := db.AutoMigrate(&models.ProductCategory{}, &models.Product{}); err != nil {
		configslog.Log.Error("Échec de la migration products", zap.Error(err))
		return err
	}
	return nil
}
