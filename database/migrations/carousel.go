package migrations

import (
	"groupeatlas.com/configs/configslog"
	"groupeatlas.com/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigrateCarouselTable(db *gorm.DB) error {
	configslog.SLog.Info("Migration de la table carousel_slides...")
	if err := db.AutoMigrate(&models.CarouselSlide{}); err != nil {
		configslog.Log.Error("Échec de la migration carousel_slides", zap.Error(err))
		return err
	}
	return nil
}
