package migrations

import (
	"groupeatlas.com/configs/configslog"
	"groupeatlas.com/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigratePressReleasesTable(db *gorm.DB) error {
	configslog.SLog.Info("Migration de la table press_releases...")
	if err := db.AutoMigrate(&models.PressRelease{}); err != nil {
		configslog.Log.Error("Échec de la migration press_releases", zap.Error(err))
		return err
	}
	return nil
}
