package migrations

import (
	"groupeatlas.com/configs/configslog"
	"groupeatlas.com/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigrateServicesTable(db *gorm.DB) error {
	configslog.SLog.Info("Migration de la table services...")
	if err := db.AutoMigrate(&models.Service{}); err != nil {
		configslog.Log.Error("Échec de la migration services", zap.Error(err))
		return err
	}
	return nil
}
