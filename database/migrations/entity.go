package migrations

import (
	"groupeatlas.com/configs/configslog"
	"groupeatlas.com/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigrateEntitiesTable(db *gorm.DB) error {
	configslog.SLog.Info("Migration de la table entities...")
	if err := db.AutoMigrate(&models.Entity{}); err != nil {
		configslog.Log.Error("Échec de la migration entities", zap.Error(err))
		return err
	}
	return nil
}
