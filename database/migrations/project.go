package migrations

import (
	"groupeatlas.com/configs/configslog"
	"groupeatlas.com/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigrateProjectsTable(db *gorm.DB) error {
	configslog.SLog.Info("Migration de la table projects...")
	if err := db.AutoMigrate(&models.Project{}); err != nil {
		configslog.Log.Error("Échec de la migration projects", zap.Error(err))
		return err
	}
	return nil
}
