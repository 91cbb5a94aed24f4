package migrations

import (
	"groupeatlas.com/configs/configslog"
	"groupeatlas.com/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigrateAdminsTable(db *gorm.DB) error {
	configslog.SLog.Info("Migration de la table admins...")
	if err := db.AutoMigrate(&models.Admin{}); err != nil {
		configslog.Log.Error("Échec de la migration admins", zap.Error(err))
		return err
	}
	return nil
}
