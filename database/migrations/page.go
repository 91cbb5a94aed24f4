package migrations

import (
	"groupeatlas.com/configs/configslog"
	"groupeatlas.com/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigratePagesTable(db *gorm.DB) error {
	configslog.SLog.Info("Migration de la table page_contents...")
	if err := db.AutoMigrate(&models.PageContent{}); err != nil {
		configslog.Log.Error("Échec de la migration page_contents", zap.Error(err))
		return err
	}
	return nil
}
