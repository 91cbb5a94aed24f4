package migrations

import (
	"groupeatlas.com/configs/configslog"
	"groupeatlas.com/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigrateContactMessagesTable(db *gorm.DB) error {
	configslog.SLog.Info("Migration de la table contact_messages...")
	if err := db.AutoMigrate(&models.ContactMessage{}); err != nil {
		configslog.Log.Error("Échec de la migration contact_messages", zap.Error(err))
		return err
	}
	return nil
}
