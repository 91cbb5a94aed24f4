package migrations

import (
	"groupeatlas.com/configs/configslog"
	"groupeatlas.com/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigratePartnersTables(db *gorm.DB) error {
	configslog.SLog.Info("Migration des tables partner_categories & partners...")
	if err := db.AutoMigrate(&models.PartnerCategory{}, &models.Partner{}); err != nil {
		configslog.Log.Error("Échec de la migration partners", zap.Error(err))
		return err
	}
	return nil
}
