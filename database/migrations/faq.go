package migrations

import (
	"groupeatlas.com/configs/configslog"
	"groupeatlas.com/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigrateFAQTables(db *gorm.DB) error {
	configslog.SLog.Info("Migration des tables faq_categories & faq_items...")
	if err := db.AutoMigrate(&models.FAQCategory{}, &models.FAQItem{}); err != nil {
		configslog.Log.Error("Échec de la migration faq", zap.Error(err))
		return err
	}
	return nil
}
