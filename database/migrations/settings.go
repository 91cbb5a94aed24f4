package migrations

import (
	"groupeatlas.com/configs/configslog"
	"groupeatlas.com/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigrateSettingsTables(db *gorm.DB) error {
	configslog.SLog.Info("Migration des tables site_settings, contact_infos & social_links...")
	if err := db.AutoMigrate(&models.SiteSetting{}, &models.ContactInfo{}, &models.SocialLink{}); err != nil {
		configslog.Log.Error("Échec de la migration settings", zap.Error(err))
		return err
	}
	return nil
}
