package migrations

import (
	"groupeatlas.com/configs/configslog"
	"groupeatlas.com/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigrateNewsTables(db *gorm.DB) error {
	configslog.SLog.Info("Migration des tables news_categories & news_articles...")
	if err := db.AutoMigrate(&models.NewsCategory{}, &models.NewsArticle{}); err != nil {
		configslog.Log.Error("Échec de la migration news", zap.Error(err))
		return err
	}
	return nil
}
