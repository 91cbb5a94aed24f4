package migrations

import (
	"groupeatlas.com/configs/configslog"
	"groupeatlas.com/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigrateTestimonialsTable(db *gorm.DB) error {
	configslog.SLog.Info("Migration de la table testimonials...")
	if err := db.AutoMigrate(&models.Testimonial{}); err != nil {
		configslog.Log.Error("Échec de la migration testimonials", zap.Error(err))
		return err
	}
	return nil
}
