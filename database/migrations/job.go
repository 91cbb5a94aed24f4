package migrations

import (
	"groupeatlas.com/configs/configslog"
	"groupeatlas.com/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigrateJobOffersTable(db *gorm.DB) error {
	configslog.SLog.Info("Migration de la table job_offers...")
	if err := db.AutoMigrate(&models.JobOffer{}); err != nil {
		configslog.Log.Error("Échec de la migration job_offers", zap.Error(err))
		return err
	}
	return nil
}
