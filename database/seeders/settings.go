package seeders

import (
	"errors"

	"groupeatlas.com/configs/configslog"
	"groupeatlas.com/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SeedDefaultSettings garantit la présence des deux lignes de configuration
// (site et coordonnées) pour que les lectures publiques ne tombent jamais
// sur une table vide après installation.
func SeedDefaultSettings(db *gorm.DB) error {
	var setting models.SiteSetting
	err := db.First(&setting).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		setting = models.SiteSetting{
			SiteName:   "Groupe Atlas",
			Tagline:    "Un groupe, des expertises",
			FooterText: "© Groupe Atlas. Tous droits réservés.",
		}
		if err := db.Create(&setting).Error; err != nil {
			configslog.Log.Error("Création de la configuration par défaut impossible", zap.Error(err))
			return err
		}
		configslog.SLog.Info("Configuration du site créée avec les valeurs par défaut.")
	} else if err != nil {
		return err
	}

	var info models.ContactInfo
	err = db.First(&info).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		info = models.ContactInfo{
			Email: "contact@groupeatlas.com",
		}
		if err := db.Create(&info).Error; err != nil {
			configslog.Log.Error("Création des coordonnées par défaut impossible", zap.Error(err))
			return err
		}
		configslog.SLog.Info("Coordonnées de contact créées avec les valeurs par défaut.")
	} else if err != nil {
		return err
	}

	return nil
}
