package seeders

import (
	"errors"
	"os"

	"groupeatlas.com/configs/configslog"
	"groupeatlas.com/models"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedSystemAdmin crée (ou laisse en place) le compte d'administration
// initial. Identifiants repris de ADMIN_USERNAME / ADMIN_PASSWORD.
func SeedSystemAdmin(db *gorm.DB) error {
	username := os.Getenv("ADMIN_USERNAME")
	if username == "" {
		username = "admin"
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "atlas2024"
		configslog.SLog.Warn("ADMIN_PASSWORD non défini, mot de passe par défaut utilisé. À changer en production.")
	}

	var existing models.Admin
	result := db.Where("username = ?", username).First(&existing)
	if result.Error == nil {
		configslog.SLog.Infof("Compte admin '%s' déjà présent, création ignorée.", username)
		return nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		configslog.Log.Error("Vérification du compte admin impossible", zap.Error(result.Error))
		return result.Error
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		configslog.Log.Error("Hachage du mot de passe admin impossible", zap.Error(err))
		return err
	}

	admin := models.Admin{
		Username:     username,
		PasswordHash: string(hash),
		DisplayName:  "Administrateur",
	}
	if err := db.Create(&admin).Error; err != nil {
		configslog.Log.Error("Création du compte admin impossible", zap.Error(err))
		return err
	}

	configslog.SLog.Infof("Compte admin '%s' créé.", username)
	return nil
}
