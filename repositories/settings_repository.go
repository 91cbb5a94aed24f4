package repositories

import (
	"context"
	"errors"

	"groupeatlas.com/configs/configsdatabase"
	"groupeatlas.com/configs/configslog"
	"groupeatlas.com/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ISettingsRepository gère les deux tables à ligne unique: la configuration
// du site et les coordonnées de contact.
type ISettingsRepository interface {
	GetSiteSetting(ctx context.Context) (*models.SiteSetting, error)
	SaveSiteSetting(ctx context.Context, setting *models.SiteSetting) error
	GetContactInfo(ctx context.Context) (*models.ContactInfo, error)
	SaveContactInfo(ctx context.Context, info *models.ContactInfo) error
}

type SettingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository crée un SettingsRepository sur la base partagée.
func NewSettingsRepository() ISettingsRepository {
	return &SettingsRepository{db: configsdatabase.GetDB()}
}

// NewSettingsRepositoryWithDB permet d'injecter une base (tests).
func NewSettingsRepositoryWithDB(db *gorm.DB) ISettingsRepository {
	return &SettingsRepository{db: db}
}

// GetSiteSetting retourne l'unique ligne de configuration, ou ErrNotFound si
// le seeder n'a pas encore tourné.
func (r *SettingsRepository) GetSiteSetting(ctx context.Context) (*models.SiteSetting, error) {
	var setting models.SiteSetting
	err := r.db.WithContext(ctx).Order("created_at asc").First(&setting).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		configslog.Log.Error("SettingsRepository.GetSiteSetting: erreur base de données", zap.Error(err))
		return nil, err
	}
	return &setting, nil
}

// SaveSiteSetting remplace la ligne existante (ou la crée au premier appel).
func (r *SettingsRepository) SaveSiteSetting(ctx context.Context, setting *models.SiteSetting) error {
	existing, err := r.GetSiteSetting(ctx)
	if errors.Is(err, ErrNotFound) {
		return r.db.WithContext(ctx).Create(setting).Error
	}
	if err != nil {
		return err
	}
	setting.ID = existing.ID
	setting.CreatedAt = existing.CreatedAt
	return r.db.WithContext(ctx).Save(setting).Error
}

// GetContactInfo retourne l'unique ligne de coordonnées, ou ErrNotFound.
func (r *SettingsRepository) GetContactInfo(ctx context.Context) (*models.ContactInfo, error) {
	var info models.ContactInfo
	err := r.db.WithContext(ctx).Order("created_at asc").First(&info).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		configslog.Log.Error("SettingsRepository.GetContactInfo: erreur base de données", zap.Error(err))
		return nil, err
	}
	return &info, nil
}

// SaveContactInfo remplace la ligne existante (ou la crée au premier appel).
func (r *SettingsRepository) SaveContactInfo(ctx context.Context, info *models.ContactInfo) error {
	existing, err := r.GetContactInfo(ctx)
	if errors.Is(err, ErrNotFound) {
		return r.db.WithContext(ctx).Create(info).Error
	}
	if err != nil {
		return err
	}
	info.ID = existing.ID
	info.CreatedAt = existing.CreatedAt
	return r.db.WithContext(ctx).Save(info).Error
}

var _ ISettingsRepository = (*SettingsRepository)(nil)
