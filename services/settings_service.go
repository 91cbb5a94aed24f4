package services

import (
	"context"
	"errors"

	"groupeatlas.com/configs/configslog"
	"groupeatlas.com/models"
	"groupeatlas.com/repositories"

	"go.uber.org/zap"
)

// ISettingsService expose la configuration du site et les coordonnées de
// contact (deux singletons remplacés intégralement à chaque écriture).
type ISettingsService interface {
	GetSiteSetting(ctx context.Context) (*models.SiteSetting, error)
	UpdateSiteSetting(ctx context.Context, setting *models.SiteSetting) (*models.SiteSetting, error)
	GetContactInfo(ctx context.Context) (*models.ContactInfo, error)
	UpdateContactInfo(ctx context.Context, info *models.ContactInfo) (*models.ContactInfo, error)
}

type SettingsService struct {
	repo repositories.ISettingsRepository
}

// NewSettingsService crée un SettingsService sur la base partagée.
func NewSettingsService() ISettingsService {
	return &SettingsService{repo: repositories.NewSettingsRepository()}
}

// NewSettingsServiceWithRepo permet d'injecter le repository (tests).
func NewSettingsServiceWithRepo(repo repositories.ISettingsRepository) ISettingsService {
	return &SettingsService{repo: repo}
}

func (s *SettingsService) GetSiteSetting(ctx context.Context) (*models.SiteSetting, error) {
	setting, err := s.repo.GetSiteSetting(ctx)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrResourceNotFound
	}
	return setting, err
}

func (s *SettingsService) UpdateSiteSetting(ctx context.Context, setting *models.SiteSetting) (*models.SiteSetting, error) {
	if setting == nil {
		return nil, ErrResourceInvalid
	}
	if err := s.repo.SaveSiteSetting(ctx, setting); err != nil {
		configslog.Log.Error("UpdateSiteSetting: échec", zap.Error(err))
		return nil, err
	}
	return setting, nil
}

func (s *SettingsService) GetContactInfo(ctx context.Context) (*models.ContactInfo, error) {
	info, err := s.repo.GetContactInfo(ctx)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrResourceNotFound
	}
	return info, err
}

func (s *SettingsService) UpdateContactInfo(ctx context.Context, info *models.ContactInfo) (*models.ContactInfo, error) {
	if info == nil {
		return nil, ErrResourceInvalid
	}
	if err := s.repo.SaveContactInfo(ctx, info); err != nil {
		configslog.Log.Error("UpdateContactInfo: échec", zap.Error(err))
		return nil, err
	}
	return info, nil
}

var _ ISettingsService = (*SettingsService)(nil)
