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

// IAdminRepository couvre les besoins de l'authentification du back-office.
type IAdminRepository interface {
	FindByUsername(ctx context.Context, username string) (*models.Admin, error)
	FindByID(ctx context.Context, id string) (*models.Admin, error)
	Create(ctx context.Context, admin *models.Admin) error
}

type AdminRepository struct {
	db *gorm.DB
}

// NewAdminRepository crée un AdminRepository sur la base partagée.
func NewAdminRepository() IAdminRepository {
	return &AdminRepository{db: configsdatabase.GetDB()}
}

// NewAdminRepositoryWithDB permet d'injecter une base (tests).
func NewAdminRepositoryWithDB(db *gorm.DB) IAdminRepository {
	return &AdminRepository{db: db}
}

func (r *AdminRepository) FindByUsername(ctx context.Context, username string) (*models.Admin, error) {
	var admin models.Admin
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&admin).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		configslog.Log.Error("AdminRepository.FindByUsername: erreur base de données",
			zap.String("username", username), zap.Error(err))
		return nil, err
	}
	return &admin, nil
}

func (r *AdminRepository) FindByID(ctx context.Context, id string) (*models.Admin, error) {
	var admin models.Admin
	err := r.db.WithContext(ctx).First(&admin, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

func (r *AdminRepository) Create(ctx context.Context, admin *models.Admin) error {
	return r.db.WithContext(ctx).Create(admin).Error
}

var _ IAdminRepository = (*AdminRepository)(nil)
