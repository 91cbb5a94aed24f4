package repositories

import (
	"context"

	"groupeatlas.com/configs/configsdatabase"
	"groupeatlas.com/configs/configslog"
	"groupeatlas.com/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// IMessageRepository gère la boîte de réception du formulaire de contact.
type IMessageRepository interface {
	Create(ctx context.Context, message *models.ContactMessage) error
	GetAll(ctx context.Context) ([]models.ContactMessage, error)
	Delete(ctx context.Context, id string) error
}

type MessageRepository struct {
	db *gorm.DB
}

// NewMessageRepository crée un MessageRepository sur la base partagée.
func NewMessageRepository() IMessageRepository {
	return &MessageRepository{db: configsdatabase.GetDB()}
}

// NewMessageRepositoryWithDB permet d'injecter une base (tests).
func NewMessageRepositoryWithDB(db *gorm.DB) IMessageRepository {
	return &MessageRepository{db: db}
}

func (r *MessageRepository) Create(ctx context.Context, message *models.ContactMessage) error {
	err := r.db.WithContext(ctx).Create(message).Error
	if err != nil {
		configslog.Log.Error("MessageRepository.Create: erreur base de données", zap.Error(err))
	}
	return err
}

// GetAll liste les messages, les plus récents d'abord.
func (r *MessageRepository) GetAll(ctx context.Context) ([]models.ContactMessage, error) {
	var messages []models.ContactMessage
	err := r.db.WithContext(ctx).Order("created_at desc").Find(&messages).Error
	if err != nil {
		configslog.Log.Error("MessageRepository.GetAll: erreur base de données", zap.Error(err))
		return nil, err
	}
	return messages, nil
}

func (r *MessageRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&models.ContactMessage{}, "id = ?", id)
	if result.Error != nil {
		configslog.Log.Error("MessageRepository.Delete: erreur base de données", zap.String("id", id), zap.Error(result.Error))
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

var _ IMessageRepository = (*MessageRepository)(nil)
