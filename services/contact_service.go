package services

import (
	"context"
	"errors"
	"strings"

	"groupeatlas.com/configs/configslog"
	"groupeatlas.com/models"
	"groupeatlas.com/repositories"

	"go.uber.org/zap"
)

// ContactServiceError représente les erreurs du formulaire de contact.
type ContactServiceError string

func (e ContactServiceError) Error() string { return string(e) }

const (
	ErrMessageIncomplete ContactServiceError = "nom, email et message sont obligatoires"
	ErrMessageNotFound   ContactServiceError = "message introuvable"
)

// IContactService reçoit les messages du formulaire public et alimente la
// boîte de réception du back-office.
type IContactService interface {
	Submit(ctx context.Context, message *models.ContactMessage) (*models.ContactMessage, error)
	ListMessages(ctx context.Context) ([]models.ContactMessage, error)
	DeleteMessage(ctx context.Context, id string) error
}

type ContactService struct {
	repo repositories.IMessageRepository
}

// NewContactService crée un ContactService sur la base partagée.
func NewContactService() IContactService {
	return &ContactService{repo: repositories.NewMessageRepository()}
}

// NewContactServiceWithRepo permet d'injecter le repository (tests).
func NewContactServiceWithRepo(repo repositories.IMessageRepository) IContactService {
	return &ContactService{repo: repo}
}

// Submit enregistre un message entrant. Seule entrée publique en écriture:
// les champs essentiels sont revalidés côté serveur.
func (s *ContactService) Submit(ctx context.Context, message *models.ContactMessage) (*models.ContactMessage, error) {
	if message == nil ||
		strings.TrimSpace(message.Name) == "" ||
		strings.TrimSpace(message.Email) == "" ||
		strings.TrimSpace(message.Message) == "" {
		return nil, ErrMessageIncomplete
	}
	if err := s.repo.Create(ctx, message); err != nil {
		configslog.Log.Error("Contact.Submit: échec", zap.Error(err))
		return nil, err
	}
	configslog.SLog.Infof("Message de contact reçu de %s", message.Email)
	return message, nil
}

func (s *ContactService) ListMessages(ctx context.Context) ([]models.ContactMessage, error) {
	return s.repo.GetAll(ctx)
}

func (s *ContactService) DeleteMessage(ctx context.Context, id string) error {
	err := s.repo.Delete(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return ErrMessageNotFound
	}
	return err
}

var _ IContactService = (*ContactService)(nil)
