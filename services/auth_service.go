package services

import (
	"context"
	"errors"

	"groupeatlas.com/configs/configsauth"
	"groupeatlas.com/configs/configslog"
	"groupeatlas.com/models"
	"groupeatlas.com/repositories"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// AuthServiceError représente les erreurs de l'authentification admin.
type AuthServiceError string

func (e AuthServiceError) Error() string { return string(e) }

const (
	ErrInvalidCredentials AuthServiceError = "identifiants invalides"
	ErrAuthInternal       AuthServiceError = "erreur d'authentification"
)

// IAuthService authentifie les comptes du back-office et émet leurs jetons.
type IAuthService interface {
	Login(ctx context.Context, username, password string) (token string, admin *models.Admin, err error)
	AdminFromToken(ctx context.Context, token string) (*models.Admin, error)
}

type AuthService struct {
	repo repositories.IAdminRepository
}

// NewAuthService crée un AuthService sur la base partagée.
func NewAuthService() IAuthService {
	return &AuthService{repo: repositories.NewAdminRepository()}
}

// NewAuthServiceWithRepo permet d'injecter le repository (tests).
func NewAuthServiceWithRepo(repo repositories.IAdminRepository) IAuthService {
	return &AuthService{repo: repo}
}

// Login vérifie le couple identifiant/mot de passe (bcrypt) et retourne un
// jeton signé avec le compte. Le même message d'erreur couvre le compte
// inconnu et le mauvais mot de passe.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *models.Admin, error) {
	if username == "" || password == "" {
		return "", nil, ErrInvalidCredentials
	}

	admin, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		configslog.Log.Error("Login: lecture du compte impossible", zap.String("username", username), zap.Error(err))
		return "", nil, ErrAuthInternal
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		configslog.Log.Warn("Login: mot de passe refusé", zap.String("username", username))
		return "", nil, ErrInvalidCredentials
	}

	token, err := configsauth.GenerateToken(admin.ID)
	if err != nil {
		configslog.Log.Error("Login: signature du jeton impossible", zap.Error(err))
		return "", nil, ErrAuthInternal
	}

	configslog.SLog.Infof("Connexion admin réussie: %s", admin.Username)
	return token, admin, nil
}

// AdminFromToken valide un jeton et recharge le compte qu'il désigne.
func (s *AuthService) AdminFromToken(ctx context.Context, token string) (*models.Admin, error) {
	adminID, err := configsauth.VerifyToken(token)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	admin, err := s.repo.FindByID(ctx, adminID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, ErrAuthInternal
	}
	return admin, nil
}

var _ IAuthService = (*AuthService)(nil)
