package services

import (
	"context"
	"testing"

	"groupeatlas.com/configs/configsauth"
	"groupeatlas.com/models"
	"groupeatlas.com/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func seedAdmin(t *testing.T, db *gorm.DB, username, password string) *models.Admin {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)

	admin := &models.Admin{Username: username, PasswordHash: string(hash), DisplayName: "Administrateur"}
	require.NoError(t, db.Create(admin).Error)
	return admin
}

func TestLoginSuccessReturnsValidToken(t *testing.T) {
	db := setupTestDB(t)
	admin := seedAdmin(t, db, "atlas", "motdepasse-solide")
	svc := NewAuthServiceWithRepo(repositories.NewAdminRepositoryWithDB(db))

	token, got, err := svc.Login(context.Background(), "atlas", "motdepasse-solide")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, admin.ID, got.ID)
	assert.NotEmpty(t, token)

	adminID, err := configsauth.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, admin.ID, adminID)
}

func TestLoginWrongPassword(t *testing.T) {
	db := setupTestDB(t)
	seedAdmin(t, db, "atlas", "motdepasse-solide")
	svc := NewAuthServiceWithRepo(repositories.NewAdminRepositoryWithDB(db))

	token, got, err := svc.Login(context.Background(), "atlas", "mauvais")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Empty(t, token)
	assert.Nil(t, got)
}

func TestLoginUnknownAccountSameError(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthServiceWithRepo(repositories.NewAdminRepositoryWithDB(db))

	_, _, err := svc.Login(context.Background(), "inconnu", "peu-importe")
	assert.ErrorIs(t, err, ErrInvalidCredentials, "le compte inconnu et le mauvais mot de passe partagent le même message")
}

func TestLoginEmptyFields(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthServiceWithRepo(repositories.NewAdminRepositoryWithDB(db))

	_, _, err := svc.Login(context.Background(), "", "")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAdminFromToken(t *testing.T) {
	db := setupTestDB(t)
	admin := seedAdmin(t, db, "atlas", "motdepasse-solide")
	svc := NewAuthServiceWithRepo(repositories.NewAdminRepositoryWithDB(db))

	token, err := configsauth.GenerateToken(admin.ID)
	require.NoError(t, err)

	got, err := svc.AdminFromToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, admin.Username, got.Username)

	_, err = svc.AdminFromToken(context.Background(), "jeton.falsifié.invalide")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
