package services

import (
	"context"
	"testing"

	"groupeatlas.com/models"
	"groupeatlas.com/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitRejectsIncompleteMessage(t *testing.T) {
	svc := NewContactServiceWithRepo(repositories.NewMessageRepositoryWithDB(setupTestDB(t)))
	ctx := context.Background()

	cases := []models.ContactMessage{
		{Email: "jean@exemple.fr", Message: "bonjour"},
		{Name: "Jean", Message: "bonjour"},
		{Name: "Jean", Email: "jean@exemple.fr"},
		{Name: "   ", Email: "jean@exemple.fr", Message: "bonjour"},
	}
	for _, msg := range cases {
		_, err := svc.Submit(ctx, &msg)
		assert.ErrorIs(t, err, ErrMessageIncomplete)
	}
}

func TestSubmitThenListAndDelete(t *testing.T) {
	svc := NewContactServiceWithRepo(repositories.NewMessageRepositoryWithDB(setupTestDB(t)))
	ctx := context.Background()

	saved, err := svc.Submit(ctx, &models.ContactMessage{
		Name:    "Jean Dupont",
		Email:   "jean@exemple.fr",
		Subject: "Demande de devis",
		Message: "Bonjour, pouvez-vous me rappeler ?",
	})
	require.NoError(t, err)
	require.NotEmpty(t, saved.ID)

	list, err := svc.ListMessages(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Demande de devis", list[0].Subject)

	require.NoError(t, svc.DeleteMessage(ctx, saved.ID))
	err = svc.DeleteMessage(ctx, saved.ID)
	assert.ErrorIs(t, err, ErrMessageNotFound)
}
