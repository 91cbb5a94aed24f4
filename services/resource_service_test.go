package services

import (
	"context"
	"os"
	"testing"
	"time"

	"groupeatlas.com/configs/configslog"
	"groupeatlas.com/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestMain(m *testing.M) {
	configslog.InitLogger()
	os.Exit(m.Run())
}

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "ouverture de la base de test")

	err = db.AutoMigrate(
		&models.NewsArticle{},
		&models.FAQItem{},
		&models.Admin{},
		&models.ContactMessage{},
	)
	require.NoError(t, err, "migration de la base de test")
	return db
}

func newNewsService(db *gorm.DB) IResourceService[models.NewsArticle] {
	return NewResourceServiceWithDB[models.NewsArticle](db, ResourceConfig{
		Label:              "actualité",
		VisibilityColumn:   "is_published",
		RequirePublishedAt: true,
		OrderClause:        "published_at desc, created_at desc",
		HasSlug:            true,
	})
}

func TestCreateDerivesSlugFromTitle(t *testing.T) {
	svc := newNewsService(setupTestDB(t))
	ctx := context.Background()

	created, err := svc.Create(ctx, &models.NewsArticle{Title: "Élargissement du Pôle Énergie"})
	require.NoError(t, err)
	assert.Equal(t, "elargissement-du-pole-energie", created.Slug)
	assert.NotEmpty(t, created.ID)
}

func TestCreateKeepsExplicitSlug(t *testing.T) {
	svc := newNewsService(setupTestDB(t))
	ctx := context.Background()

	created, err := svc.Create(ctx, &models.NewsArticle{Title: "Titre quelconque", Slug: "slug-choisi"})
	require.NoError(t, err)
	assert.Equal(t, "slug-choisi", created.Slug)
}

func TestCreateStampsPublishedAt(t *testing.T) {
	svc := newNewsService(setupTestDB(t))
	ctx := context.Background()

	before := time.Now().Add(-time.Second)
	created, err := svc.Create(ctx, &models.NewsArticle{Title: "Publication immédiate", IsPublished: true})
	require.NoError(t, err)
	require.NotNil(t, created.PublishedAt)
	assert.True(t, created.PublishedAt.After(before), "la date de publication doit être posée à la création")

	draft, err := svc.Create(ctx, &models.NewsArticle{Title: "Brouillon"})
	require.NoError(t, err)
	assert.Nil(t, draft.PublishedAt, "un brouillon n'a pas de date de publication")
}

func TestUpdatePublishStampsDateOnce(t *testing.T) {
	svc := newNewsService(setupTestDB(t))
	ctx := context.Background()

	created, err := svc.Create(ctx, &models.NewsArticle{Title: "Brouillon en attente"})
	require.NoError(t, err)
	require.Nil(t, created.PublishedAt)

	published, err := svc.Update(ctx, created.ID, &models.NewsArticle{
		Title:       created.Title,
		Slug:        created.Slug,
		IsPublished: true,
	})
	require.NoError(t, err)
	require.NotNil(t, published.PublishedAt)
	firstStamp := *published.PublishedAt

	// Une nouvelle écriture avec la date déjà posée ne la déplace pas.
	again, err := svc.Update(ctx, created.ID, &models.NewsArticle{
		Title:       "Titre corrigé",
		Slug:        created.Slug,
		IsPublished: true,
		PublishedAt: &firstStamp,
	})
	require.NoError(t, err)
	require.NotNil(t, again.PublishedAt)
	assert.WithinDuration(t, firstStamp, *again.PublishedAt, time.Second)
}

func TestGetPublicByKeySlugThenID(t *testing.T) {
	svc := newNewsService(setupTestDB(t))
	ctx := context.Background()

	created, err := svc.Create(ctx, &models.NewsArticle{Title: "Rapport annuel 2025", IsPublished: true})
	require.NoError(t, err)

	bySlug, err := svc.GetPublicByKey(ctx, "rapport-annuel-2025")
	require.NoError(t, err)
	assert.Equal(t, created.ID, bySlug.ID)

	byID, err := svc.GetPublicByKey(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, byID.ID)

	_, err = svc.GetPublicByKey(ctx, "cle-inconnue")
	assert.ErrorIs(t, err, ErrResourceNotFound)
}

func TestGetPublicByKeyHidesDrafts(t *testing.T) {
	svc := newNewsService(setupTestDB(t))
	ctx := context.Background()

	draft, err := svc.Create(ctx, &models.NewsArticle{Title: "Encore secret"})
	require.NoError(t, err)

	_, err = svc.GetPublicByKey(ctx, draft.Slug)
	assert.ErrorIs(t, err, ErrResourceNotFound)
	_, err = svc.GetPublicByKey(ctx, draft.ID)
	assert.ErrorIs(t, err, ErrResourceNotFound)

	// Le back-office voit toujours le brouillon.
	got, err := svc.GetByID(ctx, draft.ID)
	require.NoError(t, err)
	assert.Equal(t, draft.ID, got.ID)
}

func TestPublicListRequiresPublishedAt(t *testing.T) {
	db := setupTestDB(t)
	svc := newNewsService(db)
	ctx := context.Background()

	_, err := svc.Create(ctx, &models.NewsArticle{Title: "Visible", IsPublished: true})
	require.NoError(t, err)
	_, err = svc.Create(ctx, &models.NewsArticle{Title: "Brouillon"})
	require.NoError(t, err)

	// Ligne incohérente (publiée sans date): exclue de la vue publique.
	odd := &models.NewsArticle{Title: "Sans date", IsPublished: true}
	require.NoError(t, db.Create(odd).Error)

	public, err := svc.ListPublic(ctx, nil)
	require.NoError(t, err)
	require.Len(t, public, 1)
	assert.Equal(t, "Visible", public[0].Title)

	admin, err := svc.ListAdmin(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, admin, 3)
}

func TestDeleteThenLookupsReturnNotFound(t *testing.T) {
	svc := newNewsService(setupTestDB(t))
	ctx := context.Background()

	created, err := svc.Create(ctx, &models.NewsArticle{Title: "À supprimer", IsPublished: true})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))

	_, err = svc.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, ErrResourceNotFound)
	_, err = svc.GetPublicByKey(ctx, created.Slug)
	assert.ErrorIs(t, err, ErrResourceNotFound)
	err = svc.Delete(ctx, created.ID)
	assert.ErrorIs(t, err, ErrResourceNotFound)
}

func TestUpdateUnknownResource(t *testing.T) {
	svc := newNewsService(setupTestDB(t))

	_, err := svc.Update(context.Background(), "00000000-0000-0000-0000-000000000000",
		&models.NewsArticle{Title: "fantôme"})
	assert.ErrorIs(t, err, ErrResourceNotFound)
}
