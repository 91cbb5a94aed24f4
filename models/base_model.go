package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BaseModel porte les champs communs à toutes les tables: identifiant UUID
// opaque (immuable, jamais réutilisé) et horodatages.
type BaseModel struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BeforeCreate attribue l'identifiant côté serveur si le client n'en a pas fourni.
func (m *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

// Sluggable est implémenté par les ressources disposant d'un slug public.
// SlugSource retourne le champ texte dont le slug est dérivé quand il est vide.
type Sluggable interface {
	SlugValue() string
	SetSlugValue(slug string)
	SlugSource() string
}

// Publishable est implémenté par les ressources de contenu (actualités,
// communiqués, pages) dont la visibilité dépend de isPublished et publishedAt.
type Publishable interface {
	PublishedFlag() bool
	PublishedTime() *time.Time
	SetPublishedTime(t *time.Time)
}
