package services

import (
	"context"
	"time"

	"groupeatlas.com/configs/configsdatabase"
	"groupeatlas.com/configs/configslog"
	"groupeatlas.com/models"
	"groupeatlas.com/pkg/slugify"
	"groupeatlas.com/repositories"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ResourceServiceError représente les erreurs métier du CRUD générique.
type ResourceServiceError string

func (e ResourceServiceError) Error() string { return string(e) }

const (
	ErrResourceNotFound ResourceServiceError = "ressource introuvable"
	ErrResourceInvalid  ResourceServiceError = "données invalides"
)

// ResourceConfig décrit une ressource gérée par le contrat CRUD générique:
// sa colonne de visibilité, son tri, ses filtres autorisés et la présence
// d'un slug. Une seule abstraction sert les quatorze familles de ressources.
type ResourceConfig struct {
	// Label est le libellé français utilisé dans les messages ("actualité").
	Label string
	// VisibilityColumn vaut "is_active" ou "is_published" (vide: pas de vue publique filtrée).
	VisibilityColumn string
	// OrderClause remplace le tri par défaut (display_order croissant).
	OrderClause string
	// RequirePublishedAt exige published_at non nul côté public.
	RequirePublishedAt bool
	// HasSlug active la dérivation de slug et la consultation publique par slug.
	HasSlug bool
	// AllowedFilters liste blanche paramètre de requête -> colonne.
	AllowedFilters map[string]string
}

// IResourceService est le contrat CRUD commun: listes admin (toutes lignes)
// et publique (lignes visibles), consultation, création, remplacement
// intégral et suppression définitive.
type IResourceService[T any] interface {
	ListAdmin(ctx context.Context, filters map[string]string) ([]T, error)
	ListPublic(ctx context.Context, filters map[string]string) ([]T, error)
	GetByID(ctx context.Context, id string) (*T, error)
	GetPublicByKey(ctx context.Context, key string) (*T, error)
	Create(ctx context.Context, entity *T) (*T, error)
	Update(ctx context.Context, id string, entity *T) (*T, error)
	Delete(ctx context.Context, id string) error
}

// ResourceService implémente IResourceService au-dessus du BaseRepository.
type ResourceService[T any] struct {
	repo repositories.IBaseRepository[T]
	cfg  ResourceConfig
}

// NewResourceService construit le service sur la base partagée.
func NewResourceService[T any](cfg ResourceConfig) IResourceService[T] {
	return NewResourceServiceWithDB[T](configsdatabase.GetDB(), cfg)
}

// NewResourceServiceWithDB construit le service sur une base donnée (tests).
func NewResourceServiceWithDB[T any](db *gorm.DB, cfg ResourceConfig) IResourceService[T] {
	base := repositories.NewBaseRepository[T](db)
	if cfg.VisibilityColumn != "" {
		base.SetVisibilityColumn(cfg.VisibilityColumn)
	}
	if cfg.OrderClause != "" {
		base.SetOrderClause(cfg.OrderClause)
	}
	if cfg.RequirePublishedAt {
		base.RequirePublishedAt()
	}
	if len(cfg.AllowedFilters) > 0 {
		base.SetAllowedFilterColumns(cfg.AllowedFilters)
	}
	return &ResourceService[T]{repo: base, cfg: cfg}
}

// applyDerivedFields pose les champs calculés côté serveur: slug dérivé du
// champ source quand il est vide, date de publication au moment du passage à
// l'état publié.
func (s *ResourceService[T]) applyDerivedFields(entity *T) {
	if s.cfg.HasSlug {
		if sl, ok := any(entity).(models.Sluggable); ok && sl.SlugValue() == "" {
			sl.SetSlugValue(slugify.Make(sl.SlugSource()))
		}
	}
	if p, ok := any(entity).(models.Publishable); ok {
		if p.PublishedFlag() && p.PublishedTime() == nil {
			now := time.Now()
			p.SetPublishedTime(&now)
		}
	}
}

// ListAdmin retourne toutes les lignes, visibles ou non.
func (s *ResourceService[T]) ListAdmin(ctx context.Context, filters map[string]string) ([]T, error) {
	return s.repo.GetAll(ctx, false, filters)
}

// ListPublic retourne les lignes visibles. Sous-ensemble strict de ListAdmin.
func (s *ResourceService[T]) ListPublic(ctx context.Context, filters map[string]string) ([]T, error) {
	return s.repo.GetAll(ctx, true, filters)
}

// GetByID retourne une ligne pour le back-office, sans filtre de visibilité.
func (s *ResourceService[T]) GetByID(ctx context.Context, id string) (*T, error) {
	entity, err := s.repo.GetByID(ctx, id, false)
	if err == repositories.ErrNotFound {
		return nil, ErrResourceNotFound
	}
	return entity, err
}

// GetPublicByKey résout une clé publique: d'abord comme slug (si la ressource
// en a un), sinon comme identifiant. Les lignes masquées comptent comme absentes.
func (s *ResourceService[T]) GetPublicByKey(ctx context.Context, key string) (*T, error) {
	if key == "" {
		return nil, ErrResourceNotFound
	}

	if s.cfg.HasSlug {
		entity, err := s.repo.GetBySlug(ctx, key, true)
		if err == nil {
			return entity, nil
		}
		if err != repositories.ErrNotFound {
			return nil, err
		}
	}

	// Repli par identifiant. On vérifie la forme UUID avant d'interroger la
	// base: PostgreSQL rejette une comparaison uuid avec un texte quelconque.
	if uuid.Validate(key) != nil {
		return nil, ErrResourceNotFound
	}
	entity, err := s.repo.GetByID(ctx, key, true)
	if err == repositories.ErrNotFound {
		return nil, ErrResourceNotFound
	}
	return entity, err
}

// Create insère une nouvelle ligne. L'identifiant est attribué par le serveur,
// le slug dérivé si absent. Aucune validation de schéma au-delà des types de
// colonnes: le client est responsable des champs requis.
func (s *ResourceService[T]) Create(ctx context.Context, entity *T) (*T, error) {
	if entity == nil {
		return nil, ErrResourceInvalid
	}
	s.applyDerivedFields(entity)
	if err := s.repo.Create(ctx, entity); err != nil {
		configslog.Log.Error("ResourceService.Create: échec",
			zap.String("ressource", s.cfg.Label), zap.Error(err))
		return nil, err
	}
	return entity, nil
}

// Update remplace intégralement les champs modifiables puis relit la ligne.
// Dernier écrivain gagnant: aucune détection de mise à jour concurrente.
func (s *ResourceService[T]) Update(ctx context.Context, id string, entity *T) (*T, error) {
	if entity == nil || id == "" {
		return nil, ErrResourceInvalid
	}
	s.applyDerivedFields(entity)
	if err := s.repo.Update(ctx, id, entity); err != nil {
		if err == repositories.ErrNotFound {
			return nil, ErrResourceNotFound
		}
		configslog.Log.Error("ResourceService.Update: échec",
			zap.String("ressource", s.cfg.Label), zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return s.GetByID(ctx, id)
}

// Delete supprime définitivement la ligne. Les références entrantes des
// autres ressources ne sont pas nettoyées.
func (s *ResourceService[T]) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrResourceInvalid
	}
	err := s.repo.Delete(ctx, id)
	if err == repositories.ErrNotFound {
		return ErrResourceNotFound
	}
	if err != nil {
		configslog.Log.Error("ResourceService.Delete: échec",
			zap.String("ressource", s.cfg.Label), zap.String("id", id), zap.Error(err))
	}
	return err
}

var _ IResourceService[struct{}] = (*ResourceService[struct{}])(nil)
