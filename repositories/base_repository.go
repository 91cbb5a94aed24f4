package repositories

import (
	"context"
	"errors"

	"groupeatlas.com/configs/configslog"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// IBaseRepository expose les opérations CRUD communes à toutes les ressources
// du back-office. La vue admin lit toutes les lignes, la vue publique filtre
// sur la colonne de visibilité configurée.
type IBaseRepository[T any] interface {
	GetAll(ctx context.Context, visibleOnly bool, filters map[string]string) ([]T, error)
	GetByID(ctx context.Context, id string, visibleOnly bool) (*T, error)
	GetBySlug(ctx context.Context, slug string, visibleOnly bool) (*T, error)
	Create(ctx context.Context, entity *T) error
	Update(ctx context.Context, id string, entity *T) error
	Delete(ctx context.Context, id string) error
	GetCount(ctx context.Context) (int64, error)
}

// BaseRepository implémente IBaseRepository pour un type de modèle donné.
// La configuration (colonne de visibilité, tri, filtres autorisés) est posée
// par les setters au moment de la construction du service.
type BaseRepository[T any] struct {
	db                 *gorm.DB
	visibilityColumn   string            // "is_active" ou "is_published"; vide = pas de filtre public
	requirePublishedAt bool              // la vue publique exige published_at non nul
	orderClause        string            // clause ORDER BY des listes
	allowedFilters     map[string]string // paramètre de requête -> colonne
}

// NewBaseRepository crée un BaseRepository avec le tri par défaut
// (displayOrder croissant, créations anciennes d'abord à égalité).
func NewBaseRepository[T any](db *gorm.DB) *BaseRepository[T] {
	return &BaseRepository[T]{
		db:          db,
		orderClause: "display_order asc, created_at asc",
	}
}

// SetVisibilityColumn définit la colonne booléenne filtrée par la vue publique.
func (r *BaseRepository[T]) SetVisibilityColumn(column string) {
	r.visibilityColumn = column
}

// SetOrderClause remplace le tri par défaut des listes.
func (r *BaseRepository[T]) SetOrderClause(clause string) {
	r.orderClause = clause
}

// RequirePublishedAt exige en plus un published_at non nul côté public
// (ressources de contenu).
func (r *BaseRepository[T]) RequirePublishedAt() {
	r.requirePublishedAt = true
}

// SetAllowedFilterColumns liste blanche des filtres de requête acceptés
// (nom de paramètre -> colonne). Tout autre paramètre est ignoré.
func (r *BaseRepository[T]) SetAllowedFilterColumns(filters map[string]string) {
	r.allowedFilters = filters
}

// visibleScope applique le filtre de visibilité publique sur la requête.
func (r *BaseRepository[T]) visibleScope(query *gorm.DB) *gorm.DB {
	if r.visibilityColumn != "" {
		query = query.Where(r.visibilityColumn+" = ?", true)
	}
	if r.requirePublishedAt {
		query = query.Where("published_at IS NOT NULL")
	}
	return query
}

// GetAll liste les lignes dans l'ordre de la ressource. visibleOnly applique
// le filtre public; filters ne retient que les colonnes en liste blanche.
func (r *BaseRepository[T]) GetAll(ctx context.Context, visibleOnly bool, filters map[string]string) ([]T, error) {
	var results []T
	query := r.db.WithContext(ctx).Model(new(T))

	if visibleOnly {
		query = r.visibleScope(query)
	}
	for param, value := range filters {
		column, ok := r.allowedFilters[param]
		if !ok || value == "" {
			continue
		}
		query = query.Where(column+" = ?", value)
	}

	err := query.Order(r.orderClause).Find(&results).Error
	if err != nil {
		configslog.Log.Error("BaseRepository.GetAll: erreur base de données", zap.Error(err))
		return nil, err
	}
	return results, nil
}

// GetByID retourne la ligne d'identifiant donné, ou ErrNotFound. Avec
// visibleOnly, une ligne masquée est traitée comme absente.
func (r *BaseRepository[T]) GetByID(ctx context.Context, id string, visibleOnly bool) (*T, error) {
	var result T
	query := r.db.WithContext(ctx)
	if visibleOnly {
		query = r.visibleScope(query)
	}
	err := query.First(&result, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		configslog.Log.Error("BaseRepository.GetByID: erreur base de données", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return &result, nil
}

// GetBySlug retourne la première ligne portant ce slug. L'unicité des slugs
// n'étant pas garantie, l'ordre d'insertion départage les collisions.
func (r *BaseRepository[T]) GetBySlug(ctx context.Context, slug string, visibleOnly bool) (*T, error) {
	var result T
	query := r.db.WithContext(ctx).Where("slug = ?", slug)
	if visibleOnly {
		query = r.visibleScope(query)
	}
	err := query.Order("created_at asc").First(&result).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		configslog.Log.Error("BaseRepository.GetBySlug: erreur base de données", zap.String("slug", slug), zap.Error(err))
		return nil, err
	}
	return &result, nil
}

// Create insère la ligne. L'identifiant est posé par le hook BeforeCreate.
func (r *BaseRepository[T]) Create(ctx context.Context, entity *T) error {
	err := r.db.WithContext(ctx).Create(entity).Error
	if err != nil {
		configslog.Log.Error("BaseRepository.Create: erreur base de données", zap.Error(err))
	}
	return err
}

// Update remplace intégralement les champs modifiables de la ligne (sémantique
// PUT). Retourne ErrNotFound quand aucune ligne n'est touchée.
func (r *BaseRepository[T]) Update(ctx context.Context, id string, entity *T) error {
	result := r.db.WithContext(ctx).
		Model(new(T)).
		Where("id = ?", id).
		Select("*").
		Omit("id", "created_at").
		Updates(entity)
	if result.Error != nil {
		configslog.Log.Error("BaseRepository.Update: erreur base de données", zap.String("id", id), zap.Error(result.Error))
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete supprime définitivement la ligne (pas de corbeille). Retourne
// ErrNotFound quand l'identifiant n'existe pas.
func (r *BaseRepository[T]) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(new(T), "id = ?", id)
	if result.Error != nil {
		configslog.Log.Error("BaseRepository.Delete: erreur base de données", zap.String("id", id), zap.Error(result.Error))
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// GetCount retourne le nombre total de lignes de la table.
func (r *BaseRepository[T]) GetCount(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(new(T)).Count(&count).Error
	return count, err
}

var _ IBaseRepository[struct{}] = (*BaseRepository[struct{}])(nil)
