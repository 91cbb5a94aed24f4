package handlers

import (
	"errors"
	"net/http"

	"groupeatlas.com/configs/configslog"
	"groupeatlas.com/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ResourceHandler sert la vue publique d'une ressource: listes filtrées sur
// la visibilité et consultation par slug ou identifiant.
type ResourceHandler[T any] struct {
	service services.IResourceService[T]
	label   string
}

// NewResourceHandler crée le handler public d'une ressource.
func NewResourceHandler[T any](service services.IResourceService[T], label string) *ResourceHandler[T] {
	return &ResourceHandler[T]{service: service, label: label}
}

// List retourne les lignes visibles (isActive/isPublished), toujours un
// sous-ensemble de la liste admin.
func (h *ResourceHandler[T]) List(c *fiber.Ctx) error {
	rows, err := h.service.ListPublic(c.UserContext(), c.Queries())
	if err != nil {
		configslog.Log.Error("Public List: erreur", zap.String("ressource", h.label), zap.Error(err))
		return serverError(c)
	}
	return c.JSON(rows)
}

// GetByKey résout la clé comme slug puis comme identifiant. Les lignes
// masquées ou dépubliées répondent 404.
func (h *ResourceHandler[T]) GetByKey(c *fiber.Ctx) error {
	row, err := h.service.GetPublicByKey(c.UserContext(), c.Params("key"))
	if err != nil {
		if errors.Is(err, services.ErrResourceNotFound) {
			return c.Status(http.StatusNotFound).JSON(fiber.Map{"message": h.label + " introuvable"})
		}
		configslog.Log.Error("Public GetByKey: erreur", zap.String("ressource", h.label),
			zap.String("key", c.Params("key")), zap.Error(err))
		return serverError(c)
	}
	return c.JSON(row)
}

func serverError(c *fiber.Ctx) error {
	return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"message": "Erreur serveur"})
}
