package handlers

import (
	"errors"
	"net/http"

	"groupeatlas.com/configs/configslog"
	"groupeatlas.com/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ResourceHandler expose le CRUD JSON d'une ressource du back-office.
// Un seul handler générique sert les quatorze familles de ressources.
type ResourceHandler[T any] struct {
	service services.IResourceService[T]
	label   string
}

// NewResourceHandler crée le handler admin d'une ressource.
func NewResourceHandler[T any](service services.IResourceService[T], label string) *ResourceHandler[T] {
	return &ResourceHandler[T]{service: service, label: label}
}

// List retourne toutes les lignes, visibles ou non, dans l'ordre de la
// ressource. Les paramètres de requête hors liste blanche sont ignorés.
func (h *ResourceHandler[T]) List(c *fiber.Ctx) error {
	rows, err := h.service.ListAdmin(c.UserContext(), c.Queries())
	if err != nil {
		configslog.Log.Error("Admin List: erreur", zap.String("ressource", h.label), zap.Error(err))
		return ServerError(c)
	}
	return c.JSON(rows)
}

// GetByID retourne une ligne par identifiant, sans filtre de visibilité.
func (h *ResourceHandler[T]) GetByID(c *fiber.Ctx) error {
	row, err := h.service.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		if errors.Is(err, services.ErrResourceNotFound) {
			return NotFound(c, h.label)
		}
		configslog.Log.Error("Admin GetByID: erreur", zap.String("ressource", h.label), zap.Error(err))
		return ServerError(c)
	}
	return c.JSON(row)
}

// Create insère une ligne et retourne la ligne créée (201).
func (h *ResourceHandler[T]) Create(c *fiber.Ctx) error {
	payload := new(T)
	if err := c.BodyParser(payload); err != nil {
		return BadRequest(c)
	}
	row, err := h.service.Create(c.UserContext(), payload)
	if err != nil {
		if errors.Is(err, services.ErrResourceInvalid) {
			return BadRequest(c)
		}
		configslog.Log.Error("Admin Create: erreur", zap.String("ressource", h.label), zap.Error(err))
		return ServerError(c)
	}
	return c.Status(http.StatusCreated).JSON(row)
}

// Update remplace intégralement les champs modifiables (sémantique PUT) et
// retourne la ligne relue. 404 quand l'identifiant n'existe pas.
func (h *ResourceHandler[T]) Update(c *fiber.Ctx) error {
	payload := new(T)
	if err := c.BodyParser(payload); err != nil {
		return BadRequest(c)
	}
	row, err := h.service.Update(c.UserContext(), c.Params("id"), payload)
	if err != nil {
		if errors.Is(err, services.ErrResourceNotFound) {
			return NotFound(c, h.label)
		}
		if errors.Is(err, services.ErrResourceInvalid) {
			return BadRequest(c)
		}
		configslog.Log.Error("Admin Update: erreur", zap.String("ressource", h.label),
			zap.String("id", c.Params("id")), zap.Error(err))
		return ServerError(c)
	}
	return c.JSON(row)
}

// Delete supprime définitivement la ligne après confirmation côté client.
func (h *ResourceHandler[T]) Delete(c *fiber.Ctx) error {
	err := h.service.Delete(c.UserContext(), c.Params("id"))
	if err != nil {
		if errors.Is(err, services.ErrResourceNotFound) {
			return NotFound(c, h.label)
		}
		configslog.Log.Error("Admin Delete: erreur", zap.String("ressource", h.label),
			zap.String("id", c.Params("id")), zap.Error(err))
		return ServerError(c)
	}
	return c.JSON(fiber.Map{"message": "Suppression effectuée"})
}
