package handlers

import (
	"errors"
	"net/http"

	"groupeatlas.com/configs/configslog"
	"groupeatlas.com/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// SettingsHandler sert la configuration publique du site (nom, pied de page,
// coordonnées) consommée par le front.
type SettingsHandler struct {
	service services.ISettingsService
}

// NewSettingsHandler crée un SettingsHandler public.
func NewSettingsHandler() *SettingsHandler {
	return &SettingsHandler{service: services.NewSettingsService()}
}

// NewSettingsHandlerWithService permet d'injecter le service (tests).
func NewSettingsHandlerWithService(service services.ISettingsService) *SettingsHandler {
	return &SettingsHandler{service: service}
}

// GetSiteSetting retourne la configuration générale du site.
func (h *SettingsHandler) GetSiteSetting(c *fiber.Ctx) error {
	setting, err := h.service.GetSiteSetting(c.UserContext())
	if err != nil {
		if errors.Is(err, services.ErrResourceNotFound) {
			return c.Status(http.StatusNotFound).JSON(fiber.Map{"message": "Configuration introuvable"})
		}
		configslog.Log.Error("Public GetSiteSetting: erreur", zap.Error(err))
		return serverError(c)
	}
	return c.JSON(setting)
}

// GetContactInfo retourne les coordonnées affichées sur le site.
func (h *SettingsHandler) GetContactInfo(c *fiber.Ctx) error {
	info, err := h.service.GetContactInfo(c.UserContext())
	if err != nil {
		if errors.Is(err, services.ErrResourceNotFound) {
			return c.Status(http.StatusNotFound).JSON(fiber.Map{"message": "Coordonnées introuvables"})
		}
		configslog.Log.Error("Public GetContactInfo: erreur", zap.Error(err))
		return serverError(c)
	}
	return c.JSON(info)
}
