package handlers

import (
	"errors"

	"groupeatlas.com/configs/configslog"
	"groupeatlas.com/models"
	"groupeatlas.com/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// SettingsHandler gère la configuration du site et les coordonnées de contact.
type SettingsHandler struct {
	service services.ISettingsService
}

// NewSettingsHandler crée un SettingsHandler.
func NewSettingsHandler() *SettingsHandler {
	return &SettingsHandler{service: services.NewSettingsService()}
}

// NewSettingsHandlerWithService permet d'injecter le service (tests).
func NewSettingsHandlerWithService(service services.ISettingsService) *SettingsHandler {
	return &SettingsHandler{service: service}
}

// GetSiteSetting retourne l'unique ligne de configuration du site.
func (h *SettingsHandler) GetSiteSetting(c *fiber.Ctx) error {
	setting, err := h.service.GetSiteSetting(c.UserContext())
	if err != nil {
		if errors.Is(err, services.ErrResourceNotFound) {
			return NotFound(c, "Configuration")
		}
		configslog.Log.Error("GetSiteSetting: erreur", zap.Error(err))
		return ServerError(c)
	}
	return c.JSON(setting)
}

// UpdateSiteSetting remplace intégralement la configuration du site.
func (h *SettingsHandler) UpdateSiteSetting(c *fiber.Ctx) error {
	var setting models.SiteSetting
	if err := c.BodyParser(&setting); err != nil {
		return BadRequest(c)
	}
	updated, err := h.service.UpdateSiteSetting(c.UserContext(), &setting)
	if err != nil {
		configslog.Log.Error("UpdateSiteSetting: erreur", zap.Error(err))
		return ServerError(c)
	}
	return c.JSON(updated)
}

// GetContactInfo retourne l'unique ligne de coordonnées.
func (h *SettingsHandler) GetContactInfo(c *fiber.Ctx) error {
	info, err := h.service.GetContactInfo(c.UserContext())
	if err != nil {
		if errors.Is(err, services.ErrResourceNotFound) {
			return NotFound(c, "Coordonnées")
		}
		configslog.Log.Error("GetContactInfo: erreur", zap.Error(err))
		return ServerError(c)
	}
	return c.JSON(info)
}

// UpdateContactInfo remplace intégralement les coordonnées.
func (h *SettingsHandler) UpdateContactInfo(c *fiber.Ctx) error {
	var info models.ContactInfo
	if err := c.BodyParser(&info); err != nil {
		return BadRequest(c)
	}
	updated, err := h.service.UpdateContactInfo(c.UserContext(), &info)
	if err != nil {
		configslog.Log.Error("UpdateContactInfo: erreur", zap.Error(err))
		return ServerError(c)
	}
	return c.JSON(updated)
}
