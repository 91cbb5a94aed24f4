package handlers

import (
	"errors"
	"net/http"

	"groupeatlas.com/configs/configslog"
	"groupeatlas.com/models"
	"groupeatlas.com/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ContactHandler reçoit les soumissions du formulaire de contact public.
type ContactHandler struct {
	service services.IContactService
}

// NewContactHandler crée un ContactHandler.
func NewContactHandler() *ContactHandler {
	return &ContactHandler{service: services.NewContactService()}
}

// NewContactHandlerWithService permet d'injecter le service (tests).
func NewContactHandlerWithService(service services.IContactService) *ContactHandler {
	return &ContactHandler{service: service}
}

// Submit persiste un message entrant et retourne la ligne créée.
func (h *ContactHandler) Submit(c *fiber.Ctx) error {
	var message models.ContactMessage
	if err := c.BodyParser(&message); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"message": "Requête invalide"})
	}

	created, err := h.service.Submit(c.UserContext(), &message)
	if err != nil {
		if errors.Is(err, services.ErrMessageIncomplete) {
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
		}
		configslog.Log.Error("Contact Submit: erreur", zap.Error(err))
		return serverError(c)
	}
	return c.Status(http.StatusCreated).JSON(created)
}
