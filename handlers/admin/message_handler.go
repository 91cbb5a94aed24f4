package handlers

import (
	"errors"

	"groupeatlas.com/configs/configslog"
	"groupeatlas.com/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// MessageHandler expose la boîte de réception du formulaire de contact.
type MessageHandler struct {
	service services.IContactService
}

// NewMessageHandler crée un MessageHandler.
func NewMessageHandler() *MessageHandler {
	return &MessageHandler{service: services.NewContactService()}
}

// NewMessageHandlerWithService permet d'injecter le service (tests).
func NewMessageHandlerWithService(service services.IContactService) *MessageHandler {
	return &MessageHandler{service: service}
}

// List retourne les messages reçus, les plus récents d'abord.
func (h *MessageHandler) List(c *fiber.Ctx) error {
	messages, err := h.service.ListMessages(c.UserContext())
	if err != nil {
		configslog.Log.Error("Messages List: erreur", zap.Error(err))
		return ServerError(c)
	}
	return c.JSON(messages)
}

// Delete supprime définitivement un message.
func (h *MessageHandler) Delete(c *fiber.Ctx) error {
	err := h.service.DeleteMessage(c.UserContext(), c.Params("id"))
	if err != nil {
		if errors.Is(err, services.ErrMessageNotFound) {
			return NotFound(c, "Message")
		}
		configslog.Log.Error("Messages Delete: erreur", zap.String("id", c.Params("id")), zap.Error(err))
		return ServerError(c)
	}
	return c.JSON(fiber.Map{"message": "Suppression effectuée"})
}
