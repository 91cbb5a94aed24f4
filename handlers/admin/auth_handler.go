package handlers

import (
	"errors"

	"groupeatlas.com/configs/configslog"
	"groupeatlas.com/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// AuthHandler gère la connexion au back-office.
type AuthHandler struct {
	service services.IAuthService
}

// NewAuthHandler crée un AuthHandler.
func NewAuthHandler() *AuthHandler {
	return &AuthHandler{service: services.NewAuthService()}
}

// NewAuthHandlerWithService permet d'injecter le service (tests).
func NewAuthHandlerWithService(service services.IAuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login vérifie les identifiants et retourne un jeton signé avec le compte.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return BadRequest(c)
	}

	token, admin, err := h.service.Login(c.UserContext(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return Unauthorized(c, "Identifiants invalides")
		}
		configslog.Log.Error("Login: erreur", zap.Error(err))
		return ServerError(c)
	}

	return c.JSON(fiber.Map{
		"token": token,
		"user":  admin,
	})
}
