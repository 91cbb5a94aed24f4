package middlewares

import (
	"net/http"
	"strings"

	"groupeatlas.com/configs/configsauth"

	"github.com/gofiber/fiber/v2"
)

// AuthMiddleware protège les routes d'administration: il exige un jeton
// Bearer signé et dépose l'identifiant du compte dans les locals.
func AuthMiddleware(c *fiber.Ctx) error {
	header := c.Get(fiber.HeaderAuthorization)
	token := strings.TrimPrefix(header, "Bearer ")
	if token == "" || token == header {
		return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"message": "Authentification requise"})
	}

	adminID, err := configsauth.VerifyToken(token)
	if err != nil {
		return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"message": "Jeton invalide ou expiré"})
	}

	c.Locals("adminID", adminID)
	return c.Next()
}
