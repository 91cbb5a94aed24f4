package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// Réponses d'erreur communes du back-office. Toute exception inattendue est
// rendue uniformément en 500 avec un message générique.

func ServerError(c *fiber.Ctx) error {
	return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"message": "Erreur serveur"})
}

func BadRequest(c *fiber.Ctx) error {
	return c.Status(http.StatusBadRequest).JSON(fiber.Map{"message": "Requête invalide"})
}

func NotFound(c *fiber.Ctx, label string) error {
	return c.Status(http.StatusNotFound).JSON(fiber.Map{"message": label + " introuvable"})
}

func Unauthorized(c *fiber.Ctx, message string) error {
	return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"message": message})
}
