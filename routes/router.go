package routes

import (
	"net/http"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	recoverMiddleware "github.com/gofiber/fiber/v2/middleware/recover"
)

// SetupRoutes installe les middlewares généraux et l'ensemble des routes de
// l'API (admin puis publiques), le service des fichiers téléversés et le 404.
func SetupRoutes(app *fiber.App) {
	// --- Middlewares généraux ---
	app.Use(recoverMiddleware.New()) // Capture des panics
	app.Use(logger.New())            // Journal des requêtes

	// --- Fichiers téléversés (images du back-office) ---
	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "./public/uploads"
	}
	app.Static("/uploads", uploadDir)

	// --- API ---
	api := app.Group("/api")
	registerAdminRoutes(api)  // /api/admin/*
	registerPublicRoutes(api) // /api/*

	// --- 404 ---
	// En dernier: capture toutes les routes sans correspondance.
	app.Use(notFoundHandler)
}

func notFoundHandler(c *fiber.Ctx) error {
	return c.Status(http.StatusNotFound).JSON(fiber.Map{"message": "Ressource introuvable"})
}
