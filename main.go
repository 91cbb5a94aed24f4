package main

import (
	"os"
	"os/signal"
	"syscall"

	"groupeatlas.com/configs/configsdatabase"
	"groupeatlas.com/configs/configslog"
	"groupeatlas.com/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()
	configslog.InitLogger()
	defer configslog.SyncLogger()

	configsdatabase.InitDB()
	defer configsdatabase.CloseDB()

	app := fiber.New(fiber.Config{
		AppName: "Groupe Atlas API",
	})
	routes.SetupRoutes(app)

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	// Arrêt propre sur SIGINT/SIGTERM.
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		configslog.SLog.Info("Signal d'arrêt reçu, fermeture du serveur...")
		_ = app.Shutdown()
	}()

	configslog.SLog.Infof("Serveur démarré sur le port %s", port)
	if err := app.Listen(":" + port); err != nil {
		configslog.Log.Fatal("Le serveur s'est arrêté en erreur", zap.Error(err))
	}
}
