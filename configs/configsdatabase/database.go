package configsdatabase

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"groupeatlas.com/configs/configslog"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// db est l'instance GORM partagée par toute l'application.
var db *gorm.DB

// InitDB ouvre la connexion PostgreSQL à partir des variables d'environnement
// et configure le pool de connexions.
func InitDB() {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s TimeZone=Europe/Paris",
		getEnv("DB_HOST", "localhost"),
		getEnv("DB_PORT", "5432"),
		getEnv("DB_USER", "atlas"),
		getEnv("DB_PASSWORD", ""),
		getEnv("DB_NAME", "groupeatlas"),
		getEnv("DB_SSLMODE", "disable"),
	)

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		configslog.Log.Fatal("Connexion à la base de données impossible", zap.Error(err))
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		configslog.Log.Fatal("Récupération du pool SQL impossible", zap.Error(err))
	}
	sqlDB.SetMaxOpenConns(getEnvInt("DB_MAX_OPEN_CONNS", 20))
	sqlDB.SetMaxIdleConns(getEnvInt("DB_MAX_IDLE_CONNS", 5))
	sqlDB.SetConnMaxLifetime(time.Hour)

	db = gormDB
	configslog.SLog.Info("Connexion à la base de données établie.")
}

// GetDB retourne l'instance GORM partagée.
func GetDB() *gorm.DB {
	if db == nil {
		configslog.Log.Fatal("GetDB appelé avant InitDB")
	}
	return db
}

// SetDB remplace l'instance partagée. Utilisé par les tests pour injecter
// une base SQLite en mémoire.
func SetDB(instance *gorm.DB) {
	db = instance
}

// CloseDB ferme proprement le pool de connexions.
func CloseDB() {
	if db == nil {
		return
	}
	sqlDB, err := db.DB()
	if err != nil {
		configslog.Log.Error("Fermeture: pool SQL inaccessible", zap.Error(err))
		return
	}
	if err := sqlDB.Close(); err != nil {
		configslog.Log.Error("Fermeture de la base de données échouée", zap.Error(err))
		return
	}
	configslog.SLog.Info("Connexion à la base de données fermée.")
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
