package configslog

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log est le logger structuré de l'application.
// SLog est sa version "sugared" pour les messages simples.
var (
	Log  *zap.Logger
	SLog *zap.SugaredLogger
)

// InitLogger initialise le logger global selon APP_ENV
// (production: JSON, sinon: console lisible).
func InitLogger() {
	var cfg zap.Config
	if os.Getenv("APP_ENV") == "production" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	logger, err := cfg.Build(zap.AddCallerSkip(0))
	if err != nil {
		panic("impossible d'initialiser le logger: " + err.Error())
	}
	Log = logger
	SLog = logger.Sugar()
}

// SyncLogger vide les buffers du logger. À appeler en defer depuis main.
func SyncLogger() {
	if Log != nil {
		_ = Log.Sync()
	}
}
