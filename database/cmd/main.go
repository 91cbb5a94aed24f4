package main

import (
	"flag"

	"groupeatlas.com/configs/configsdatabase"
	"groupeatlas.com/configs/configslog"
	"groupeatlas.com/database"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()
	configslog.InitLogger()
	defer configslog.SyncLogger()

	migrateFlag := flag.Bool("migrate", false, "Exécute les migrations de schéma")
	seedFlag := flag.Bool("seed", false, "Exécute les seeders (compte admin, configuration par défaut)")
	flag.Parse()

	configsdatabase.InitDB()
	defer configsdatabase.CloseDB()

	database.Initialize(configsdatabase.GetDB(), *migrateFlag, *seedFlag)
}
