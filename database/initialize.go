package database

import (
	"groupeatlas.com/configs/configslog"
	"groupeatlas.com/database/migrations"
	"groupeatlas.com/database/seeders"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Initialize exécute migrations et/ou seeders dans une même transaction.
func Initialize(db *gorm.DB, migrate bool, seed bool) {
	if !migrate && !seed {
		configslog.SLog.Info("Ni -migrate ni -seed: aucune opération.")
		return
	}

	tx := db.Begin()
	if tx.Error != nil {
		configslog.Log.Fatal("Ouverture de la transaction impossible", zap.Error(tx.Error))
		return
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			configslog.Log.Fatal("Initialisation de la base interrompue (panic)", zap.Any("panic_info", r))
		}
	}()

	configslog.SLog.Info("Initialisation de la base de données...")

	if migrate {
		if err := RunMigrationsInOrder(tx); err != nil {
			configslog.Log.Error("Migration échouée, transaction annulée", zap.Error(err))
			tx.Rollback()
			return
		}
		configslog.SLog.Info("Migrations terminées.")
	}

	if seed {
		if err := RunSeeders(tx); err != nil {
			configslog.Log.Error("Seeding échoué, transaction annulée", zap.Error(err))
			tx.Rollback()
			return
		}
		configslog.SLog.Info("Seeders terminés.")
	}

	if err := tx.Commit().Error; err != nil {
		configslog.Log.Error("Commit impossible", zap.Error(err))
		return
	}

	configslog.SLog.Info("Initialisation de la base de données terminée.")
}

// RunMigrationsInOrder exécute les migrations de toutes les tables, les
// tables référencées (catégories, filiales) avant celles qui les référencent.
func RunMigrationsInOrder(db *gorm.DB) error {
	steps := []func(*gorm.DB) error{
		migrations.MigrateAdminsTable,
		migrations.MigrateEntitiesTable,
		migrations.MigrateCarouselTable,
		migrations.MigrateNewsTables,
		migrations.MigratePressReleasesTable,
		migrations.MigrateJobOffersTable,
		migrations.MigratePartnersTables,
		migrations.MigrateTestimonialsTable,
		migrations.MigrateFAQTables,
		migrations.MigrateServicesTable,
		migrations.MigrateProductsTables,
		migrations.MigrateProjectsTable,
		migrations.MigratePagesTable,
		migrations.MigrateSettingsTables,
		migrations.MigrateContactMessagesTable,
	}
	for _, step := range steps {
		if err := step(db); err != nil {
			return err
		}
	}
	configslog.SLog.Info("Toutes les migrations ont été exécutées.")
	return nil
}

// RunSeeders exécute les seeders idempotents (compte admin, configuration).
func RunSeeders(db *gorm.DB) error {
	if err := seeders.SeedSystemAdmin(db); err != nil {
		return err
	}
	if err := seeders.SeedDefaultSettings(db); err != nil {
		return err
	}
	return nil
}
