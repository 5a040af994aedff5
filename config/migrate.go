package config

import (
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/zzzhht1/VehicleSystem/models"
)

func Migrate(db *gorm.DB) error {
	// Migrate the schema
	err := db.AutoMigrate(
		&models.User{},
		&models.Vehicle{},
	)

	if err != nil {
		logrus.Errorf("Failed to migrate database schema: %v", err)
		return err
	}

	logrus.Info("Database migrations completed successfully...")

	return nil
}

func ResetAndMigrate(db *gorm.DB) error {
	// Drop all tables
	tables := []interface{}{
		&models.User{},
		&models.Vehicle{},
	}

	if err := db.Migrator().DropTable(tables...); err != nil {
		logrus.Errorf("Failed to drop tables: %v", err)
		return err
	}

	logrus.Info("All tables dropped successfully.")

	if err := db.AutoMigrate(tables...); err != nil {
		logrus.Errorf("Failed to auto migrate: %v", err)
		return err
	}

	SeedUsers(db)
	SeedVehicles(db)

	logrus.Info("Database reset and migration completed successfully.")
	return nil
}
