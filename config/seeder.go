package config

import (
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/zzzhht1/VehicleSystem/models"
	"github.com/zzzhht1/VehicleSystem/utils"
)

func SeedUsers(db *gorm.DB) {
	logrus.Info("Seeding operators...")

	password, _ := utils.HashPassword("password123")

	users := []models.User{
		{
			Username:   "admin",
			Email:      "admin@example.com",
			Password:   password,
			FullName:   "Fleet Admin",
			Department: "Fleet Management",
			Role:       "admin",
		},
		{
			Username:   "operator1",
			Email:      "operator1@example.com",
			Password:   password,
			FullName:   "Operator One",
			Department: "Dispatch",
			Role:       "operator",
		},
	}

	for _, user := range users {
		var existingUser models.User
		if err := db.Where("email = ?", user.Email).First(&existingUser).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				if err := db.Create(&user).Error; err != nil {
					logrus.Errorf("Failed to seed user %s: %v", user.Username, err)
				} else {
					logrus.Infof("User seeded: %s (ID: %d)", user.Username, user.ID)
				}
			}
		} else {
			logrus.Infof("User already exists: %s", user.Username)
		}
	}

	logrus.Info("Operator seeding complete.")
}

func SeedVehicles(db *gorm.DB) {
	logrus.Info("Seeding vehicles...")

	vehicles := []models.Vehicle{
		{
			PlateNumber:  "JA-1024",
			Type:         "sedan",
			Brand:        "Toyota",
			Color:        "white",
			FuelType:     "petrol",
			SeatCapacity: 5,
			Mileage:      42000,
			Status:       models.StatusInStock,
			OwnerID:      "OP-001",
		},
		{
			PlateNumber:  "JB-2048",
			Type:         "van",
			Brand:        "Ford",
			Color:        "silver",
			FuelType:     "diesel",
			SeatCapacity: 9,
			Mileage:      87500,
			Status:       models.StatusRented,
			OwnerID:      "OP-002",
		},
		{
			PlateNumber:  "JC-4096",
			Type:         "truck",
			Brand:        "Volvo",
			Color:        "blue",
			FuelType:     "diesel",
			SeatCapacity: 3,
			Mileage:      153000,
			Status:       models.StatusInRepair,
			OwnerID:      "OP-001",
		},
	}

	for _, vehicle := range vehicles {
		var existing models.Vehicle
		if err := db.Where("plate_number = ?", vehicle.PlateNumber).First(&existing).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				if err := db.Create(&vehicle).Error; err != nil {
					logrus.Errorf("Failed to seed vehicle %s: %v", vehicle.PlateNumber, err)
				} else {
					logrus.Infof("Vehicle seeded: %s (ID: %d)", vehicle.PlateNumber, vehicle.ID)
				}
			}
		} else {
			logrus.Infof("Vehicle already exists: %s", vehicle.PlateNumber)
		}
	}

	logrus.Info("Vehicle seeding complete.")
}
