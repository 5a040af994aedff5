package main

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/zzzhht1/VehicleSystem/config"
	"github.com/zzzhht1/VehicleSystem/handlers"
	"github.com/zzzhht1/VehicleSystem/middleware"
	"github.com/zzzhht1/VehicleSystem/utils"
)

func main() {
	cfg := config.LoadConfig()

	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		logrus.Fatalf("Failed to connect to database: %v", err)
	}
	if err := config.Migrate(db); err != nil {
		logrus.Fatalf("Failed to migrate database: %v", err)
	}
	config.SeedUsers(db)

	app := fiber.New(fiber.Config{
		AppName:      "Vehicle System Backend",
		ServerHeader: "Vehicle System Server/1.0",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Default 500 statuscode
			code := fiber.StatusInternalServerError
			msg := "Internal Server Error"

			// Retrieve the custom statuscode if it's a *fiber.Error
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
				msg = e.Message
			}

			return c.Status(code).JSON(fiber.Map{
				"error":   true,
				"message": msg,
			})
		},
	})

	middleware.SetupMiddleware(app)

	// Health Check Endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status":  "success",
			"message": "API is healthy",
		})
	})

	authHandler := handlers.NewAuthHandler(db)
	vehicleHandler := handlers.NewVehicleHandler(db)

	api := app.Group("/api")
	api.Post("/auth/register", authHandler.Register)
	api.Post("/auth/login", authHandler.Login)

	api.Get("/me", utils.AuthMiddleware, authHandler.Me)

	vehicles := api.Group("/vehicles", utils.AuthMiddleware)
	vehicles.Get("/", vehicleHandler.ListVehicles)
	// The friendly delete must be registered before the :id routes so the
	// literal path wins.
	vehicles.Get("/delete", vehicleHandler.DeleteVehicle)
	vehicles.Get("/:id", vehicleHandler.GetVehicle)
	vehicles.Post("/", vehicleHandler.CreateVehicle)
	vehicles.Put("/:id", vehicleHandler.UpdateVehicle)
	vehicles.Delete("/:id", utils.AdminOnly, vehicleHandler.AdminDeleteVehicle)

	logrus.Infof("Server starting on host %s in port %s", cfg.HOST, cfg.AppPort)

	if err := app.Listen(cfg.HOST + ":" + cfg.AppPort); err != nil {
		logrus.Fatalf("Failed to start server: %v", err)
	}
}
