package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/zzzhht1/VehicleSystem/models"
	"github.com/zzzhht1/VehicleSystem/repository"
)

type VehicleHandler struct {
	Repo *repository.VehicleRepository
}

func NewVehicleHandler(db *gorm.DB) *VehicleHandler {
	return &VehicleHandler{Repo: repository.NewVehicleRepository(db)}
}

// VehicleRequest is the payload for create and update.
type VehicleRequest struct {
	PlateNumber  string `json:"plate_number"`
	Type         string `json:"type"`
	Brand        string `json:"brand"`
	Color        string `json:"color"`
	FuelType     string `json:"fuel_type"`
	SeatCapacity int    `json:"seat_capacity"`
	Mileage      int    `json:"mileage"`
	Status       int    `json:"status"`
	OwnerID      string `json:"owner_id"`
}

func (req *VehicleRequest) validate() string {
	if req.PlateNumber == "" || len(req.PlateNumber) > 20 {
		return "plate_number is required (max 20 chars)"
	}
	if req.Type == "" || len(req.Type) > 20 {
		return "type is required (max 20 chars)"
	}
	if req.Brand == "" || len(req.Brand) > 30 {
		return "brand is required (max 30 chars)"
	}
	if req.FuelType == "" || len(req.FuelType) > 10 {
		return "fuel_type is required (max 10 chars)"
	}
	if req.SeatCapacity < 1 {
		return "seat_capacity must be at least 1"
	}
	if req.Mileage < 0 {
		return "mileage cannot be negative"
	}
	if len(req.OwnerID) > 20 {
		return "owner_id too long (max 20 chars)"
	}
	return ""
}

// ListVehicles - GET /api/vehicles?pageNumber=&pageSize=&searchTerm=
//
// Responds with one page of the filtered fleet plus the total match count.
// Invalid paging arguments surface as a 400 through the app error handler.
func (h *VehicleHandler) ListVehicles(c *fiber.Ctx) error {
	pageNumber := c.QueryInt("pageNumber", 1)
	pageSize := c.QueryInt("pageSize", 10)

	var filter *repository.Filter
	if term := c.Query("searchTerm"); term != "" {
		filter = &repository.Filter{SearchTerm: term}
	}

	items, totalCount, err := h.Repo.GetPagedList(c.Context(), pageNumber, pageSize, filter)
	if err != nil {
		if errors.Is(err, repository.ErrInvalidPageNumber) || errors.Is(err, repository.ErrInvalidPageSize) {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		return err
	}

	resp := models.VehicleListResponse{
		Items:      make([]models.VehicleResponse, 0, len(items)),
		TotalCount: totalCount,
	}
	for _, v := range items {
		resp.Items = append(resp.Items, models.ToVehicleResponse(v))
	}
	return c.JSON(resp)
}

// GetVehicle - GET /api/vehicles/:id
func (h *VehicleHandler) GetVehicle(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid vehicle id"})
	}

	v, err := h.Repo.GetByID(c.Context(), uint(id))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Vehicle not found"})
	}
	if err != nil {
		return err
	}
	return c.JSON(models.ToVehicleResponse(*v))
}

// CreateVehicle - POST /api/vehicles
func (h *VehicleHandler) CreateVehicle(c *fiber.Ctx) error {
	var req VehicleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}
	if msg := req.validate(); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
	}

	color := req.Color
	if color == "" {
		color = "white"
	}
	vehicle := models.Vehicle{
		PlateNumber:  req.PlateNumber,
		Type:         req.Type,
		Brand:        req.Brand,
		Color:        color,
		FuelType:     req.FuelType,
		SeatCapacity: req.SeatCapacity,
		Mileage:      req.Mileage,
		Status:       models.VehicleStatus(req.Status),
		OwnerID:      req.OwnerID,
	}

	if err := h.Repo.Add(c.Context(), &vehicle); err != nil {
		// The plate index also covers soft-deleted rows, so a reused
		// plate of a deleted vehicle lands here as well.
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Plate number already registered"})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Vehicle created",
		"data":    models.ToVehicleResponse(vehicle),
	})
}

// UpdateVehicle - PUT /api/vehicles/:id
//
// Full-entity replace: every field comes from the request body.
func (h *VehicleHandler) UpdateVehicle(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid vehicle id"})
	}

	vehicle, err := h.Repo.GetByID(c.Context(), uint(id))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Vehicle not found"})
	}
	if err != nil {
		return err
	}

	var req VehicleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}
	if msg := req.validate(); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
	}

	vehicle.PlateNumber = req.PlateNumber
	vehicle.Type = req.Type
	vehicle.Brand = req.Brand
	vehicle.Color = req.Color
	vehicle.FuelType = req.FuelType
	vehicle.SeatCapacity = req.SeatCapacity
	vehicle.Mileage = req.Mileage
	vehicle.Status = models.VehicleStatus(req.Status)
	vehicle.OwnerID = req.OwnerID

	if err := h.Repo.Update(c.Context(), vehicle); err != nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Plate number already registered"})
	}
	return c.JSON(fiber.Map{
		"message": "Vehicle updated",
		"data":    models.ToVehicleResponse(*vehicle),
	})
}

// DeleteVehicle - GET /api/vehicles/delete?id=
//
// The friendly delete used by the listing screen. Always answers 200 with
// {success, message}; no error escapes this handler. Deleting a vehicle
// that is already marked deleted reports success without touching storage.
func (h *VehicleHandler) DeleteVehicle(c *fiber.Ctx) error {
	id := c.QueryInt("id", 0)
	if id <= 0 {
		return c.JSON(models.DeleteResponse{Success: false, Message: "Invalid vehicle id."})
	}

	result, err := h.Repo.Delete(c.Context(), uint(id))
	switch result {
	case repository.DeleteNotFound:
		return c.JSON(models.DeleteResponse{Success: false, Message: "Vehicle to delete was not found."})
	case repository.DeleteAlreadyDeleted:
		return c.JSON(models.DeleteResponse{Success: true, Message: "No change, vehicle was already marked as deleted."})
	case repository.DeleteSuccess:
		return c.JSON(models.DeleteResponse{Success: true, Message: "Vehicle successfully marked as deleted."})
	default:
		logrus.Errorf("Error deleting vehicle %d: %v", id, err)
		return c.JSON(models.DeleteResponse{Success: false, Message: "An error occurred while deleting the vehicle."})
	}
}

// AdminDeleteVehicle - DELETE /api/vehicles/:id (admin only)
//
// The terse variant: 204 once the record is in the deleted state, 404 when
// it never existed.
func (h *VehicleHandler) AdminDeleteVehicle(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid vehicle id"})
	}

	result, err := h.Repo.Delete(c.Context(), uint(id))
	switch result {
	case repository.DeleteNotFound:
		return c.SendStatus(fiber.StatusNotFound)
	case repository.DeleteSuccess, repository.DeleteAlreadyDeleted:
		return c.SendStatus(fiber.StatusNoContent)
	default:
		logrus.Errorf("Error deleting vehicle %d: %v", id, err)
		return fiber.NewError(fiber.StatusInternalServerError, "could not delete vehicle")
	}
}
