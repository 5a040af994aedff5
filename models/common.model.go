package models

// VehicleResponse is the wire projection of a vehicle record. Status goes
// out as its display label, not the stored integer.
type VehicleResponse struct {
	ID           uint   `json:"id"`
	PlateNumber  string `json:"plateNumber"`
	Type         string `json:"type"`
	Brand        string `json:"brand"`
	Color        string `json:"color"`
	FuelType     string `json:"fuelType"`
	SeatCapacity int    `json:"seatCapacity"`
	Mileage      int    `json:"mileage"`
	Status       string `json:"status"`
	OwnerID      string `json:"ownerId"`
	IsDeleted    bool   `json:"isDeleted"`
}

// ToVehicleResponse projects an entity to its response shape.
func ToVehicleResponse(v Vehicle) VehicleResponse {
	return VehicleResponse{
		ID:           v.ID,
		PlateNumber:  v.PlateNumber,
		Type:         v.Type,
		Brand:        v.Brand,
		Color:        v.Color,
		FuelType:     v.FuelType,
		SeatCapacity: v.SeatCapacity,
		Mileage:      v.Mileage,
		Status:       v.Status.Label(),
		OwnerID:      v.OwnerID,
		IsDeleted:    v.IsDeleted,
	}
}

// VehicleListResponse is the paged listing body: the window's rows plus the
// total count of all matching rows regardless of the window.
type VehicleListResponse struct {
	Items      []VehicleResponse `json:"items"`
	TotalCount int64             `json:"totalCount"`
}

// DeleteResponse is the friendly body of the query-style delete endpoint.
// It never carries an error status code; failures are reported in-band.
type DeleteResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
