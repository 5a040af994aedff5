package models

// VehicleStatus is persisted as an integer column (see the status default
// on Vehicle). Values map 1:1 to what the fleet office shows on screen.
type VehicleStatus int

const (
	StatusInStock  VehicleStatus = 0
	StatusRented   VehicleStatus = 1
	StatusInRepair VehicleStatus = 2
	StatusScrapped VehicleStatus = 3
)

// Label returns the display text used in API projections.
func (s VehicleStatus) Label() string {
	switch s {
	case StatusInStock:
		return "in stock"
	case StatusRented:
		return "rented"
	case StatusInRepair:
		return "in repair"
	case StatusScrapped:
		return "scrapped"
	default:
		return "unknown"
	}
}

type Vehicle struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// The unique index covers soft-deleted rows too, so a deleted plate
	// can never be reused by a new record. Kept as-is on purpose.
	PlateNumber string `gorm:"uniqueIndex;not null;size:20" json:"plate_number"`

	Type     string `gorm:"not null;size:20" json:"type"`
	Brand    string `gorm:"not null;size:30" json:"brand"`
	Color    string `gorm:"size:20;default:'white'" json:"color"`
	FuelType string `gorm:"not null;size:10" json:"fuel_type"`

	SeatCapacity int `gorm:"not null" json:"seat_capacity"` // >= 1, enforced at the handler
	Mileage      int `gorm:"not null;default:0" json:"mileage"`

	Status  VehicleStatus `gorm:"not null;default:0" json:"status"`
	OwnerID string        `gorm:"size:20" json:"owner_id"`

	// Soft delete flag. Reads go through the repository, which filters
	// deleted rows explicitly; this is not a gorm.DeletedAt column.
	IsDeleted bool `gorm:"not null;default:false" json:"is_deleted"`
}

// TableName keeps the table name the fleet database already uses.
func (Vehicle) TableName() string {
	return "vehicle_info"
}
