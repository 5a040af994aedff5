// Package repository is the only gateway to persisted vehicle rows. Every
// read method applies the soft-delete filter before anything else, so no
// caller can observe a deleted row through a read path.
package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/zzzhht1/VehicleSystem/models"
)

// Pagination bounds checked before any query runs.
const (
	MinPageSize = 1
	MaxPageSize = 100
)

// Sentinel errors for arguments rejected before touching storage.
var (
	ErrInvalidPageNumber = errors.New("page number must be >= 1")
	ErrInvalidPageSize   = fmt.Errorf("page size must be between %d and %d", MinPageSize, MaxPageSize)
	ErrInvalidCondition  = errors.New("invalid filter condition")
)

// SoftDeleteResult is the four-way outcome of a soft delete. Handlers
// project it to whatever their response contract needs.
type SoftDeleteResult int

const (
	DeleteSuccess SoftDeleteResult = iota
	DeleteNotFound
	DeleteAlreadyDeleted
	DeleteError
)

// Filter narrows the paged listing. An empty SearchTerm matches everything;
// otherwise the term must appear as a substring in one of the text columns
// (plate number, brand, type, color, fuel type).
type Filter struct {
	SearchTerm string
}

// FieldCondition is one conjunct of a Find query: a whitelisted field, a
// whitelisted operator, and a value. Conditions are ANDed together.
type FieldCondition struct {
	Field string
	Op    string
	Value interface{}
}

// findColumns whitelists the fields Find may touch. Keys are the exported
// entity field names; values are the column names.
var findColumns = map[string]string{
	"PlateNumber":  "plate_number",
	"Type":         "type",
	"Brand":        "brand",
	"Color":        "color",
	"FuelType":     "fuel_type",
	"SeatCapacity": "seat_capacity",
	"Mileage":      "mileage",
	"Status":       "status",
	"OwnerID":      "owner_id",
}

type VehicleRepository struct {
	db *gorm.DB
}

func NewVehicleRepository(db *gorm.DB) *VehicleRepository {
	return &VehicleRepository{db: db}
}

// notDeleted is the soft-delete visibility rule. Applied explicitly by
// every read method; Delete reads unscoped on purpose so it can tell
// "already deleted" apart from "not found".
func notDeleted(db *gorm.DB) *gorm.DB {
	return db.Where("is_deleted = ?", false)
}

// GetByID returns the row only if it exists and is not soft-deleted.
// Absent and deleted rows both come back as gorm.ErrRecordNotFound.
func (r *VehicleRepository) GetByID(ctx context.Context, id uint) (*models.Vehicle, error) {
	var v models.Vehicle
	err := r.db.WithContext(ctx).
		Scopes(notDeleted).
		Where("id = ?", id).
		First(&v).Error
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// GetAll returns every non-deleted row, or, with a search term, the rows
// whose plate number contains the term. Case sensitivity follows the
// database collation, as it always has.
func (r *VehicleRepository) GetAll(ctx context.Context, searchTerm string) ([]models.Vehicle, error) {
	q := r.db.WithContext(ctx).Scopes(notDeleted)
	if searchTerm != "" {
		q = q.Where("plate_number LIKE ?", "%"+searchTerm+"%")
	}
	var vehicles []models.Vehicle
	if err := q.Order("id asc").Find(&vehicles).Error; err != nil {
		return nil, err
	}
	return vehicles, nil
}

// Find applies the soft-delete filter first, then the caller's conditions
// conjunctively. Unknown fields or operators are rejected before querying.
func (r *VehicleRepository) Find(ctx context.Context, conds []FieldCondition) ([]models.Vehicle, error) {
	q := r.db.WithContext(ctx).Scopes(notDeleted)
	for _, c := range conds {
		column, ok := findColumns[c.Field]
		if !ok {
			return nil, fmt.Errorf("%w: unknown field %q", ErrInvalidCondition, c.Field)
		}
		switch c.Op {
		case "eq":
			q = q.Where(column+" = ?", c.Value)
		case "ne":
			q = q.Where(column+" <> ?", c.Value)
		case "contains":
			q = q.Where(column+" LIKE ?", fmt.Sprintf("%%%v%%", c.Value))
		case "gte":
			q = q.Where(column+" >= ?", c.Value)
		case "lte":
			q = q.Where(column+" <= ?", c.Value)
		default:
			return nil, fmt.Errorf("%w: unknown operator %q", ErrInvalidCondition, c.Op)
		}
	}
	var vehicles []models.Vehicle
	if err := q.Order("id asc").Find(&vehicles).Error; err != nil {
		return nil, err
	}
	return vehicles, nil
}

// Add inserts one row and commits immediately.
func (r *VehicleRepository) Add(ctx context.Context, v *models.Vehicle) error {
	return r.db.WithContext(ctx).Create(v).Error
}

// Update rewrites the full row by primary key. The caller must supply a
// fully-populated entity; there is no partial patch.
func (r *VehicleRepository) Update(ctx context.Context, v *models.Vehicle) error {
	return r.db.WithContext(ctx).Save(v).Error
}

// Delete soft-deletes: it loads the row with the visibility filter off,
// and flips the flag only if it is not already set. Deleting a deleted
// row is a no-op reported as DeleteAlreadyDeleted; the stored row does
// not change.
func (r *VehicleRepository) Delete(ctx context.Context, id uint) (SoftDeleteResult, error) {
	var v models.Vehicle
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&v).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return DeleteNotFound, nil
	}
	if err != nil {
		return DeleteError, err
	}
	if v.IsDeleted {
		return DeleteAlreadyDeleted, nil
	}
	v.IsDeleted = true
	if err := r.db.WithContext(ctx).Save(&v).Error; err != nil {
		return DeleteError, err
	}
	return DeleteSuccess, nil
}

// GetPagedList returns one window of the filtered, id-ordered record set
// plus the total count of all matching rows. Arguments are validated
// before any query executes.
func (r *VehicleRepository) GetPagedList(ctx context.Context, pageNumber, pageSize int, filter *Filter) ([]models.Vehicle, int64, error) {
	if pageNumber < 1 {
		return nil, 0, ErrInvalidPageNumber
	}
	if pageSize < MinPageSize || pageSize > MaxPageSize {
		return nil, 0, ErrInvalidPageSize
	}

	q := r.db.WithContext(ctx).Model(&models.Vehicle{}).Scopes(notDeleted)
	if filter != nil && filter.SearchTerm != "" {
		term := "%" + filter.SearchTerm + "%"
		q = q.Where(
			"plate_number LIKE ? OR brand LIKE ? OR type LIKE ? OR color LIKE ? OR fuel_type LIKE ?",
			term, term, term, term, term,
		)
	}

	// Count reflects the filtered set, not the window.
	var totalCount int64
	if err := q.Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}

	// Stable order is required for the window to mean anything.
	var items []models.Vehicle
	err := q.Order("id asc").
		Offset((pageNumber - 1) * pageSize).
		Limit(pageSize).
		Find(&items).Error
	if err != nil {
		return nil, 0, err
	}
	return items, totalCount, nil
}
