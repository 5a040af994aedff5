package models

import (
	"time"
)

// User is a fleet-office operator account. Authentication only — vehicle
// ownership is the free-form OwnerID column on Vehicle, not a relation.
type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Username string `gorm:"unique;not null;size:50" json:"username"`
	Email    string `gorm:"unique;not null;size:100" json:"email"`
	Password string `gorm:"not null" json:"-"`

	FullName   string `gorm:"size:100" json:"full_name"`
	Department string `gorm:"size:100" json:"department"`

	Role string `gorm:"default:'operator';size:20" json:"role"` // operator, admin

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
