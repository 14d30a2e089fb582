package models

import (
	"time"

	"github.com/google/uuid"
)

// Farmer is the account created for a registered farmer. Username, email and
// the normalized phone number are each globally unique.
type Farmer struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	// Phone is the normalized 10-digit number, or "" when none was supplied.
	Phone      string    `json:"phone_number,omitempty"`
	Address    string    `json:"address,omitempty"`
	Village    string    `json:"village,omitempty"`
	District   string    `json:"district,omitempty"`
	State      string    `json:"state,omitempty"`
	Taluka     string    `json:"taluka,omitempty"`
	RoleID     int64     `json:"role_id"`
	IndustryID *int64    `json:"industry_id,omitempty"`
	CreatedBy  uuid.UUID `json:"created_by"`
	CreatedAt  time.Time `json:"created_at"`
}

// Role is a named system role. The "farmer" role must exist before
// registration can run.
type Role struct {
	ID          int64
	Name        string
	DisplayName string
}

// Operator is the registering actor (a field operator). Industry assignment
// is a precondition for creating farmers.
type Operator struct {
	ID           uuid.UUID
	Username     string
	Email        string
	Role         string
	IndustryID   *int64
	IndustryName string
}

// HasIndustry reports whether the operator can scope reference entities.
func (o *Operator) HasIndustry() bool {
	return o != nil && o.IndustryID != nil
}
