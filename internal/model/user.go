package model

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered user record. Records are written once on
// first login and never mutated or deleted by this service.
type User struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Email     string    `json:"email" db:"email"`
	Name      string    `json:"name" db:"name"`
	Role      string    `json:"role" db:"role"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// UserRequest represents the request payload for storing a user record.
type UserRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}
