package entity

import "github.com/google/uuid"

// Identity is the authenticated caller attached to a request.
type Identity struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Role  Role      `json:"role"`
}
