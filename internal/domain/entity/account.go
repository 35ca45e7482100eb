package entity

import "github.com/google/uuid"

// Account is implemented by every kind that can log in.
type Account interface {
	AccountID() uuid.UUID
	AccountEmail() string
	AccountRole() Role
	PasswordDigest() string
	// Active reports whether the account may authenticate at all.
	Active() bool
}

var (
	_ Account = (*Patient)(nil)
	_ Account = (*Doctor)(nil)
)
