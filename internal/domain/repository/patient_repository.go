package repository

import (
	"context"

	"hospital-management-api/internal/domain/entity"

	"github.com/google/uuid"
)

// PatientRepository stores patient accounts. Emails are passed already
// normalised. Lookups return (nil, nil) when nothing matches.
type PatientRepository interface {
	Create(ctx context.Context, patient *entity.Patient) error
	// FindByEmail returns the public projection, without the password digest.
	FindByEmail(ctx context.Context, email string) (*entity.Patient, error)
	// FindCredentialsByEmail also loads the password digest.
	FindCredentialsByEmail(ctx context.Context, email string) (*entity.Patient, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Patient, error)
	Update(ctx context.Context, id uuid.UUID, patch entity.PatientPatch) (*entity.Patient, error)
}
