package repository

import (
	"context"

	"hospital-management-api/internal/domain/entity"

	"github.com/google/uuid"
)

// ProfileCache holds rendered profile projections keyed by role and account ID.
// Get decodes a hit into out and reports a miss as (false, nil). Writers of the
// underlying account must Delete the entry.
type ProfileCache interface {
	Get(ctx context.Context, role entity.Role, id uuid.UUID, out interface{}) (bool, error)
	Set(ctx context.Context, role entity.Role, id uuid.UUID, profile interface{}) error
	Delete(ctx context.Context, role entity.Role, id uuid.UUID) error
}
