package repository

import (
	"errors"
	"fmt"
	"testing"

	domainRepo "hospital-management-api/internal/domain/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestTranslateError(t *testing.T) {
	unique := &pgconn.PgError{Code: "23505", ConstraintName: "idx_patients_email"}
	require.ErrorIs(t, translateError(fmt.Errorf("insert: %w", unique)), domainRepo.ErrDuplicateKey)
	require.ErrorIs(t, translateError(gorm.ErrDuplicatedKey), domainRepo.ErrDuplicateKey)

	otherConstraint := &pgconn.PgError{Code: "23505", ConstraintName: "patients_pkey"}
	require.NotErrorIs(t, translateError(otherConstraint), domainRepo.ErrDuplicateKey)

	fkViolation := &pgconn.PgError{Code: "23503", ConstraintName: "idx_patients_email"}
	require.NotErrorIs(t, translateError(fkViolation), domainRepo.ErrDuplicateKey)

	plain := errors.New("connection reset")
	require.Equal(t, plain, translateError(plain))
	require.NoError(t, translateError(nil))
}
