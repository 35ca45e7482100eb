package usecase

import (
	"context"

	"hospital-management-api/internal/converter"
	"hospital-management-api/internal/delivery/dto"
	"hospital-management-api/internal/domain/entity"
	"hospital-management-api/internal/domain/repository"
	"hospital-management-api/pkg/apperror"

	"github.com/google/uuid"
)

// accountKind adapts one account variant to the shared login and
// authentication flows.
type accountKind struct {
	role            entity.Role
	auditAction     string
	findCredentials func(ctx context.Context, email string) (entity.Account, error)
	findByID        func(ctx context.Context, id uuid.UUID) (entity.Account, error)
	// beforeVerify runs on the stored account before the password is checked.
	beforeVerify func(entity.Account) error
	// afterVerify runs once the password matched.
	afterVerify func(entity.Account) error
	profile     func(entity.Account) interface{}
	// newProfile returns an empty projection for cached profiles to decode into.
	newProfile func() interface{}
}

func patientKind(repo repository.PatientRepository) *accountKind {
	return &accountKind{
		role:        entity.RolePatient,
		auditAction: entity.AuditActionAccountLogin,
		findCredentials: func(ctx context.Context, email string) (entity.Account, error) {
			p, err := repo.FindCredentialsByEmail(ctx, email)
			if err != nil || p == nil {
				return nil, err
			}
			return p, nil
		},
		findByID: func(ctx context.Context, id uuid.UUID) (entity.Account, error) {
			p, err := repo.FindByID(ctx, id)
			if err != nil || p == nil {
				return nil, err
			}
			return p, nil
		},
		beforeVerify: requireActive,
		profile: func(a entity.Account) interface{} {
			return converter.PatientToResponse(a.(*entity.Patient))
		},
		newProfile: func() interface{} { return &dto.PatientResponse{} },
	}
}

func doctorKind(repo repository.DoctorRepository) *accountKind {
	return &accountKind{
		role:        entity.RoleDoctor,
		auditAction: entity.AuditActionDoctorLogin,
		findCredentials: func(ctx context.Context, email string) (entity.Account, error) {
			d, err := repo.FindCredentialsByEmail(ctx, email)
			if err != nil || d == nil {
				return nil, err
			}
			return d, nil
		},
		findByID: func(ctx context.Context, id uuid.UUID) (entity.Account, error) {
			d, err := repo.FindByID(ctx, id)
			if err != nil || d == nil {
				return nil, err
			}
			return d, nil
		},
		afterVerify: requireApproved,
		profile: func(a entity.Account) interface{} {
			return converter.DoctorToResponse(a.(*entity.Doctor))
		},
		newProfile: func() interface{} { return &dto.DoctorResponse{} },
	}
}

func requireActive(a entity.Account) error {
	if !a.Active() {
		return apperror.ErrAccountDeactivated
	}
	return nil
}

func requireApproved(a entity.Account) error {
	if d, ok := a.(*entity.Doctor); ok && !d.Approved() {
		return apperror.ErrPendingApproval
	}
	return nil
}
