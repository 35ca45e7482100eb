package repository

import (
	"context"
	"errors"
	"time"

	"hospital-management-api/internal/domain/entity"
	domainRepo "hospital-management-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type patientRepository struct {
	db      *gorm.DB
	timeout time.Duration
}

func NewPatientRepository(db *gorm.DB, timeout time.Duration) domainRepo.PatientRepository {
	return &patientRepository{db: db, timeout: timeout}
}

func (r *patientRepository) Create(ctx context.Context, patient *entity.Patient) error {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	if patient.ID == uuid.Nil {
		patient.ID = uuid.New()
	}
	return translateError(r.db.WithContext(ctx).Create(patient).Error)
}

func (r *patientRepository) FindByEmail(ctx context.Context, email string) (*entity.Patient, error) {
	return r.findOne(ctx, []string{"password"}, "email = ?", email)
}

func (r *patientRepository) FindCredentialsByEmail(ctx context.Context, email string) (*entity.Patient, error) {
	return r.findOne(ctx, nil, "email = ?", email)
}

func (r *patientRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Patient, error) {
	return r.findOne(ctx, []string{"password"}, "id = ?", id)
}

func (r *patientRepository) Update(ctx context.Context, id uuid.UUID, patch entity.PatientPatch) (*entity.Patient, error) {
	if cols := patch.Columns(); len(cols) > 0 {
		ctx, cancel := withTimeout(ctx, r.timeout)
		err := r.db.WithContext(ctx).Model(&entity.Patient{}).Where("id = ?", id).Updates(cols).Error
		cancel()
		if err != nil {
			return nil, err
		}
	}
	return r.FindByID(ctx, id)
}

func (r *patientRepository) findOne(ctx context.Context, omit []string, query string, arg interface{}) (*entity.Patient, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	var patient entity.Patient
	db := r.db.WithContext(ctx)
	if len(omit) > 0 {
		db = db.Omit(omit...)
	}
	err := db.Where(query, arg).First(&patient).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &patient, nil
}
