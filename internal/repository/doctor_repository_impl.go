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

type doctorRepository struct {
	db      *gorm.DB
	timeout time.Duration
}

func NewDoctorRepository(db *gorm.DB, timeout time.Duration) domainRepo.DoctorRepository {
	return &doctorRepository{db: db, timeout: timeout}
}

func (r *doctorRepository) Create(ctx context.Context, doctor *entity.Doctor) error {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	if doctor.ID == uuid.Nil {
		doctor.ID = uuid.New()
	}
	if doctor.Status == "" {
		doctor.Status = entity.DoctorPending
	}
	return translateError(r.db.WithContext(ctx).Create(doctor).Error)
}

func (r *doctorRepository) FindCredentialsByEmail(ctx context.Context, email string) (*entity.Doctor, error) {
	return r.findOne(ctx, nil, "email = ?", email)
}

func (r *doctorRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Doctor, error) {
	return r.findOne(ctx, []string{"password_hash"}, "id = ?", id)
}

func (r *doctorRepository) findOne(ctx context.Context, omit []string, query string, arg interface{}) (*entity.Doctor, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	var doctor entity.Doctor
	db := r.db.WithContext(ctx)
	if len(omit) > 0 {
		db = db.Omit(omit...)
	}
	err := db.Where(query, arg).First(&doctor).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &doctor, nil
}
