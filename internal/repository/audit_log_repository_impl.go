package repository

import (
	"context"
	"time"

	"hospital-management-api/internal/domain/entity"
	domainRepo "hospital-management-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type auditLogRepository struct {
	db      *gorm.DB
	timeout time.Duration
}

func NewAuditLogRepository(db *gorm.DB, timeout time.Duration) domainRepo.AuditLogRepository {
	return &auditLogRepository{db: db, timeout: timeout}
}

func (r *auditLogRepository) Create(ctx context.Context, log *entity.AuditLog) error {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	if log.ID == uuid.Nil {
		log.ID = uuid.New()
	}
	return r.db.WithContext(ctx).Create(log).Error
}
