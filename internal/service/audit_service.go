package service

import (
	"context"

	"hospital-management-api/internal/domain/entity"
	"hospital-management-api/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

type AuditService interface {
	// Record writes an audit row for account. Failures are logged and returned;
	// callers treat auditing as best-effort.
	Record(ctx context.Context, account entity.Account, action string, metadata entity.JSON) error
}

type auditService struct {
	log       *logrus.Logger
	auditRepo repository.AuditLogRepository
}

func NewAuditService(log *logrus.Logger, auditRepo repository.AuditLogRepository) AuditService {
	return &auditService{
		log:       log,
		auditRepo: auditRepo,
	}
}

func (s *auditService) Record(ctx context.Context, account entity.Account, action string, metadata entity.JSON) error {
	accountID := account.AccountID()
	auditLog := &entity.AuditLog{
		AccountID: &accountID,
		Role:      account.AccountRole(),
		Action:    action,
		Metadata:  metadata,
	}

	if err := s.auditRepo.Create(ctx, auditLog); err != nil {
		s.log.Warnf("Failed to create audit log: %+v", err)
		return err
	}

	return nil
}
