package mongodb

import (
	"context"
	"time"

	"hospital-management-api/internal/domain/entity"
	domainRepo "hospital-management-api/internal/domain/repository"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
)

type auditLogRepository struct {
	collection *mongo.Collection
	timeout    time.Duration
}

func NewAuditLogRepository(db *mongo.Database, timeout time.Duration) domainRepo.AuditLogRepository {
	return &auditLogRepository{collection: db.Collection(AuditLogCollection), timeout: timeout}
}

func (r *auditLogRepository) Create(ctx context.Context, log *entity.AuditLog) error {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	if log.ID == uuid.Nil {
		log.ID = uuid.New()
	}
	if log.CreatedAt.IsZero() {
		log.CreatedAt = time.Now().UTC()
	}
	_, err := r.collection.InsertOne(ctx, log)
	return err
}
