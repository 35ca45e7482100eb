package mongodb

import (
	"context"
	"time"

	"hospital-management-api/internal/domain/entity"
	domainRepo "hospital-management-api/internal/domain/repository"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type doctorRepository struct {
	collection *mongo.Collection
	timeout    time.Duration
}

func NewDoctorRepository(db *mongo.Database, timeout time.Duration) domainRepo.DoctorRepository {
	return &doctorRepository{collection: db.Collection(DoctorCollection), timeout: timeout}
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
	now := time.Now().UTC()
	doctor.CreatedAt = now
	doctor.UpdatedAt = now

	_, err := r.collection.InsertOne(ctx, doctor)
	return translateError(err)
}

func (r *doctorRepository) FindCredentialsByEmail(ctx context.Context, email string) (*entity.Doctor, error) {
	return r.find(ctx, bson.M{"email": email}, nil)
}

func (r *doctorRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Doctor, error) {
	return r.find(ctx, bson.M{"_id": id}, bson.M{"passwordHash": 0})
}

func (r *doctorRepository) find(ctx context.Context, filter, projection bson.M) (*entity.Doctor, error) {
	var doctor entity.Doctor
	found, err := findOne(ctx, r.collection, r.timeout, filter, projection, &doctor)
	if err != nil || !found {
		return nil, err
	}
	return &doctor, nil
}
