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

var withoutPassword = bson.M{"password": 0}

type patientRepository struct {
	collection *mongo.Collection
	timeout    time.Duration
}

func NewPatientRepository(db *mongo.Database, timeout time.Duration) domainRepo.PatientRepository {
	return &patientRepository{collection: db.Collection(PatientCollection), timeout: timeout}
}

func (r *patientRepository) Create(ctx context.Context, patient *entity.Patient) error {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	if patient.ID == uuid.Nil {
		patient.ID = uuid.New()
	}
	now := time.Now().UTC()
	patient.CreatedAt = now
	patient.UpdatedAt = now

	_, err := r.collection.InsertOne(ctx, patient)
	return translateError(err)
}

func (r *patientRepository) FindByEmail(ctx context.Context, email string) (*entity.Patient, error) {
	return r.find(ctx, bson.M{"email": email}, withoutPassword)
}

func (r *patientRepository) FindCredentialsByEmail(ctx context.Context, email string) (*entity.Patient, error) {
	return r.find(ctx, bson.M{"email": email}, nil)
}

func (r *patientRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Patient, error) {
	return r.find(ctx, bson.M{"_id": id}, withoutPassword)
}

func (r *patientRepository) Update(ctx context.Context, id uuid.UUID, patch entity.PatientPatch) (*entity.Patient, error) {
	set := bson.M{}
	if patch.LastLogin != nil {
		set["lastLogin"] = *patch.LastLogin
	}
	if patch.IsActive != nil {
		set["isActive"] = *patch.IsActive
	}
	if patch.IsEmailVerified != nil {
		set["isEmailVerified"] = *patch.IsEmailVerified
	}

	if len(set) > 0 {
		set["updatedAt"] = time.Now().UTC()
		ctx, cancel := withTimeout(ctx, r.timeout)
		_, err := r.collection.UpdateByID(ctx, id, bson.M{"$set": set})
		cancel()
		if err != nil {
			return nil, err
		}
	}
	return r.FindByID(ctx, id)
}

func (r *patientRepository) find(ctx context.Context, filter, projection bson.M) (*entity.Patient, error) {
	var patient entity.Patient
	found, err := findOne(ctx, r.collection, r.timeout, filter, projection, &patient)
	if err != nil || !found {
		return nil, err
	}
	return &patient, nil
}
