// Package mongodb implements the credential store on MongoDB collections.
package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	domainRepo "hospital-management-api/internal/domain/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	PatientCollection  = "patients"
	DoctorCollection   = "doctors"
	AuditLogCollection = "audit_logs"
)

// EnsureIndexes creates the unique email indexes the stores rely on.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	for _, name := range []string{PatientCollection, DoctorCollection} {
		_, err := db.Collection(name).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("email_unique"),
		})
		if err != nil {
			return fmt.Errorf("create %s email index: %w", name, err)
		}
	}
	return nil
}

func translateError(err error) error {
	if mongo.IsDuplicateKeyError(err) {
		return domainRepo.ErrDuplicateKey
	}
	return err
}

func findOne(ctx context.Context, coll *mongo.Collection, timeout time.Duration, filter bson.M, projection bson.M, out interface{}) (bool, error) {
	ctx, cancel := withTimeout(ctx, timeout)
	defer cancel()

	opts := options.FindOne()
	if projection != nil {
		opts.SetProjection(projection)
	}
	err := coll.FindOne(ctx, filter, opts).Decode(out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}
