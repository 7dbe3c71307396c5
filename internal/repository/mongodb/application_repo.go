package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go-jobboard-backend/internal/domain"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type applicationRepo struct {
	store *Store
}

// NewApplicationRepository creates a new applied job repository
func NewApplicationRepository(store *Store) domain.ApplicationRepository {
	return &applicationRepo{store: store}
}

func (r *applicationRepo) Exists(ctx context.Context, email, jobID string) (bool, error) {
	err := r.store.applied.FindOne(ctx,
		bson.M{"email": email, "jobId": jobID},
		options.FindOne().SetProjection(bson.M{"_id": 1}),
	).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Submit runs insert + $inc in one multi-document transaction (requires a replica set, as on Atlas).
func (r *applicationRepo) Submit(ctx context.Context, doc domain.Document) (*domain.InsertResult, error) {
	jobOID, err := parseID(doc.String(domain.ApplicationJobIDField))
	if err != nil {
		return nil, err
	}

	session, err := r.store.client.StartSession()
	if err != nil {
		return nil, err
	}
	defer session.EndSession(ctx)

	out, err := session.WithTransaction(ctx, func(txCtx context.Context) (any, error) {
		res, err := r.store.applied.InsertOne(txCtx, toBSON(doc))
		if err != nil {
			return nil, err
		}
		_, err = r.store.jobs.UpdateOne(txCtx,
			bson.M{"_id": jobOID},
			bson.M{"$inc": bson.M{"applicants": 1}},
		)
		if err != nil {
			return nil, fmt.Errorf("increment applicants: %w", err)
		}
		return insertResult(res), nil
	})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrDuplicateApplication
		}
		return nil, err
	}
	return out.(*domain.InsertResult), nil
}

func (r *applicationRepo) FindByApplicant(ctx context.Context, email, category string) ([]domain.Document, error) {
	filter := bson.M{"email": email}
	if category != "" {
		filter["category"] = category
	}
	return findAll(ctx, r.store.applied, filter)
}

func (r *applicationRepo) FindAll(ctx context.Context) ([]domain.Document, error) {
	return findAll(ctx, r.store.applied, bson.D{})
}
