package mongodb

import (
	"context"
	"regexp"

	"go-jobboard-backend/internal/domain"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type jobRepo struct {
	store *Store
}

func NewJobRepository(store *Store) domain.JobRepository {
	return &jobRepo{store: store}
}

func (r *jobRepo) Insert(ctx context.Context, doc domain.Document) (*domain.InsertResult, error) {
	res, err := r.store.jobs.InsertOne(ctx, toBSON(doc))
	if err != nil {
		return nil, err
	}
	return insertResult(res), nil
}

// jobFilter matches search literally and case-insensitively against the title.
func jobFilter(q domain.JobQuery) bson.M {
	filter := bson.M{}
	if q.Search != "" {
		filter["jobTitle"] = bson.M{"$regex": regexp.QuoteMeta(q.Search), "$options": "i"}
	}
	if q.Category != "" {
		filter["category"] = q.Category
	}
	return filter
}

func (r *jobRepo) Find(ctx context.Context, q domain.JobQuery) ([]domain.Document, error) {
	opts := options.Find().SetSkip(q.Skip)
	if q.Limit > 0 {
		opts.SetLimit(q.Limit)
	}
	return findAll(ctx, r.store.jobs, jobFilter(q), opts)
}

func (r *jobRepo) FindByOwner(ctx context.Context, email string) ([]domain.Document, error) {
	return findAll(ctx, r.store.jobs, bson.M{"jobOwner.email": email})
}

func (r *jobRepo) FindByID(ctx context.Context, id string) (domain.Document, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	return findOne(ctx, r.store.jobs, bson.M{"_id": oid})
}

func (r *jobRepo) DeleteByID(ctx context.Context, id string) (*domain.DeleteResult, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	res, err := r.store.jobs.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return nil, err
	}
	return &domain.DeleteResult{Acknowledged: res.Acknowledged, DeletedCount: res.DeletedCount}, nil
}

func (r *jobRepo) UpsertFields(ctx context.Context, id string, fields domain.Document) (*domain.UpdateResult, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	res, err := r.store.jobs.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": toBSON(fields)},
		options.UpdateOne().SetUpsert(true),
	)
	if err != nil {
		return nil, err
	}
	return updateResult(res), nil
}

func (r *jobRepo) Count(ctx context.Context) (int64, error) {
	return r.store.jobs.CountDocuments(ctx, bson.D{})
}
