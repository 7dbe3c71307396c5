package mongodb

import (
	"context"

	"go-jobboard-backend/internal/domain"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type userRepo struct {
	store *Store
}

func NewUserRepository(store *Store) domain.UserRepository {
	return &userRepo{store: store}
}

func (r *userRepo) FindByEmail(ctx context.Context, email string) (domain.Document, error) {
	return findOne(ctx, r.store.users, bson.M{"email": email})
}

func (r *userRepo) UpsertByEmail(ctx context.Context, email string, doc domain.Document) (*domain.UpdateResult, error) {
	fields := toBSON(doc)
	fields["email"] = email
	res, err := r.store.users.UpdateOne(ctx,
		bson.M{"email": email},
		bson.M{"$set": fields},
		options.UpdateOne().SetUpsert(true),
	)
	if err != nil {
		return nil, err
	}
	return updateResult(res), nil
}

func (r *userRepo) UpdateByEmail(ctx context.Context, email string, fields domain.Document) (*domain.UpdateResult, error) {
	res, err := r.store.users.UpdateOne(ctx,
		bson.M{"email": email},
		bson.M{"$set": toBSON(fields)},
	)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrEmailTaken
		}
		return nil, err
	}
	return updateResult(res), nil
}

func (r *userRepo) FindAll(ctx context.Context) ([]domain.Document, error) {
	return findAll(ctx, r.store.users, bson.D{})
}
