package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go-jobboard-backend/internal/domain"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

const (
	jobsCollection        = "alljobs"
	appliedJobsCollection = "appliedJobs"
	usersCollection       = "users"
)

// Store owns the collections of one database. It is built once in main and shared by the repositories.
type Store struct {
	client  *mongo.Client
	jobs    *mongo.Collection
	applied *mongo.Collection
	users   *mongo.Collection
}

func NewStore(client *mongo.Client, database string) *Store {
	db := client.Database(database)
	return &Store{
		client:  client,
		jobs:    db.Collection(jobsCollection),
		applied: db.Collection(appliedJobsCollection),
		users:   db.Collection(usersCollection),
	}
}

// EnsureIndexes creates the uniqueness guarantees the service relies on.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	_, err := s.applied.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}, {Key: "jobId", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("email_jobId_unique"),
	})
	if err != nil {
		return fmt.Errorf("ensure applied jobs index: %w", err)
	}

	_, err = s.users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("email_unique"),
	})
	if err != nil {
		return fmt.Errorf("ensure users index: %w", err)
	}

	_, err = s.jobs.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "jobOwner.email", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("ensure jobs index: %w", err)
	}
	return nil
}

func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

func parseID(id string) (bson.ObjectID, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return bson.ObjectID{}, domain.ErrInvalidID
	}
	return oid, nil
}

// toBSON copies doc for writing, without the id key.
func toBSON(doc domain.Document) bson.M {
	out := bson.M{}
	for k, v := range doc {
		if k == domain.IDField {
			continue
		}
		out[k] = v
	}
	return out
}

// fromBSON normalizes a decoded document: ObjectIDs become hex strings and nested
// bson.M/bson.A become plain maps and slices.
func fromBSON(m bson.M) domain.Document {
	doc := domain.Document{}
	for k, v := range m {
		doc[k] = normalize(v)
	}
	return doc
}

func normalize(v any) any {
	switch t := v.(type) {
	case bson.ObjectID:
		return t.Hex()
	case bson.M:
		out := make(map[string]any, len(t))
		for k, inner := range t {
			out[k] = normalize(inner)
		}
		return out
	case bson.D:
		out := make(map[string]any, len(t))
		for _, e := range t {
			out[e.Key] = normalize(e.Value)
		}
		return out
	case bson.A:
		out := make([]any, len(t))
		for i, inner := range t {
			out[i] = normalize(inner)
		}
		return out
	default:
		return v
	}
}

func findAll(ctx context.Context, coll *mongo.Collection, filter any, opts ...options.Lister[options.FindOptions]) ([]domain.Document, error) {
	cursor, err := coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	docs := []domain.Document{}
	for cursor.Next(ctx) {
		var m bson.M
		if err := cursor.Decode(&m); err != nil {
			return nil, err
		}
		docs = append(docs, fromBSON(m))
	}
	return docs, cursor.Err()
}

func findOne(ctx context.Context, coll *mongo.Collection, filter any) (domain.Document, error) {
	var m bson.M
	err := coll.FindOne(ctx, filter).Decode(&m)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return fromBSON(m), nil
}

func insertResult(res *mongo.InsertOneResult) *domain.InsertResult {
	out := &domain.InsertResult{Acknowledged: res.Acknowledged}
	if oid, ok := res.InsertedID.(bson.ObjectID); ok {
		out.InsertedID = oid.Hex()
	}
	return out
}

func updateResult(res *mongo.UpdateResult) *domain.UpdateResult {
	out := &domain.UpdateResult{
		Acknowledged:  res.Acknowledged,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
		UpsertedCount: res.UpsertedCount,
	}
	if res.UpsertedID != nil {
		var id string
		switch t := res.UpsertedID.(type) {
		case bson.ObjectID:
			id = t.Hex()
		default:
			id = fmt.Sprint(t)
		}
		out.UpsertedID = &id
	}
	return out
}
