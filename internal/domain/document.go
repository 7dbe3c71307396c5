package domain

import (
	"errors"
	"strings"
)

// IDField is the key under which a stored document exposes its generated id.
const IDField = "_id"

var (
	// ErrInvalidID is returned by stores when an id does not have the store's id format.
	ErrInvalidID = errors.New("invalid id")
	// ErrDuplicateApplication is returned when the store rejects a second (email, jobId) application.
	ErrDuplicateApplication = errors.New("duplicate application")
	// ErrEmailTaken is returned when a user update would collide with another user's email.
	ErrEmailTaken = errors.New("email already in use")
)

// Document is an open, schemaless record as exchanged with clients and stores.
type Document map[string]any

// Lookup resolves a dotted path ("jobOwner.email") through nested objects.
func (d Document) Lookup(path string) (any, bool) {
	var cur any = map[string]any(d)
	for _, key := range strings.Split(path, ".") {
		var m map[string]any
		switch v := cur.(type) {
		case Document:
			m = v
		case map[string]any:
			m = v
		default:
			return nil, false
		}
		next, ok := m[key]
		if !ok {
			return nil, false
		}
		cur = next
	}
	return cur, true
}

// String returns the string at path or "" when absent or not a string.
func (d Document) String(path string) string {
	v, _ := d.Lookup(path)
	s, _ := v.(string)
	return s
}

// ID returns the generated id, if any.
func (d Document) ID() string {
	return d.String(IDField)
}

// Without returns a shallow copy of d minus the given top-level keys.
func (d Document) Without(keys ...string) Document {
	out := make(Document, len(d))
	for k, v := range d {
		out[k] = v
	}
	for _, k := range keys {
		delete(out, k)
	}
	return out
}

// InsertResult acknowledges a single insert.
type InsertResult struct {
	Acknowledged bool   `json:"acknowledged"`
	InsertedID   string `json:"insertedId"`
}

// UpdateResult acknowledges a single update or upsert.
type UpdateResult struct {
	Acknowledged  bool    `json:"acknowledged"`
	MatchedCount  int64   `json:"matchedCount"`
	ModifiedCount int64   `json:"modifiedCount"`
	UpsertedCount int64   `json:"upsertedCount"`
	UpsertedID    *string `json:"upsertedId"`
}

// DeleteResult acknowledges a single delete.
type DeleteResult struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}
