package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	// ErrNoDocument is returned by FindOne when nothing matches the filter.
	ErrNoDocument = errors.New("store: no document in result")
	// ErrDuplicateKey is returned by InsertOne when a unique index rejects the document.
	ErrDuplicateKey = errors.New("store: duplicate key")
)

// Collection is the slice of the document-store surface this service uses.
// Handlers depend on this interface so tests can swap in in-memory fakes.
type Collection interface {
	Find(ctx context.Context, filter bson.M) ([]bson.M, error)
	FindOne(ctx context.Context, filter bson.M) (bson.M, error)
	InsertOne(ctx context.Context, doc any) (primitive.ObjectID, error)
}

// Store groups the named collections the API operates on.
type Store struct {
	Products Collection
	Users    Collection
	Carts    Collection
}
