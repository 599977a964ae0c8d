package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
)

// Repository defines a generic document repository interface
type Repository[T any] interface {
	// Basic CRUD operations
	Create(ctx context.Context, entity *T) error
	FindByID(ctx context.Context, id any) (*T, error)
	Replace(ctx context.Context, id any, entity *T) error

	// Additional helper methods
	FindOneWhere(ctx context.Context, filter bson.M) (*T, error)

	// Get the underlying collection
	Collection() *mongodriver.Collection
}

// BaseRepository implements the Repository interface over a single collection
type BaseRepository[T any] struct {
	coll *mongodriver.Collection
}

// NewRepositoryWithDB creates a repository bound to a collection of the given database
func NewRepositoryWithDB[T any](db *mongodriver.Database, collection string) *BaseRepository[T] {
	return &BaseRepository[T]{
		coll: db.Collection(collection),
	}
}

// Collection returns the underlying collection handle
func (r *BaseRepository[T]) Collection() *mongodriver.Collection {
	return r.coll
}

// Create inserts a new document. A unique index violation surfaces as a
// duplicate-key error the caller can detect with IsDuplicateKey.
func (r *BaseRepository[T]) Create(ctx context.Context, entity *T) error {
	_, err := r.coll.InsertOne(ctx, entity)
	return err
}

// FindByID finds a document by its _id
func (r *BaseRepository[T]) FindByID(ctx context.Context, id any) (*T, error) {
	var entity T
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&entity)
	if err != nil {
		return nil, err
	}
	return &entity, nil
}

// FindOneWhere finds a single document matching the filter
func (r *BaseRepository[T]) FindOneWhere(ctx context.Context, filter bson.M) (*T, error) {
	var entity T
	err := r.coll.FindOne(ctx, filter).Decode(&entity)
	if err != nil {
		return nil, err
	}
	return &entity, nil
}

// Replace overwrites the document with the given _id
func (r *BaseRepository[T]) Replace(ctx context.Context, id any, entity *T) error {
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": id}, entity)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongodriver.ErrNoDocuments
	}
	return nil
}
