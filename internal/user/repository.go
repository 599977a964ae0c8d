package user

import (
	"context"

	"talenthub-api/internal/models"
	"talenthub-api/pkg/mongo"

	"go.mongodb.org/mongo-driver/bson"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
)

// NewRepository creates a new user repository backed by the users collection
func NewRepository(database *mongodriver.Database) Repository {
	return &repo{
		userRepo: mongo.NewRepositoryWithDB[models.User](database, models.User{}.CollectionName()),
	}
}

// repo is the concrete implementation of Repository
type repo struct {
	userRepo mongo.Repository[models.User]
}

// SaveUser inserts a new user. The unique email index is the authoritative
// duplicate signal: a concurrent insert that slips past the existence check
// still surfaces here as ErrEmailAlreadyExists.
func (r *repo) SaveUser(ctx context.Context, user *models.User) error {
	err := r.userRepo.Create(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKey(err) {
			return ErrEmailAlreadyExists
		}
		return err
	}
	return nil
}

// FindUserByID finds a user by ID
func (r *repo) FindUserByID(ctx context.Context, id string) (*models.User, error) {
	user, err := r.userRepo.FindByID(ctx, id)
	if err != nil {
		if mongo.IsNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// FindUserByEmail finds a user by email
func (r *repo) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	user, err := r.userRepo.FindOneWhere(ctx, bson.M{"email": email})
	if err != nil {
		if mongo.IsNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// UpdateUser replaces the stored record for the user's id
func (r *repo) UpdateUser(ctx context.Context, user *models.User) error {
	err := r.userRepo.Replace(ctx, user.ID, user)
	if err != nil {
		if mongo.IsDuplicateKey(err) {
			return ErrEmailAlreadyExists
		}
		if mongo.IsNotFound(err) {
			return ErrUserNotFound
		}
		return err
	}
	return nil
}
