package repository

import (
	"context"
	"time"

	"github.com/Zafar-Sheik/roadworks-service/internal/domain/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// UserRepositoryInterface defines the interface for user repository operations.
// Finders return nil, nil when nothing matches.
type UserRepositoryInterface interface {
	Create(ctx context.Context, user *model.User) error
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.User, error)
	UpdateEmail(ctx context.Context, id primitive.ObjectID, email string) (*model.User, error)
	Deactivate(ctx context.Context, id primitive.ObjectID) (bool, error)
	List(ctx context.Context, filter bson.M, opts ListOptions) ([]*model.User, error)
	Count(ctx context.Context, filter bson.M) (int64, error)
}

// UserRepository implements UserRepositoryInterface using MongoDB.
type UserRepository struct {
	collection *mongo.Collection
}

// NewUserRepository creates a new user repository.
func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{collection: db.Collection(CollectionUsers)}
}

// Create inserts a new user. A duplicate email fails with a duplicate key error.
func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}

	_, err := r.collection.InsertOne(ctx, user)
	return err
}

// FindByEmail finds a user by email address, including the password hash.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	return findOne[model.User](ctx, r.collection, bson.M{"email": email})
}

// FindByID finds a user by ID.
func (r *UserRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*model.User, error) {
	return findOne[model.User](ctx, r.collection, bson.M{"_id": id})
}

// UpdateEmail changes a user's email and returns the updated user.
func (r *UserRepository) UpdateEmail(ctx context.Context, id primitive.ObjectID, email string) (*model.User, error) {
	var user model.User
	err := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"email": email, "updatedAt": time.Now().UTC()}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Deactivate soft deletes a user. It reports whether the user existed.
func (r *UserRepository) Deactivate(ctx context.Context, id primitive.ObjectID) (bool, error) {
	res, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"active": false, "updatedAt": time.Now().UTC()}},
	)
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

// List returns users newest first. The password hash is never loaded.
func (r *UserRepository) List(ctx context.Context, filter bson.M, opts ListOptions) ([]*model.User, error) {
	findOpts := opts.findOptions("createdAt").SetProjection(bson.M{"password": 0})
	return findAll[model.User](ctx, r.collection, filter, findOpts)
}

// Count returns the number of users matching filter.
func (r *UserRepository) Count(ctx context.Context, filter bson.M) (int64, error) {
	return r.collection.CountDocuments(ctx, filter)
}
