package repository

import (
	"context"
	"time"

	"github.com/Zafar-Sheik/roadworks-service/internal/domain/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// PotholeRepositoryInterface defines the interface for pothole sheet repository operations.
type PotholeRepositoryInterface interface {
	Create(ctx context.Context, p *model.Pothole) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.Pothole, error)
	List(ctx context.Context, filter bson.M, opts ListOptions) ([]*model.Pothole, error)
	Replace(ctx context.Context, p *model.Pothole) (bool, error)
	Delete(ctx context.Context, id primitive.ObjectID) (bool, error)
	DeleteByJob(ctx context.Context, jobID primitive.ObjectID) (int64, error)
}

// PotholeRepository implements PotholeRepositoryInterface using MongoDB.
// It stores whatever derived values it is given; callers compute them first.
type PotholeRepository struct {
	collection *mongo.Collection
}

// NewPotholeRepository creates a new pothole repository.
func NewPotholeRepository(db *mongo.Database) *PotholeRepository {
	return &PotholeRepository{collection: db.Collection(CollectionPotholes)}
}

// Create inserts a new pothole sheet.
func (r *PotholeRepository) Create(ctx context.Context, p *model.Pothole) error {
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	if p.ID.IsZero() {
		p.ID = primitive.NewObjectID()
	}

	_, err := r.collection.InsertOne(ctx, p)
	return err
}

// FindByID finds a pothole sheet by ID.
func (r *PotholeRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Pothole, error) {
	return findOne[model.Pothole](ctx, r.collection, bson.M{"_id": id})
}

// List returns pothole sheets matching filter, newest first.
func (r *PotholeRepository) List(ctx context.Context, filter bson.M, opts ListOptions) ([]*model.Pothole, error) {
	return findAll[model.Pothole](ctx, r.collection, filter, opts.findOptions("createdAt"))
}

// Replace writes the measurement, derived values and weather of p.
// It reports whether the sheet existed.
func (r *PotholeRepository) Replace(ctx context.Context, p *model.Pothole) (bool, error) {
	p.UpdatedAt = time.Now().UTC()
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": p.ID}, bson.M{"$set": bson.M{
		"dimensions":    p.Dimensions,
		"numberOfBags":  p.NumberOfBags,
		"area":          p.Area,
		"volume":        p.Volume,
		"materialsInKg": p.MaterialsInKg,
		"weather":       p.Weather,
		"updatedAt":     p.UpdatedAt,
	}})
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

// Delete removes a pothole sheet. It reports whether the sheet existed.
func (r *PotholeRepository) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

// DeleteByJob removes every sheet attached to a job.
func (r *PotholeRepository) DeleteByJob(ctx context.Context, jobID primitive.ObjectID) (int64, error) {
	res, err := r.collection.DeleteMany(ctx, bson.M{"job": jobID})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
