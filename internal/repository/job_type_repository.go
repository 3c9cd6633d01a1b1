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

// JobTypeRepositoryInterface defines the interface for job type and job sheet storage.
type JobTypeRepositoryInterface interface {
	Create(ctx context.Context, jt *model.JobType) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.JobType, error)
	List(ctx context.Context) ([]*model.JobType, error)
	CreateSheet(ctx context.Context, sheet *model.JobSheet) error
	ListSheets(ctx context.Context, filter bson.M, opts ListOptions) ([]*model.JobSheet, error)
}

// JobTypeRepository implements JobTypeRepositoryInterface using MongoDB.
type JobTypeRepository struct {
	types  *mongo.Collection
	sheets *mongo.Collection
}

// NewJobTypeRepository creates a new job type repository.
func NewJobTypeRepository(db *mongo.Database) *JobTypeRepository {
	return &JobTypeRepository{
		types:  db.Collection(CollectionJobTypes),
		sheets: db.Collection(CollectionJobSheets),
	}
}

// Create inserts a job type. Names are unique.
func (r *JobTypeRepository) Create(ctx context.Context, jt *model.JobType) error {
	now := time.Now().UTC()
	jt.CreatedAt = now
	jt.UpdatedAt = now
	if jt.ID.IsZero() {
		jt.ID = primitive.NewObjectID()
	}

	_, err := r.types.InsertOne(ctx, jt)
	return err
}

// FindByID finds a job type by ID.
func (r *JobTypeRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*model.JobType, error) {
	return findOne[model.JobType](ctx, r.types, bson.M{"_id": id})
}

// List returns all job types ordered by name.
func (r *JobTypeRepository) List(ctx context.Context) ([]*model.JobType, error) {
	return findAll[model.JobType](ctx, r.types, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
}

// CreateSheet inserts a job sheet.
func (r *JobTypeRepository) CreateSheet(ctx context.Context, sheet *model.JobSheet) error {
	now := time.Now().UTC()
	sheet.CreatedAt = now
	sheet.UpdatedAt = now
	if sheet.ID.IsZero() {
		sheet.ID = primitive.NewObjectID()
	}

	_, err := r.sheets.InsertOne(ctx, sheet)
	return err
}

// ListSheets returns job sheets matching filter, newest first.
func (r *JobTypeRepository) ListSheets(ctx context.Context, filter bson.M, opts ListOptions) ([]*model.JobSheet, error) {
	return findAll[model.JobSheet](ctx, r.sheets, filter, opts.findOptions("createdAt"))
}
