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

// JobRepositoryInterface defines the interface for job repository operations.
type JobRepositoryInterface interface {
	Create(ctx context.Context, job *model.Job) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.Job, error)
	List(ctx context.Context, filter bson.M, opts ListOptions) ([]*model.Job, error)
	Update(ctx context.Context, id primitive.ObjectID, update model.JobUpdate) (*model.Job, error)
	Delete(ctx context.Context, id primitive.ObjectID) (bool, error)
}

// JobRepository implements JobRepositoryInterface using MongoDB.
type JobRepository struct {
	collection *mongo.Collection
}

// NewJobRepository creates a new job repository.
func NewJobRepository(db *mongo.Database) *JobRepository {
	return &JobRepository{collection: db.Collection(CollectionJobs)}
}

// Create inserts a new job.
func (r *JobRepository) Create(ctx context.Context, job *model.Job) error {
	now := time.Now().UTC()
	job.CreatedAt = now
	job.UpdatedAt = now
	if job.ID.IsZero() {
		job.ID = primitive.NewObjectID()
	}

	_, err := r.collection.InsertOne(ctx, job)
	return err
}

// FindByID finds a job by ID.
func (r *JobRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Job, error) {
	return findOne[model.Job](ctx, r.collection, bson.M{"_id": id})
}

// List returns jobs matching filter, newest first.
func (r *JobRepository) List(ctx context.Context, filter bson.M, opts ListOptions) ([]*model.Job, error) {
	return findAll[model.Job](ctx, r.collection, filter, opts.findOptions("createdAt"))
}

// Update applies the non-nil fields of update and returns the updated job.
func (r *JobRepository) Update(ctx context.Context, id primitive.ObjectID, update model.JobUpdate) (*model.Job, error) {
	set := bson.M{"updatedAt": time.Now().UTC()}
	if update.Name != nil {
		set["name"] = *update.Name
	}
	if update.IsActive != nil {
		set["isActive"] = *update.IsActive
	}
	if update.IsComplete != nil {
		set["isComplete"] = *update.IsComplete
	}
	if update.IsContractorSignature != nil {
		set["isContractorSignature"] = *update.IsContractorSignature
	}
	if update.IsEngineerSignature != nil {
		set["isEngineerSignature"] = *update.IsEngineerSignature
	}

	var job model.Job
	err := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&job)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &job, nil
}

// Delete removes a job. It reports whether the job existed.
func (r *JobRepository) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}
