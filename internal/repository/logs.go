package repository

import (
	"context"
	"time"

	"github.com/Zafar-Sheik/roadworks-service/internal/domain/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// LogsRepositoryInterface defines the interface for audit log storage.
type LogsRepositoryInterface interface {
	Create(ctx context.Context, entry *model.LogEntry) error
	CreateMany(ctx context.Context, entries []*model.LogEntry) error
	List(ctx context.Context, filter bson.M, opts ListOptions) ([]*model.LogEntry, error)
}

// LogsRepository stores audit log entries.
type LogsRepository struct {
	collection *mongo.Collection
}

// NewLogsRepository creates a new logs repository.
func NewLogsRepository(db *mongo.Database) *LogsRepository {
	return &LogsRepository{collection: db.Collection(CollectionLogs)}
}

func prepareEntry(entry *model.LogEntry) {
	if entry.ID.IsZero() {
		entry.ID = primitive.NewObjectID()
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now().UTC()
	}
}

// Create inserts a single log entry.
func (r *LogsRepository) Create(ctx context.Context, entry *model.LogEntry) error {
	prepareEntry(entry)
	_, err := r.collection.InsertOne(ctx, entry)
	return err
}

// CreateMany inserts log entries in bulk.
func (r *LogsRepository) CreateMany(ctx context.Context, entries []*model.LogEntry) error {
	if len(entries) == 0 {
		return nil
	}

	docs := make([]interface{}, len(entries))
	for i, entry := range entries {
		prepareEntry(entry)
		docs[i] = entry
	}

	_, err := r.collection.InsertMany(ctx, docs)
	return err
}

// List returns log entries matching filter, newest first.
func (r *LogsRepository) List(ctx context.Context, filter bson.M, opts ListOptions) ([]*model.LogEntry, error) {
	return findAll[model.LogEntry](ctx, r.collection, filter, opts.findOptions("timestamp"))
}
