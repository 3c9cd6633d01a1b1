// Package repository provides the MongoDB data access layer.
package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names. They match the documents written by the original web app.
const (
	CollectionUsers     = "users"
	CollectionJobs      = "jobs"
	CollectionPotholes  = "potholes"
	CollectionJobTypes  = "jobtypes"
	CollectionJobSheets = "jobsheets"
	CollectionTokens    = "tokens"
	CollectionLogs      = "logs"
)

// MongoConfig holds MongoDB connection pool configuration.
type MongoConfig struct {
	MaxPoolSize            uint64
	MinPoolSize            uint64
	MaxConnIdleTime        time.Duration
	ConnectTimeout         time.Duration
	ServerSelectionTimeout time.Duration
	SocketTimeout          time.Duration
	EnableCompression      bool
}

// DefaultMongoConfig returns the pool settings used in production.
func DefaultMongoConfig() MongoConfig {
	return MongoConfig{
		MaxPoolSize:            50,
		MinPoolSize:            5,
		MaxConnIdleTime:        10 * time.Minute,
		ConnectTimeout:         10 * time.Second,
		ServerSelectionTimeout: 5 * time.Second,
		SocketTimeout:          30 * time.Second,
		EnableCompression:      true,
	}
}

// MongoDB provides MongoDB client and collection access.
type MongoDB struct {
	Client    *mongo.Client
	Database  *mongo.Database
	Users     *mongo.Collection
	Jobs      *mongo.Collection
	Potholes  *mongo.Collection
	JobTypes  *mongo.Collection
	JobSheets *mongo.Collection
	Tokens    *mongo.Collection
	Logs      *mongo.Collection
}

// NewMongoDB creates a new MongoDB connection with default configuration.
func NewMongoDB(uri, databaseName string) (*MongoDB, error) {
	return NewMongoDBWithConfig(uri, databaseName, DefaultMongoConfig())
}

// NewMongoDBWithConfig connects, pings and ensures indexes.
func NewMongoDBWithConfig(uri, databaseName string, cfg MongoConfig) (*MongoDB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ConnectTimeout)
	defer cancel()

	clientOptions := options.Client().
		ApplyURI(uri).
		SetMaxPoolSize(cfg.MaxPoolSize).
		SetMinPoolSize(cfg.MinPoolSize).
		SetMaxConnIdleTime(cfg.MaxConnIdleTime).
		SetConnectTimeout(cfg.ConnectTimeout).
		SetServerSelectionTimeout(cfg.ServerSelectionTimeout).
		SetSocketTimeout(cfg.SocketTimeout).
		SetRetryWrites(true).
		SetRetryReads(true)

	if cfg.EnableCompression {
		clientOptions.SetCompressors([]string{"zstd", "snappy", "zlib"})
	}

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	db := client.Database(databaseName)
	m := &MongoDB{
		Client:    client,
		Database:  db,
		Users:     db.Collection(CollectionUsers),
		Jobs:      db.Collection(CollectionJobs),
		Potholes:  db.Collection(CollectionPotholes),
		JobTypes:  db.Collection(CollectionJobTypes),
		JobSheets: db.Collection(CollectionJobSheets),
		Tokens:    db.Collection(CollectionTokens),
		Logs:      db.Collection(CollectionLogs),
	}

	if err := m.createIndexes(ctx); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}
	return m, nil
}

func (m *MongoDB) createIndexes(ctx context.Context) error {
	indexes := []struct {
		coll  *mongo.Collection
		model mongo.IndexModel
	}{
		{m.Users, mongo.IndexModel{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)}},
		{m.Users, mongo.IndexModel{Keys: bson.D{{Key: "company", Value: 1}, {Key: "role", Value: 1}}}},
		{m.Jobs, mongo.IndexModel{Keys: bson.D{{Key: "user", Value: 1}, {Key: "createdAt", Value: -1}}}},
		{m.Jobs, mongo.IndexModel{Keys: bson.D{{Key: "isComplete", Value: 1}}}},
		{m.Potholes, mongo.IndexModel{Keys: bson.D{{Key: "job", Value: 1}, {Key: "createdAt", Value: -1}}}},
		{m.JobTypes, mongo.IndexModel{Keys: bson.D{{Key: "name", Value: 1}}, Options: options.Index().SetUnique(true)}},
		{m.JobSheets, mongo.IndexModel{Keys: bson.D{{Key: "user", Value: 1}, {Key: "createdAt", Value: -1}}}},
		{m.Tokens, mongo.IndexModel{Keys: bson.D{{Key: "token", Value: 1}}, Options: options.Index().SetUnique(true)}},
		{m.Tokens, mongo.IndexModel{Keys: bson.D{{Key: "expires_at", Value: 1}}, Options: options.Index().SetExpireAfterSeconds(0)}},
		{m.Logs, mongo.IndexModel{Keys: bson.D{{Key: "request_id", Value: 1}}}},
		{m.Logs, mongo.IndexModel{Keys: bson.D{{Key: "action_type", Value: 1}, {Key: "timestamp", Value: -1}}}},
	}

	for _, idx := range indexes {
		if _, err := idx.coll.Indexes().CreateOne(ctx, idx.model); err != nil && !isIndexConflict(err) {
			return err
		}
	}
	return nil
}

// SetLogsTTL replaces the TTL index that expires old log documents.
func (m *MongoDB) SetLogsTTL(ctx context.Context, ttl time.Duration) error {
	_, _ = m.Logs.Indexes().DropOne(ctx, "timestamp_1")

	_, err := m.Logs.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "timestamp", Value: 1}},
		Options: options.Index().SetExpireAfterSeconds(int32(ttl.Seconds())),
	})
	if err != nil && isIndexConflict(err) {
		return nil
	}
	return err
}

func isIndexConflict(err error) bool {
	var cmdErr mongo.CommandError
	if errors.As(err, &cmdErr) {
		// IndexOptionsConflict, IndexKeySpecsConflict
		return cmdErr.Code == 85 || cmdErr.Code == 86
	}
	return false
}

// Close closes the MongoDB connection.
func (m *MongoDB) Close(ctx context.Context) error {
	return m.Client.Disconnect(ctx)
}

// HealthCheck verifies the MongoDB connection is healthy.
func (m *MongoDB) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return m.Client.Ping(ctx, nil)
}
