package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ListOptions controls paging of list queries. Zero Limit means no limit.
type ListOptions struct {
	Limit int64
	Skip  int64
}

func (o ListOptions) findOptions(sortField string) *options.FindOptions {
	opts := options.Find().SetSort(bson.D{{Key: sortField, Value: -1}, {Key: "_id", Value: -1}})
	if o.Limit > 0 {
		opts.SetLimit(o.Limit)
	}
	if o.Skip > 0 {
		opts.SetSkip(o.Skip)
	}
	return opts
}

// IsDuplicateKey reports whether err is a unique index violation.
func IsDuplicateKey(err error) bool {
	return mongo.IsDuplicateKeyError(err)
}

// IsNonFailure reports errors that say nothing about database health.
// Circuit breakers use it so client mistakes do not open the circuit.
func IsNonFailure(err error) bool {
	return errors.Is(err, context.Canceled) || mongo.IsDuplicateKeyError(err)
}

func findOne[T any](ctx context.Context, coll *mongo.Collection, filter interface{}, opts ...*options.FindOneOptions) (*T, error) {
	var doc T
	err := coll.FindOne(ctx, filter, opts...).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

func findAll[T any](ctx context.Context, coll *mongo.Collection, filter interface{}, opts *options.FindOptions) ([]*T, error) {
	if filter == nil {
		filter = bson.M{}
	}
	cursor, err := coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	docs := make([]*T, 0)
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}
