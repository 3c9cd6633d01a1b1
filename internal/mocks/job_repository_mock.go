// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/Zafar-Sheik/roadworks-service/internal/domain/model"
	"github.com/Zafar-Sheik/roadworks-service/internal/repository"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MockJobRepositoryInterface struct {
	mock.Mock
}

func (m *MockJobRepositoryInterface) Create(ctx context.Context, job *model.Job) error {
	args := m.Called(ctx, job)
	return args.Error(0)
}

func (m *MockJobRepositoryInterface) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Job), args.Error(1)
}

func (m *MockJobRepositoryInterface) List(ctx context.Context, filter bson.M, opts repository.ListOptions) ([]*model.Job, error) {
	args := m.Called(ctx, filter, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Job), args.Error(1)
}

func (m *MockJobRepositoryInterface) Update(ctx context.Context, id primitive.ObjectID, update model.JobUpdate) (*model.Job, error) {
	args := m.Called(ctx, id, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Job), args.Error(1)
}

func (m *MockJobRepositoryInterface) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}
