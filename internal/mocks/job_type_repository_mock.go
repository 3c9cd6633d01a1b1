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

type MockJobTypeRepositoryInterface struct {
	mock.Mock
}

func (m *MockJobTypeRepositoryInterface) Create(ctx context.Context, jt *model.JobType) error {
	args := m.Called(ctx, jt)
	return args.Error(0)
}

func (m *MockJobTypeRepositoryInterface) FindByID(ctx context.Context, id primitive.ObjectID) (*model.JobType, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.JobType), args.Error(1)
}

func (m *MockJobTypeRepositoryInterface) List(ctx context.Context) ([]*model.JobType, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.JobType), args.Error(1)
}

func (m *MockJobTypeRepositoryInterface) CreateSheet(ctx context.Context, sheet *model.JobSheet) error {
	args := m.Called(ctx, sheet)
	return args.Error(0)
}

func (m *MockJobTypeRepositoryInterface) ListSheets(ctx context.Context, filter bson.M, opts repository.ListOptions) ([]*model.JobSheet, error) {
	args := m.Called(ctx, filter, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.JobSheet), args.Error(1)
}
