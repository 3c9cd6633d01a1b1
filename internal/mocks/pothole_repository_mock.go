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

type MockPotholeRepositoryInterface struct {
	mock.Mock
}

func (m *MockPotholeRepositoryInterface) Create(ctx context.Context, p *model.Pothole) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPotholeRepositoryInterface) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Pothole, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Pothole), args.Error(1)
}

func (m *MockPotholeRepositoryInterface) List(ctx context.Context, filter bson.M, opts repository.ListOptions) ([]*model.Pothole, error) {
	args := m.Called(ctx, filter, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Pothole), args.Error(1)
}

func (m *MockPotholeRepositoryInterface) Replace(ctx context.Context, p *model.Pothole) (bool, error) {
	args := m.Called(ctx, p)
	return args.Bool(0), args.Error(1)
}

func (m *MockPotholeRepositoryInterface) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockPotholeRepositoryInterface) DeleteByJob(ctx context.Context, jobID primitive.ObjectID) (int64, error) {
	args := m.Called(ctx, jobID)
	return args.Get(0).(int64), args.Error(1)
}
