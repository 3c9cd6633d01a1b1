// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/Zafar-Sheik/roadworks-service/internal/domain/dto"
	"github.com/Zafar-Sheik/roadworks-service/internal/domain/model"
	"github.com/Zafar-Sheik/roadworks-service/internal/query"
	"github.com/Zafar-Sheik/roadworks-service/internal/repository"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MockJobService struct {
	mock.Mock
}

func (m *MockJobService) List(ctx context.Context, actor dto.Claims, params query.Params, opts repository.ListOptions) ([]*model.Job, error) {
	args := m.Called(ctx, actor, params, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Job), args.Error(1)
}

func (m *MockJobService) ListForUser(ctx context.Context, actor dto.Claims, userID primitive.ObjectID, params query.Params, opts repository.ListOptions) ([]*model.Job, error) {
	args := m.Called(ctx, actor, userID, params, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Job), args.Error(1)
}

func (m *MockJobService) Get(ctx context.Context, actor dto.Claims, id primitive.ObjectID) (*model.Job, error) {
	args := m.Called(ctx, actor, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Job), args.Error(1)
}

func (m *MockJobService) Create(ctx context.Context, req dto.CreateJobRequest) (*model.Job, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Job), args.Error(1)
}

func (m *MockJobService) Update(ctx context.Context, actor dto.Claims, id primitive.ObjectID, update model.JobUpdate) (*model.Job, error) {
	args := m.Called(ctx, actor, id, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Job), args.Error(1)
}

func (m *MockJobService) Delete(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
