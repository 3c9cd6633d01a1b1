// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/Zafar-Sheik/roadworks-service/internal/domain/dto"
	"github.com/Zafar-Sheik/roadworks-service/internal/domain/model"
	"github.com/Zafar-Sheik/roadworks-service/internal/query"
	"github.com/Zafar-Sheik/roadworks-service/internal/repository"
	"github.com/stretchr/testify/mock"
)

type MockJobTypeService struct {
	mock.Mock
}

func (m *MockJobTypeService) ListTypes(ctx context.Context) ([]*model.JobType, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.JobType), args.Error(1)
}

func (m *MockJobTypeService) CreateType(ctx context.Context, req dto.CreateJobTypeRequest) (*model.JobType, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.JobType), args.Error(1)
}

func (m *MockJobTypeService) SubmitSheet(ctx context.Context, actor dto.Claims, req dto.CreateJobSheetRequest) (*model.JobSheet, error) {
	args := m.Called(ctx, actor, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.JobSheet), args.Error(1)
}

func (m *MockJobTypeService) ListSheets(ctx context.Context, actor dto.Claims, params query.Params, opts repository.ListOptions) ([]*model.JobSheet, error) {
	args := m.Called(ctx, actor, params, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.JobSheet), args.Error(1)
}
