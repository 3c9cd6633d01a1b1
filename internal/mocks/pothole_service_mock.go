// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"
	"io"

	"github.com/Zafar-Sheik/roadworks-service/internal/domain/dto"
	"github.com/Zafar-Sheik/roadworks-service/internal/domain/model"
	"github.com/Zafar-Sheik/roadworks-service/internal/query"
	"github.com/Zafar-Sheik/roadworks-service/internal/repository"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MockPotholeService struct {
	mock.Mock
}

func (m *MockPotholeService) Record(ctx context.Context, actor dto.Claims, req dto.CreatePotholeRequest) (*model.Pothole, error) {
	args := m.Called(ctx, actor, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Pothole), args.Error(1)
}

func (m *MockPotholeService) List(ctx context.Context, actor dto.Claims, params query.Params, opts repository.ListOptions) ([]*model.Pothole, error) {
	args := m.Called(ctx, actor, params, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Pothole), args.Error(1)
}

func (m *MockPotholeService) ListByJob(ctx context.Context, actor dto.Claims, jobID primitive.ObjectID, opts repository.ListOptions) ([]*model.Pothole, error) {
	args := m.Called(ctx, actor, jobID, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Pothole), args.Error(1)
}

func (m *MockPotholeService) Get(ctx context.Context, actor dto.Claims, id primitive.ObjectID) (*model.Pothole, error) {
	args := m.Called(ctx, actor, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Pothole), args.Error(1)
}

func (m *MockPotholeService) Update(ctx context.Context, actor dto.Claims, id primitive.ObjectID, req dto.UpdatePotholeRequest) (*model.Pothole, error) {
	args := m.Called(ctx, actor, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Pothole), args.Error(1)
}

func (m *MockPotholeService) Delete(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// Export writes the configured bytes (args[0] as []byte) to w.
func (m *MockPotholeService) Export(ctx context.Context, params query.Params, w io.Writer) (int, error) {
	args := m.Called(ctx, params, w)
	if b, ok := args.Get(0).([]byte); ok {
		_, _ = w.Write(b)
	}
	return args.Int(1), args.Error(2)
}
