//go:build !integration

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Zafar-Sheik/roadworks-service/internal/circuitbreaker"
	"github.com/Zafar-Sheik/roadworks-service/internal/domain/model"
	"github.com/Zafar-Sheik/roadworks-service/internal/mocks"
	"github.com/Zafar-Sheik/roadworks-service/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newBreaker() *circuitbreaker.CircuitBreaker {
	return circuitbreaker.New(circuitbreaker.Config{
		Name:             "test",
		FailureThreshold: 2,
		SuccessThreshold: 1,
		Timeout:          time.Minute,
		IsFailure:        func(err error) bool { return !repository.IsNonFailure(err) },
	})
}

func TestJobRepositoryWithCircuitBreaker_OpensOnRepeatedFailures(t *testing.T) {
	inner := new(mocks.MockJobRepositoryInterface)
	errDown := errors.New("server selection timeout")
	inner.On("List", mock.Anything, mock.Anything, mock.Anything).Return(nil, errDown).Twice()

	cb := newBreaker()
	repo := repository.NewJobRepositoryWithCircuitBreaker(inner, cb)

	for i := 0; i < 2; i++ {
		_, err := repo.List(context.Background(), bson.M{}, repository.ListOptions{})
		assert.ErrorIs(t, err, errDown)
	}

	_, err := repo.List(context.Background(), bson.M{}, repository.ListOptions{})
	assert.ErrorIs(t, err, circuitbreaker.ErrCircuitOpen)
	inner.AssertNumberOfCalls(t, "List", 2)
}

func TestJobRepositoryWithCircuitBreaker_PassesResults(t *testing.T) {
	inner := new(mocks.MockJobRepositoryInterface)
	id := primitive.NewObjectID()
	job := &model.Job{ID: id, Name: "N2 patching"}
	inner.On("FindByID", mock.Anything, id).Return(job, nil)
	inner.On("Delete", mock.Anything, id).Return(true, nil)

	repo := repository.NewJobRepositoryWithCircuitBreaker(inner, newBreaker())

	got, err := repo.FindByID(context.Background(), id)
	assert.NoError(t, err)
	assert.Same(t, job, got)

	deleted, err := repo.Delete(context.Background(), id)
	assert.NoError(t, err)
	assert.True(t, deleted)
}

func TestPotholeRepositoryWithCircuitBreaker_Replace(t *testing.T) {
	inner := new(mocks.MockPotholeRepositoryInterface)
	p := &model.Pothole{ID: primitive.NewObjectID()}
	inner.On("Replace", mock.Anything, p).Return(false, nil)

	repo := repository.NewPotholeRepositoryWithCircuitBreaker(inner, newBreaker())

	found, err := repo.Replace(context.Background(), p)

	assert.NoError(t, err)
	assert.False(t, found)
}

func TestLogsRepositoryWithCircuitBreaker_DropsWritesWhenOpen(t *testing.T) {
	inner := new(mocks.MockLogsRepositoryInterface)
	errDown := errors.New("connection reset")
	inner.On("Create", mock.Anything, mock.Anything).Return(errDown).Twice()

	cb := newBreaker()
	repo := repository.NewLogsRepositoryWithCircuitBreaker(inner, cb)

	_ = repo.Create(context.Background(), &model.LogEntry{})
	_ = repo.Create(context.Background(), &model.LogEntry{})
	assert.True(t, cb.IsOpen())

	assert.NoError(t, repo.Create(context.Background(), &model.LogEntry{}))
	inner.AssertNumberOfCalls(t, "Create", 2)
}
