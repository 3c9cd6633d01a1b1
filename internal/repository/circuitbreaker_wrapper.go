package repository

import (
	"context"
	"errors"

	"github.com/Zafar-Sheik/roadworks-service/internal/circuitbreaker"
	"github.com/Zafar-Sheik/roadworks-service/internal/domain/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// JobRepositoryWithCircuitBreaker guards a JobRepositoryInterface.
type JobRepositoryWithCircuitBreaker struct {
	repo JobRepositoryInterface
	cb   *circuitbreaker.CircuitBreaker
}

// NewJobRepositoryWithCircuitBreaker wraps repo with cb.
func NewJobRepositoryWithCircuitBreaker(repo JobRepositoryInterface, cb *circuitbreaker.CircuitBreaker) *JobRepositoryWithCircuitBreaker {
	return &JobRepositoryWithCircuitBreaker{repo: repo, cb: cb}
}

func (r *JobRepositoryWithCircuitBreaker) Create(ctx context.Context, job *model.Job) error {
	return r.cb.Execute(ctx, func() error { return r.repo.Create(ctx, job) })
}

func (r *JobRepositoryWithCircuitBreaker) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Job, error) {
	return circuitbreaker.Do(ctx, r.cb, func() (*model.Job, error) { return r.repo.FindByID(ctx, id) })
}

func (r *JobRepositoryWithCircuitBreaker) List(ctx context.Context, filter bson.M, opts ListOptions) ([]*model.Job, error) {
	return circuitbreaker.Do(ctx, r.cb, func() ([]*model.Job, error) { return r.repo.List(ctx, filter, opts) })
}

func (r *JobRepositoryWithCircuitBreaker) Update(ctx context.Context, id primitive.ObjectID, update model.JobUpdate) (*model.Job, error) {
	return circuitbreaker.Do(ctx, r.cb, func() (*model.Job, error) { return r.repo.Update(ctx, id, update) })
}

func (r *JobRepositoryWithCircuitBreaker) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	return circuitbreaker.Do(ctx, r.cb, func() (bool, error) { return r.repo.Delete(ctx, id) })
}

// PotholeRepositoryWithCircuitBreaker guards a PotholeRepositoryInterface.
type PotholeRepositoryWithCircuitBreaker struct {
	repo PotholeRepositoryInterface
	cb   *circuitbreaker.CircuitBreaker
}

// NewPotholeRepositoryWithCircuitBreaker wraps repo with cb.
func NewPotholeRepositoryWithCircuitBreaker(repo PotholeRepositoryInterface, cb *circuitbreaker.CircuitBreaker) *PotholeRepositoryWithCircuitBreaker {
	return &PotholeRepositoryWithCircuitBreaker{repo: repo, cb: cb}
}

func (r *PotholeRepositoryWithCircuitBreaker) Create(ctx context.Context, p *model.Pothole) error {
	return r.cb.Execute(ctx, func() error { return r.repo.Create(ctx, p) })
}

func (r *PotholeRepositoryWithCircuitBreaker) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Pothole, error) {
	return circuitbreaker.Do(ctx, r.cb, func() (*model.Pothole, error) { return r.repo.FindByID(ctx, id) })
}

func (r *PotholeRepositoryWithCircuitBreaker) List(ctx context.Context, filter bson.M, opts ListOptions) ([]*model.Pothole, error) {
	return circuitbreaker.Do(ctx, r.cb, func() ([]*model.Pothole, error) { return r.repo.List(ctx, filter, opts) })
}

func (r *PotholeRepositoryWithCircuitBreaker) Replace(ctx context.Context, p *model.Pothole) (bool, error) {
	return circuitbreaker.Do(ctx, r.cb, func() (bool, error) { return r.repo.Replace(ctx, p) })
}

func (r *PotholeRepositoryWithCircuitBreaker) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	return circuitbreaker.Do(ctx, r.cb, func() (bool, error) { return r.repo.Delete(ctx, id) })
}

func (r *PotholeRepositoryWithCircuitBreaker) DeleteByJob(ctx context.Context, jobID primitive.ObjectID) (int64, error) {
	return circuitbreaker.Do(ctx, r.cb, func() (int64, error) { return r.repo.DeleteByJob(ctx, jobID) })
}

// UserRepositoryWithCircuitBreaker guards a UserRepositoryInterface.
type UserRepositoryWithCircuitBreaker struct {
	repo UserRepositoryInterface
	cb   *circuitbreaker.CircuitBreaker
}

// NewUserRepositoryWithCircuitBreaker wraps repo with cb.
func NewUserRepositoryWithCircuitBreaker(repo UserRepositoryInterface, cb *circuitbreaker.CircuitBreaker) *UserRepositoryWithCircuitBreaker {
	return &UserRepositoryWithCircuitBreaker{repo: repo, cb: cb}
}

func (r *UserRepositoryWithCircuitBreaker) Create(ctx context.Context, user *model.User) error {
	return r.cb.Execute(ctx, func() error { return r.repo.Create(ctx, user) })
}

func (r *UserRepositoryWithCircuitBreaker) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	return circuitbreaker.Do(ctx, r.cb, func() (*model.User, error) { return r.repo.FindByEmail(ctx, email) })
}

func (r *UserRepositoryWithCircuitBreaker) FindByID(ctx context.Context, id primitive.ObjectID) (*model.User, error) {
	return circuitbreaker.Do(ctx, r.cb, func() (*model.User, error) { return r.repo.FindByID(ctx, id) })
}

func (r *UserRepositoryWithCircuitBreaker) UpdateEmail(ctx context.Context, id primitive.ObjectID, email string) (*model.User, error) {
	return circuitbreaker.Do(ctx, r.cb, func() (*model.User, error) { return r.repo.UpdateEmail(ctx, id, email) })
}

func (r *UserRepositoryWithCircuitBreaker) Deactivate(ctx context.Context, id primitive.ObjectID) (bool, error) {
	return circuitbreaker.Do(ctx, r.cb, func() (bool, error) { return r.repo.Deactivate(ctx, id) })
}

func (r *UserRepositoryWithCircuitBreaker) List(ctx context.Context, filter bson.M, opts ListOptions) ([]*model.User, error) {
	return circuitbreaker.Do(ctx, r.cb, func() ([]*model.User, error) { return r.repo.List(ctx, filter, opts) })
}

func (r *UserRepositoryWithCircuitBreaker) Count(ctx context.Context, filter bson.M) (int64, error) {
	return circuitbreaker.Do(ctx, r.cb, func() (int64, error) { return r.repo.Count(ctx, filter) })
}

// LogsRepositoryWithCircuitBreaker guards a LogsRepositoryInterface.
// Writes are dropped while the circuit is open; audit logging must never fail a request.
type LogsRepositoryWithCircuitBreaker struct {
	repo LogsRepositoryInterface
	cb   *circuitbreaker.CircuitBreaker
}

// NewLogsRepositoryWithCircuitBreaker wraps repo with cb.
func NewLogsRepositoryWithCircuitBreaker(repo LogsRepositoryInterface, cb *circuitbreaker.CircuitBreaker) *LogsRepositoryWithCircuitBreaker {
	return &LogsRepositoryWithCircuitBreaker{repo: repo, cb: cb}
}

func (r *LogsRepositoryWithCircuitBreaker) Create(ctx context.Context, entry *model.LogEntry) error {
	return dropWhenOpen(r.cb.Execute(ctx, func() error { return r.repo.Create(ctx, entry) }))
}

func (r *LogsRepositoryWithCircuitBreaker) CreateMany(ctx context.Context, entries []*model.LogEntry) error {
	return dropWhenOpen(r.cb.Execute(ctx, func() error { return r.repo.CreateMany(ctx, entries) }))
}

func (r *LogsRepositoryWithCircuitBreaker) List(ctx context.Context, filter bson.M, opts ListOptions) ([]*model.LogEntry, error) {
	return circuitbreaker.Do(ctx, r.cb, func() ([]*model.LogEntry, error) { return r.repo.List(ctx, filter, opts) })
}

func dropWhenOpen(err error) error {
	if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
		return nil
	}
	return err
}
