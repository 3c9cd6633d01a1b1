package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Zafar-Sheik/roadworks-service/internal/domain/dto"
	"github.com/Zafar-Sheik/roadworks-service/internal/domain/model"
	"github.com/Zafar-Sheik/roadworks-service/internal/query"
	"github.com/Zafar-Sheik/roadworks-service/internal/repository"
)

// JobService manages work orders. Laborers only ever see jobs assigned to them.
type JobService interface {
	List(ctx context.Context, actor Claims, params query.Params, opts repository.ListOptions) ([]*model.Job, error)
	ListForUser(ctx context.Context, actor Claims, userID primitive.ObjectID, params query.Params, opts repository.ListOptions) ([]*model.Job, error)
	Get(ctx context.Context, actor Claims, id primitive.ObjectID) (*model.Job, error)
	Create(ctx context.Context, req dto.CreateJobRequest) (*model.Job, error)
	Update(ctx context.Context, actor Claims, id primitive.ObjectID, update model.JobUpdate) (*model.Job, error)
	// Delete removes the job together with its pothole sheets.
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// JobServiceImpl implements JobService.
type JobServiceImpl struct {
	jobs     repository.JobRepositoryInterface
	users    repository.UserRepositoryInterface
	potholes repository.PotholeRepositoryInterface
}

// NewJobService creates a new job service.
func NewJobService(
	jobs repository.JobRepositoryInterface,
	users repository.UserRepositoryInterface,
	potholes repository.PotholeRepositoryInterface,
) JobService {
	return &JobServiceImpl{jobs: jobs, users: users, potholes: potholes}
}

func (s *JobServiceImpl) List(ctx context.Context, actor Claims, params query.Params, opts repository.ListOptions) ([]*model.Job, error) {
	f, err := buildFilter("jobs", jobFilters, params)
	if err != nil {
		return nil, err
	}
	if !isAdmin(actor) {
		f = f.With("user", actor.UserID.Hex())
	}
	return s.jobs.List(ctx, f.BSON(), opts)
}

func (s *JobServiceImpl) ListForUser(ctx context.Context, actor Claims, userID primitive.ObjectID, params query.Params, opts repository.ListOptions) ([]*model.Job, error) {
	if !isAdmin(actor) && actor.UserID != userID {
		return nil, ErrForbidden
	}
	f, err := buildFilter("jobs", userJobFilters, params)
	if err != nil {
		return nil, err
	}
	return s.jobs.List(ctx, f.With("user", userID.Hex()).BSON(), opts)
}

func (s *JobServiceImpl) Get(ctx context.Context, actor Claims, id primitive.ObjectID) (*model.Job, error) {
	job, err := s.jobs.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find job: %w", err)
	}
	if job == nil {
		return nil, ErrJobNotFound
	}
	if !isAdmin(actor) && !job.AssignedTo(actor.UserID) {
		return nil, ErrForbidden
	}
	return job, nil
}

func (s *JobServiceImpl) Create(ctx context.Context, req dto.CreateJobRequest) (*model.Job, error) {
	assigneeID, err := primitive.ObjectIDFromHex(req.User)
	if err != nil {
		return nil, &dto.ValidationError{Field: "user", Message: "must be a valid id"}
	}
	assignee, err := s.users.FindByID(ctx, assigneeID)
	if err != nil {
		return nil, fmt.Errorf("find assignee: %w", err)
	}
	if assignee == nil || !assignee.Active {
		return nil, ErrAssigneeNotFound
	}

	job := &model.Job{
		Name:       req.Name,
		JobType:    req.JobType,
		Company:    req.Company,
		User:       assigneeID.Hex(),
		IsActive:   req.IsActive != nil && *req.IsActive,
		IsComplete: req.IsComplete,
	}
	if err := s.jobs.Create(ctx, job); err != nil {
		return nil, fmt.Errorf("create job: %w", err)
	}
	return job, nil
}

func (s *JobServiceImpl) Update(ctx context.Context, actor Claims, id primitive.ObjectID, update model.JobUpdate) (*model.Job, error) {
	if _, err := s.Get(ctx, actor, id); err != nil {
		return nil, err
	}
	// Assignees may sign off and complete their job, nothing else.
	if !isAdmin(actor) && (update.Name != nil || update.IsActive != nil) {
		return nil, ErrForbidden
	}

	job, err := s.jobs.Update(ctx, id, update)
	if err != nil {
		return nil, fmt.Errorf("update job: %w", err)
	}
	if job == nil {
		return nil, ErrJobNotFound
	}
	return job, nil
}

func (s *JobServiceImpl) Delete(ctx context.Context, id primitive.ObjectID) error {
	deleted, err := s.jobs.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete job: %w", err)
	}
	if !deleted {
		return ErrJobNotFound
	}

	n, err := s.potholes.DeleteByJob(ctx, id)
	if err != nil {
		log.Warn().Err(err).Str("job_id", id.Hex()).Msg("failed to delete pothole sheets of deleted job")
		return nil
	}
	if n > 0 {
		log.Info().Str("job_id", id.Hex()).Int64("potholes", n).Msg("deleted pothole sheets of deleted job")
	}
	return nil
}
