package service

import (
	"context"
	"fmt"
	"io"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Zafar-Sheik/roadworks-service/internal/domain/dto"
	"github.com/Zafar-Sheik/roadworks-service/internal/domain/measure"
	"github.com/Zafar-Sheik/roadworks-service/internal/domain/model"
	"github.com/Zafar-Sheik/roadworks-service/internal/metrics"
	"github.com/Zafar-Sheik/roadworks-service/internal/query"
	"github.com/Zafar-Sheik/roadworks-service/internal/repository"
)

// PotholeService records pothole repair sheets. Area, volume and material mass
// are always derived on the server from the submitted measurements.
type PotholeService interface {
	Record(ctx context.Context, actor Claims, req dto.CreatePotholeRequest) (*model.Pothole, error)
	List(ctx context.Context, actor Claims, params query.Params, opts repository.ListOptions) ([]*model.Pothole, error)
	// ListByJob returns the sheets of a job, newest first. An unknown job has no sheets.
	ListByJob(ctx context.Context, actor Claims, jobID primitive.ObjectID, opts repository.ListOptions) ([]*model.Pothole, error)
	Get(ctx context.Context, actor Claims, id primitive.ObjectID) (*model.Pothole, error)
	Update(ctx context.Context, actor Claims, id primitive.ObjectID, req dto.UpdatePotholeRequest) (*model.Pothole, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	// Export writes the sheets matching params as an XLSX workbook and returns the row count.
	Export(ctx context.Context, params query.Params, w io.Writer) (int, error)
}

// PotholeServiceImpl implements PotholeService.
type PotholeServiceImpl struct {
	potholes repository.PotholeRepositoryInterface
	jobs     repository.JobRepositoryInterface
	calc     *measure.Calculator
}

// NewPotholeService creates a new pothole service.
func NewPotholeService(
	potholes repository.PotholeRepositoryInterface,
	jobs repository.JobRepositoryInterface,
	calc *measure.Calculator,
) PotholeService {
	if calc == nil {
		calc = measure.NewCalculator()
	}
	return &PotholeServiceImpl{potholes: potholes, jobs: jobs, calc: calc}
}

func (s *PotholeServiceImpl) Record(ctx context.Context, actor Claims, req dto.CreatePotholeRequest) (*model.Pothole, error) {
	jobID, err := primitive.ObjectIDFromHex(req.Job)
	if err != nil {
		return nil, &dto.ValidationError{Field: "job", Message: "must be a valid id"}
	}

	p := &model.Pothole{
		Job:          jobID,
		Dimensions:   model.Dimensions{L: req.Dimensions.L, W: req.Dimensions.W, D: req.Dimensions.D},
		NumberOfBags: req.NumberOfBags,
		Weather:      weatherOrDefault(req.Weather),
	}
	if err := p.Measurement().Validate(); err != nil {
		metrics.RecordPotholeSheet("create", "invalid", 0)
		return nil, err
	}

	if _, err := s.accessibleJob(ctx, actor, jobID); err != nil {
		return nil, err
	}

	p.ApplyMetrics(s.calc.Derive(p.Measurement()))
	if err := s.potholes.Create(ctx, p); err != nil {
		metrics.RecordPotholeSheet("create", "error", 0)
		return nil, fmt.Errorf("create pothole: %w", err)
	}

	metrics.RecordPotholeSheet("create", "success", p.MaterialsInKg)
	return p, nil
}

func (s *PotholeServiceImpl) List(ctx context.Context, actor Claims, params query.Params, opts repository.ListOptions) ([]*model.Pothole, error) {
	f, err := buildFilter("potholes", potholeFilters, params)
	if err != nil {
		return nil, err
	}

	if !isAdmin(actor) {
		if v, ok := f.Value("job"); ok {
			if _, err := s.accessibleJob(ctx, actor, v.(primitive.ObjectID)); err != nil {
				return nil, err
			}
		} else {
			ids, err := s.assignedJobIDs(ctx, actor.UserID)
			if err != nil {
				return nil, err
			}
			f = f.WithIn("job", ids)
		}
	}

	return s.potholes.List(ctx, f.BSON(), opts)
}

func (s *PotholeServiceImpl) ListByJob(ctx context.Context, actor Claims, jobID primitive.ObjectID, opts repository.ListOptions) ([]*model.Pothole, error) {
	job, err := s.jobs.FindByID(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("find job: %w", err)
	}
	if job == nil {
		return []*model.Pothole{}, nil
	}
	if !isAdmin(actor) && !job.AssignedTo(actor.UserID) {
		return nil, ErrForbidden
	}

	return s.potholes.List(ctx, query.Filter{}.With("job", jobID).BSON(), opts)
}

func (s *PotholeServiceImpl) Get(ctx context.Context, actor Claims, id primitive.ObjectID) (*model.Pothole, error) {
	p, err := s.potholes.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find pothole: %w", err)
	}
	if p == nil {
		return nil, ErrPotholeNotFound
	}
	if !isAdmin(actor) {
		if _, err := s.accessibleJob(ctx, actor, p.Job); err != nil {
			return nil, err
		}
	}
	return p, nil
}

func (s *PotholeServiceImpl) Update(ctx context.Context, actor Claims, id primitive.ObjectID, req dto.UpdatePotholeRequest) (*model.Pothole, error) {
	p, err := s.Get(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	if d := req.Dimensions; d != nil {
		if d.L != nil {
			p.Dimensions.L = *d.L
		}
		if d.W != nil {
			p.Dimensions.W = *d.W
		}
		if d.D != nil {
			p.Dimensions.D = *d.D
		}
	}
	if req.NumberOfBags != nil {
		p.NumberOfBags = *req.NumberOfBags
	}
	if req.Weather != nil {
		p.Weather = weatherOrDefault(*req.Weather)
	}

	if err := p.Measurement().Validate(); err != nil {
		metrics.RecordPotholeSheet("update", "invalid", 0)
		return nil, err
	}
	p.ApplyMetrics(s.calc.Derive(p.Measurement()))

	found, err := s.potholes.Replace(ctx, p)
	if err != nil {
		metrics.RecordPotholeSheet("update", "error", 0)
		return nil, fmt.Errorf("update pothole: %w", err)
	}
	if !found {
		return nil, ErrPotholeNotFound
	}

	metrics.RecordPotholeSheet("update", "success", 0)
	return p, nil
}

func (s *PotholeServiceImpl) Delete(ctx context.Context, id primitive.ObjectID) error {
	deleted, err := s.potholes.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete pothole: %w", err)
	}
	if !deleted {
		return ErrPotholeNotFound
	}
	return nil
}

// accessibleJob loads a job and checks that actor may work on it.
func (s *PotholeServiceImpl) accessibleJob(ctx context.Context, actor Claims, jobID primitive.ObjectID) (*model.Job, error) {
	job, err := s.jobs.FindByID(ctx, jobID)
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

func (s *PotholeServiceImpl) assignedJobIDs(ctx context.Context, userID primitive.ObjectID) ([]interface{}, error) {
	jobs, err := s.jobs.List(ctx, query.Filter{}.With("user", userID.Hex()).BSON(), repository.ListOptions{})
	if err != nil {
		return nil, fmt.Errorf("list assigned jobs: %w", err)
	}
	ids := make([]interface{}, 0, len(jobs))
	for _, j := range jobs {
		ids = append(ids, j.ID)
	}
	return ids, nil
}

func weatherOrDefault(w string) string {
	if w = strings.TrimSpace(w); w != "" {
		return w
	}
	return model.DefaultWeather
}
