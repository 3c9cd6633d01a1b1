package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Zafar-Sheik/roadworks-service/internal/domain/dto"
	"github.com/Zafar-Sheik/roadworks-service/internal/domain/formula"
	"github.com/Zafar-Sheik/roadworks-service/internal/domain/model"
	"github.com/Zafar-Sheik/roadworks-service/internal/metrics"
	"github.com/Zafar-Sheik/roadworks-service/internal/query"
	"github.com/Zafar-Sheik/roadworks-service/internal/repository"
)

// DefaultCatalogTTL is how long the job type catalog is served from memory.
const DefaultCatalogTTL = time.Minute

// JobTypeService manages job types and the job sheets computed from them.
type JobTypeService interface {
	ListTypes(ctx context.Context) ([]*model.JobType, error)
	CreateType(ctx context.Context, req dto.CreateJobTypeRequest) (*model.JobType, error)
	// SubmitSheet computes the sheet outputs with the job type's formula and stores it for actor.
	SubmitSheet(ctx context.Context, actor Claims, req dto.CreateJobSheetRequest) (*model.JobSheet, error)
	ListSheets(ctx context.Context, actor Claims, params query.Params, opts repository.ListOptions) ([]*model.JobSheet, error)
}

// JobTypeServiceImpl implements JobTypeService.
type JobTypeServiceImpl struct {
	repo     repository.JobTypeRepositoryInterface
	formulas *formula.Registry
	catalog  *catalogCache
}

// NewJobTypeService creates a job type service. A nil registry uses formula.Default.
func NewJobTypeService(repo repository.JobTypeRepositoryInterface, formulas *formula.Registry, catalogTTL time.Duration) JobTypeService {
	if formulas == nil {
		formulas = formula.Default()
	}
	if catalogTTL <= 0 {
		catalogTTL = DefaultCatalogTTL
	}
	return &JobTypeServiceImpl{
		repo:     repo,
		formulas: formulas,
		catalog:  &catalogCache{ttl: catalogTTL},
	}
}

func (s *JobTypeServiceImpl) ListTypes(ctx context.Context) ([]*model.JobType, error) {
	if types, ok := s.catalog.get(); ok {
		metrics.RecordJobTypeCacheLookup(true)
		return types, nil
	}
	metrics.RecordJobTypeCacheLookup(false)

	gen := s.catalog.generation()
	types, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list job types: %w", err)
	}
	s.catalog.set(gen, types)
	return types, nil
}

func (s *JobTypeServiceImpl) CreateType(ctx context.Context, req dto.CreateJobTypeRequest) (*model.JobType, error) {
	f, ok := s.formulas.Lookup(req.Formula)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormula, req.Formula)
	}

	inputs := f.Inputs
	if len(req.RequiredInputs) > 0 {
		inputs = make([]model.RequiredInput, 0, len(req.RequiredInputs))
		for _, in := range req.RequiredInputs {
			inputs = append(inputs, model.RequiredInput{Name: in.Name, Unit: in.Unit})
		}
	}

	jt := &model.JobType{
		Name:           req.Name,
		Formula:        f.Key,
		RequiredInputs: inputs,
		Company:        req.Company,
	}
	if err := s.repo.Create(ctx, jt); err != nil {
		if repository.IsDuplicateKey(err) {
			return nil, ErrJobTypeExists
		}
		return nil, fmt.Errorf("create job type: %w", err)
	}

	s.catalog.invalidate()
	return jt, nil
}

func (s *JobTypeServiceImpl) SubmitSheet(ctx context.Context, actor Claims, req dto.CreateJobSheetRequest) (*model.JobSheet, error) {
	typeID, err := primitive.ObjectIDFromHex(req.JobType)
	if err != nil {
		return nil, &dto.ValidationError{Field: "jobType", Message: "must be a valid id"}
	}

	jt, err := s.repo.FindByID(ctx, typeID)
	if err != nil {
		return nil, fmt.Errorf("find job type: %w", err)
	}
	if jt == nil {
		return nil, ErrJobTypeNotFound
	}

	inputs := make([]model.Quantity, 0, len(req.Inputs))
	for _, in := range req.Inputs {
		inputs = append(inputs, model.Quantity{Name: in.Name, Value: in.Value, Unit: in.Unit})
	}
	for _, required := range jt.RequiredInputs {
		if !hasQuantity(inputs, required.Name) {
			metrics.RecordJobSheet(jt.Formula, "invalid")
			return nil, &formula.MissingInputError{Formula: jt.Formula, Input: required.Name}
		}
	}

	outputs, err := s.formulas.Compute(jt.Formula, inputs)
	if err != nil {
		metrics.RecordJobSheet(jt.Formula, "invalid")
		return nil, err
	}

	company := actor.Company
	if company == "" {
		company = jt.Company
	}
	sheet := &model.JobSheet{
		User:    actor.UserID,
		JobType: jt.ID,
		Inputs:  inputs,
		Outputs: outputs,
		Company: company,
	}
	if err := s.repo.CreateSheet(ctx, sheet); err != nil {
		metrics.RecordJobSheet(jt.Formula, "error")
		return nil, fmt.Errorf("create job sheet: %w", err)
	}

	metrics.RecordJobSheet(jt.Formula, "success")
	return sheet, nil
}

func (s *JobTypeServiceImpl) ListSheets(ctx context.Context, actor Claims, params query.Params, opts repository.ListOptions) ([]*model.JobSheet, error) {
	f, err := buildFilter("job_sheets", jobSheetFilters, params)
	if err != nil {
		return nil, err
	}
	if !isAdmin(actor) {
		f = f.With("user", actor.UserID)
	}
	return s.repo.ListSheets(ctx, f.BSON(), opts)
}

func hasQuantity(qs []model.Quantity, name string) bool {
	for _, q := range qs {
		if q.Name == name {
			return true
		}
	}
	return false
}

// catalogCache keeps the full job type list for a short TTL.
// catalogCache holds the job type list. set drops a list read before the latest invalidate.
type catalogCache struct {
	mu      sync.RWMutex
	ttl     time.Duration
	types   []*model.JobType
	expires time.Time
	gen     uint64
}

func (c *catalogCache) get() ([]*model.JobType, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.types == nil || time.Now().After(c.expires) {
		return nil, false
	}
	return c.types, true
}

func (c *catalogCache) generation() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.gen
}

func (c *catalogCache) set(gen uint64, types []*model.JobType) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen {
		return
	}
	c.types = types
	c.expires = time.Now().Add(c.ttl)
}

func (c *catalogCache) invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.types = nil
	c.gen++
}
