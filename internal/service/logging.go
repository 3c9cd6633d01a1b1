package service

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Zafar-Sheik/roadworks-service/internal/domain/model"
	"github.com/Zafar-Sheik/roadworks-service/internal/query"
	"github.com/Zafar-Sheik/roadworks-service/internal/repository"
)

// LoggingService stores and queries request and audit log entries.
type LoggingService interface {
	// CreateLog stores a single log entry.
	CreateLog(ctx context.Context, entry *model.LogEntry) error

	// CreateLogs stores multiple log entries in bulk.
	CreateLogs(ctx context.Context, entries []*model.LogEntry) error

	// ListLogs returns entries matching the audit log filter parameters, newest first.
	ListLogs(ctx context.Context, params query.Params, opts repository.ListOptions) ([]*model.LogEntry, error)
}

// LoggingServiceImpl implements the LoggingService interface.
type LoggingServiceImpl struct {
	repo repository.LogsRepositoryInterface
}

// NewLoggingService creates a new logging service implementation.
func NewLoggingService(repo repository.LogsRepositoryInterface) LoggingService {
	return &LoggingServiceImpl{
		repo: repo,
	}
}

func (s *LoggingServiceImpl) CreateLog(ctx context.Context, entry *model.LogEntry) error {
	stamp(entry)
	return s.repo.Create(ctx, entry)
}

func (s *LoggingServiceImpl) CreateLogs(ctx context.Context, entries []*model.LogEntry) error {
	if len(entries) == 0 {
		return nil
	}
	for _, e := range entries {
		stamp(e)
	}
	return s.repo.CreateMany(ctx, entries)
}

func (s *LoggingServiceImpl) ListLogs(ctx context.Context, params query.Params, opts repository.ListOptions) ([]*model.LogEntry, error) {
	f, err := buildFilter("logs", logFilters, params)
	if err != nil {
		return nil, err
	}
	return s.repo.List(ctx, f.BSON(), opts)
}

func stamp(entry *model.LogEntry) {
	if entry.ID.IsZero() {
		entry.ID = primitive.NewObjectID()
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now().UTC()
	}
}
