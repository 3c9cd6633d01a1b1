package middleware

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Zafar-Sheik/roadworks-service/internal/domain/model"
	"github.com/Zafar-Sheik/roadworks-service/internal/logger"
	"github.com/Zafar-Sheik/roadworks-service/internal/service"
)

// LogSink accepts log entries for persistence without blocking the request.
type LogSink interface {
	Log(entry *model.LogEntry) bool
}

// AsyncLoggerConfig holds configuration for the async logger.
type AsyncLoggerConfig struct {
	// BufferSize is the size of the entry channel buffer.
	BufferSize int
	// NumWorkers is the number of goroutines writing batches.
	NumWorkers int
	// BatchSize caps how many entries a worker writes in one insert.
	BatchSize int
	// FlushInterval bounds how long a partial batch waits.
	FlushInterval time.Duration
	// WriteTimeout is the timeout for one batch insert.
	WriteTimeout time.Duration
}

// DefaultAsyncLoggerConfig returns the defaults used by the server.
func DefaultAsyncLoggerConfig() AsyncLoggerConfig {
	return AsyncLoggerConfig{
		BufferSize:    1000,
		NumWorkers:    2,
		BatchSize:     50,
		FlushInterval: time.Second,
		WriteTimeout:  5 * time.Second,
	}
}

// AsyncLogger is a bounded worker pool that persists log entries in batches.
// Entries are dropped, not blocked on, when the buffer is full.
type AsyncLogger struct {
	loggingService service.LoggingService
	cfg            AsyncLoggerConfig
	entryCh        chan *model.LogEntry
	stopCh         chan struct{}
	wg             sync.WaitGroup
	stopOnce       sync.Once

	enqueued atomic.Int64
	dropped  atomic.Int64
	written  atomic.Int64
	failed   atomic.Int64
}

// NewAsyncLogger starts the worker pool. It returns nil when loggingService is nil.
func NewAsyncLogger(loggingService service.LoggingService, cfg AsyncLoggerConfig) *AsyncLogger {
	if loggingService == nil {
		return nil
	}
	def := DefaultAsyncLoggerConfig()
	if cfg.BufferSize <= 0 {
		cfg.BufferSize = def.BufferSize
	}
	if cfg.NumWorkers <= 0 {
		cfg.NumWorkers = def.NumWorkers
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = def.BatchSize
	}
	if cfg.FlushInterval <= 0 {
		cfg.FlushInterval = def.FlushInterval
	}
	if cfg.WriteTimeout <= 0 {
		cfg.WriteTimeout = def.WriteTimeout
	}

	al := &AsyncLogger{
		loggingService: loggingService,
		cfg:            cfg,
		entryCh:        make(chan *model.LogEntry, cfg.BufferSize),
		stopCh:         make(chan struct{}),
	}

	for i := 0; i < cfg.NumWorkers; i++ {
		al.wg.Add(1)
		go al.worker()
	}

	return al
}

func (al *AsyncLogger) worker() {
	defer al.wg.Done()

	ticker := time.NewTicker(al.cfg.FlushInterval)
	defer ticker.Stop()

	batch := make([]*model.LogEntry, 0, al.cfg.BatchSize)
	flush := func() {
		if len(batch) == 0 {
			return
		}
		al.write(batch)
		batch = make([]*model.LogEntry, 0, al.cfg.BatchSize)
	}

	for {
		select {
		case entry := <-al.entryCh:
			batch = append(batch, entry)
			if len(batch) >= al.cfg.BatchSize {
				flush()
			}
		case <-ticker.C:
			flush()
		case <-al.stopCh:
			for {
				select {
				case entry := <-al.entryCh:
					batch = append(batch, entry)
					if len(batch) >= al.cfg.BatchSize {
						flush()
					}
				default:
					flush()
					return
				}
			}
		}
	}
}

func (al *AsyncLogger) write(batch []*model.LogEntry) {
	ctx, cancel := context.WithTimeout(context.Background(), al.cfg.WriteTimeout)
	defer cancel()

	if err := al.loggingService.CreateLogs(ctx, batch); err != nil {
		al.failed.Add(int64(len(batch)))
		log := logger.Logger()
		log.Warn().Err(err).Int("entries", len(batch)).Msg("Failed to write log batch")
		return
	}
	al.written.Add(int64(len(batch)))
}

// Log enqueues entry. It returns false when the logger is nil, stopped or full.
func (al *AsyncLogger) Log(entry *model.LogEntry) bool {
	if al == nil || entry == nil {
		return false
	}
	select {
	case <-al.stopCh:
		al.dropped.Add(1)
		return false
	default:
	}

	select {
	case al.entryCh <- entry:
		al.enqueued.Add(1)
		return true
	default:
		al.dropped.Add(1)
		return false
	}
}

// Stop drains buffered entries and waits for the workers. It is safe to call more than once.
func (al *AsyncLogger) Stop() {
	if al == nil {
		return
	}
	al.stopOnce.Do(func() {
		close(al.stopCh)
		al.wg.Wait()
	})
}

// AsyncLoggerStats is a snapshot of the logger counters.
type AsyncLoggerStats struct {
	Enqueued int64
	Dropped  int64
	Written  int64
	Failed   int64
}

// Stats returns the current counters.
func (al *AsyncLogger) Stats() AsyncLoggerStats {
	return AsyncLoggerStats{
		Enqueued: al.enqueued.Load(),
		Dropped:  al.dropped.Load(),
		Written:  al.written.Load(),
		Failed:   al.failed.Load(),
	}
}
