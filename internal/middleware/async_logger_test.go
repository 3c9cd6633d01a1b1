package middleware

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Zafar-Sheik/roadworks-service/internal/domain/model"
	"github.com/Zafar-Sheik/roadworks-service/internal/mocks"
)

func TestNewAsyncLogger_NilService(t *testing.T) {
	al := NewAsyncLogger(nil, DefaultAsyncLoggerConfig())
	assert.Nil(t, al)
	assert.False(t, al.Log(&model.LogEntry{}))
	al.Stop()
}

func TestAsyncLogger_BatchesAndDrainsOnStop(t *testing.T) {
	svc := new(mocks.MockLoggingService)
	var written []*model.LogEntry
	svc.On("CreateLogs", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			written = append(written, args.Get(1).([]*model.LogEntry)...)
		}).
		Return(nil)

	al := NewAsyncLogger(svc, AsyncLoggerConfig{
		BufferSize:    10,
		NumWorkers:    1,
		BatchSize:     3,
		FlushInterval: time.Hour,
		WriteTimeout:  time.Second,
	})

	for i := 0; i < 5; i++ {
		assert.True(t, al.Log(&model.LogEntry{Message: "HTTP request"}))
	}
	al.Stop()

	assert.Len(t, written, 5)
	stats := al.Stats()
	assert.Equal(t, int64(5), stats.Enqueued)
	assert.Equal(t, int64(5), stats.Written)
	assert.Equal(t, int64(0), stats.Failed)
	assert.False(t, al.Log(&model.LogEntry{}), "stopped logger rejects entries")
	al.Stop()
}

func TestAsyncLogger_FlushInterval(t *testing.T) {
	svc := new(mocks.MockLoggingService)
	done := make(chan struct{})
	svc.On("CreateLogs", mock.Anything, mock.Anything).
		Run(func(mock.Arguments) { close(done) }).
		Return(nil).Once()

	al := NewAsyncLogger(svc, AsyncLoggerConfig{
		BufferSize:    10,
		NumWorkers:    1,
		BatchSize:     100,
		FlushInterval: 10 * time.Millisecond,
	})
	defer al.Stop()

	al.Log(&model.LogEntry{Message: "partial batch"})

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("partial batch was not flushed")
	}
}

func TestAsyncLogger_CountsFailures(t *testing.T) {
	svc := new(mocks.MockLoggingService)
	svc.On("CreateLogs", mock.Anything, mock.Anything).Return(errors.New("insert failed"))

	al := NewAsyncLogger(svc, AsyncLoggerConfig{BufferSize: 4, NumWorkers: 1, BatchSize: 2, FlushInterval: time.Hour})
	al.Log(&model.LogEntry{})
	al.Log(&model.LogEntry{})
	al.Stop()

	assert.Equal(t, int64(2), al.Stats().Failed)
	assert.Equal(t, int64(0), al.Stats().Written)
}

func TestAsyncLogger_DropsWhenFull(t *testing.T) {
	svc := new(mocks.MockLoggingService)
	block := make(chan struct{})
	svc.On("CreateLogs", mock.Anything, mock.Anything).
		Run(func(mock.Arguments) { <-block }).
		Return(nil)

	al := NewAsyncLogger(svc, AsyncLoggerConfig{BufferSize: 1, NumWorkers: 1, BatchSize: 1, FlushInterval: time.Hour})

	accepted := 0
	for i := 0; i < 10; i++ {
		if al.Log(&model.LogEntry{}) {
			accepted++
		}
	}
	close(block)
	al.Stop()

	assert.Less(t, accepted, 10)
	assert.Equal(t, int64(10-accepted), al.Stats().Dropped)
}
