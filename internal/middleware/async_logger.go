package middleware

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/warewise/packaging-service/internal/domain/model"
	"github.com/warewise/packaging-service/internal/logger"
	"github.com/warewise/packaging-service/internal/service"
)

// maxBatchSize bounds how many buffered entries a worker folds into one
// bulk insert.
const maxBatchSize = 16

// AsyncLoggerConfig holds configuration for the async logger.
type AsyncLoggerConfig struct {
	// BufferSize is the size of the log entry channel buffer.
	BufferSize int
	// NumWorkers is the number of worker goroutines writing logs.
	NumWorkers int
	// WriteTimeout is the timeout for one write to the database.
	WriteTimeout time.Duration
}

// DefaultAsyncLoggerConfig returns sensible defaults for the async logger.
func DefaultAsyncLoggerConfig() AsyncLoggerConfig {
	return AsyncLoggerConfig{
		BufferSize:   1000,
		NumWorkers:   4,
		WriteTimeout: 5 * time.Second,
	}
}

// AsyncLogger decouples request handling from MongoDB log writes through a
// bounded buffer and a fixed worker pool. Workers opportunistically batch
// buffered entries into bulk inserts; when the buffer is full new entries
// are dropped rather than blocking the request path.
type AsyncLogger struct {
	loggingService service.LoggingService
	entryCh        chan *model.LogEntry
	wg             sync.WaitGroup
	stopCh         chan struct{}
	writeTimeout   time.Duration

	enqueued int64
	dropped  int64
	written  int64
	errors   int64
}

// NewAsyncLogger creates a new async logger with the given configuration.
// Returns nil when no logging service is available.
func NewAsyncLogger(loggingService service.LoggingService, cfg AsyncLoggerConfig) *AsyncLogger {
	if loggingService == nil {
		return nil
	}

	al := &AsyncLogger{
		loggingService: loggingService,
		entryCh:        make(chan *model.LogEntry, cfg.BufferSize),
		stopCh:         make(chan struct{}),
		writeTimeout:   cfg.WriteTimeout,
	}

	for i := 0; i < cfg.NumWorkers; i++ {
		al.wg.Add(1)
		go al.worker()
	}

	return al
}

func (al *AsyncLogger) worker() {
	defer al.wg.Done()

	for {
		select {
		case entry, ok := <-al.entryCh:
			if !ok {
				return
			}
			al.flush(al.collect(entry))
		case <-al.stopCh:
			// Drain remaining entries before stopping
			for {
				select {
				case entry := <-al.entryCh:
					al.flush(al.collect(entry))
				default:
					return
				}
			}
		}
	}
}

// collect gathers whatever is already buffered behind first, up to
// maxBatchSize, without waiting for more.
func (al *AsyncLogger) collect(first *model.LogEntry) []*model.LogEntry {
	batch := append(make([]*model.LogEntry, 0, maxBatchSize), first)
	for len(batch) < maxBatchSize {
		select {
		case entry, ok := <-al.entryCh:
			if !ok {
				return batch
			}
			batch = append(batch, entry)
		default:
			return batch
		}
	}
	return batch
}

// flush writes a batch, using the bulk path when it holds more than one
// entry.
func (al *AsyncLogger) flush(batch []*model.LogEntry) {
	ctx, cancel := context.WithTimeout(context.Background(), al.writeTimeout)
	defer cancel()

	var err error
	if len(batch) == 1 {
		err = al.loggingService.CreateLog(ctx, batch[0])
	} else {
		err = al.loggingService.CreateLogs(ctx, batch)
	}

	if err != nil {
		atomic.AddInt64(&al.errors, int64(len(batch)))
		log := logger.Logger()
		log.Warn().Err(err).Int("batch_size", len(batch)).Msg("Failed to write async log entries")
		return
	}
	atomic.AddInt64(&al.written, int64(len(batch)))
}

// Log enqueues a log entry for async processing.
// Returns true if the entry was enqueued, false if the buffer is full.
func (al *AsyncLogger) Log(entry *model.LogEntry) bool {
	select {
	case al.entryCh <- entry:
		atomic.AddInt64(&al.enqueued, 1)
		return true
	default:
		atomic.AddInt64(&al.dropped, 1)
		return false
	}
}

// Stop shuts down the worker pool after draining pending entries.
func (al *AsyncLogger) Stop() {
	close(al.stopCh)
	al.wg.Wait()
	close(al.entryCh)
}

// Stats returns current async logger counters.
func (al *AsyncLogger) Stats() (enqueued, dropped, written, errors int64) {
	return atomic.LoadInt64(&al.enqueued),
		atomic.LoadInt64(&al.dropped),
		atomic.LoadInt64(&al.written),
		atomic.LoadInt64(&al.errors)
}

var (
	globalAsyncLogger   *AsyncLogger
	globalAsyncLoggerMu sync.RWMutex
)

// InitAsyncLogger initializes the global async logger.
// Should be called once during application startup.
func InitAsyncLogger(loggingService service.LoggingService, cfg AsyncLoggerConfig) {
	globalAsyncLoggerMu.Lock()
	defer globalAsyncLoggerMu.Unlock()

	if globalAsyncLogger != nil {
		globalAsyncLogger.Stop()
	}
	globalAsyncLogger = NewAsyncLogger(loggingService, cfg)
}

// GetAsyncLogger returns the global async logger instance.
func GetAsyncLogger() *AsyncLogger {
	globalAsyncLoggerMu.RLock()
	defer globalAsyncLoggerMu.RUnlock()
	return globalAsyncLogger
}

// StopAsyncLogger shuts down the global async logger.
func StopAsyncLogger() {
	globalAsyncLoggerMu.Lock()
	defer globalAsyncLoggerMu.Unlock()

	if globalAsyncLogger != nil {
		globalAsyncLogger.Stop()
		globalAsyncLogger = nil
	}
}
