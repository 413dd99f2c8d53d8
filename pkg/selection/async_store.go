package selection

import (
	"context"
	"errors"
	"sync"
	"time"

	"swimtrack-be/internal/pkg/logger"
)

var (
	ErrWriteQueueFull = errors.New("selection write queue full")
	ErrStoreClosed    = errors.New("selection store closed")
)

const writeTimeout = 5 * time.Second

type writeOp struct {
	data   []byte
	delete bool
}

// AsyncStore wraps a Store so Save and Delete return immediately. Writes are
// applied in issue order by a single goroutine; failures are logged only.
type AsyncStore struct {
	inner  Store
	logger logger.ILogger

	mu     sync.Mutex
	closed bool
	queue  chan writeOp
	done   chan struct{}
}

func NewAsyncStore(inner Store, buffer int, log logger.ILogger) *AsyncStore {
	if buffer <= 0 {
		buffer = 64
	}
	s := &AsyncStore{
		inner:  inner,
		logger: log,
		queue:  make(chan writeOp, buffer),
		done:   make(chan struct{}),
	}
	go s.run()
	return s
}

func (s *AsyncStore) run() {
	defer close(s.done)
	for op := range s.queue {
		ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
		var err error
		if op.delete {
			err = s.inner.Delete(ctx)
		} else {
			err = s.inner.Save(ctx, op.data)
		}
		cancel()
		if err != nil {
			s.logger.Error("Selection", "Failed to write selection snapshot", map[string]interface{}{
				"error":  err.Error(),
				"delete": op.delete,
			})
		}
	}
}

// Load reads through to the wrapped store synchronously.
func (s *AsyncStore) Load(ctx context.Context) ([]byte, error) {
	return s.inner.Load(ctx)
}

func (s *AsyncStore) Save(_ context.Context, data []byte) error {
	return s.enqueue(writeOp{data: data})
}

func (s *AsyncStore) Delete(_ context.Context) error {
	return s.enqueue(writeOp{delete: true})
}

func (s *AsyncStore) enqueue(op writeOp) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrStoreClosed
	}
	select {
	case s.queue <- op:
		return nil
	default:
		return ErrWriteQueueFull
	}
}

// Close stops accepting writes and blocks until queued writes are applied.
func (s *AsyncStore) Close() {
	s.mu.Lock()
	if !s.closed {
		s.closed = true
		close(s.queue)
	}
	s.mu.Unlock()
	<-s.done
}
