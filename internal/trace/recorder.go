// Package trace persists interaction decisions so gesture thresholds can be
// tuned against real usage instead of guesswork.
package trace

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/tobyns/momentum/internal/database/repository"
)

const eventBuffer = 128

// Recorder appends gesture and visibility decisions to the trace store on a
// background goroutine. The UI path never blocks: when the buffer is full
// the event is dropped.
type Recorder struct {
	repo  *repository.TraceRepo
	log   *zap.Logger
	stats *Stats

	mu     sync.Mutex
	closed bool
	events chan repository.TraceEvent
	done   chan struct{}
}

// NewRecorder wires a recorder. log may be nil; stats may be nil when no
// summary is wanted.
func NewRecorder(repo *repository.TraceRepo, log *zap.Logger, stats *Stats) *Recorder {
	if log == nil {
		log = zap.NewNop()
	}
	return &Recorder{
		repo:   repo,
		log:    log,
		stats:  stats,
		events: make(chan repository.TraceEvent, eventBuffer),
		done:   make(chan struct{}),
	}
}

// Start begins draining events. Call once.
func (r *Recorder) Start(ctx context.Context) {
	go r.loop(ctx)
}

func (r *Recorder) loop(ctx context.Context) {
	defer close(r.done)
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-r.events:
			if !ok {
				return
			}
			start := time.Now()
			if err := r.repo.Insert(ctx, ev); err != nil {
				r.log.Warn("trace insert failed", zap.Error(err))
				continue
			}
			if r.stats != nil {
				r.stats.Record(time.Since(start))
			}
		}
	}
}

// Swipe records the outcome of a completed gesture.
func (r *Recorder) Swipe(dest string, navigated bool) {
	r.push("swipe", fmt.Sprintf(`{"dest":%q,"navigated":%v}`, dest, navigated))
}

// Visibility records a chrome visibility flip at the given scroll position.
func (r *Recorder) Visibility(visible bool, pos float64) {
	r.push("scroll", fmt.Sprintf(`{"visible":%v,"pos":%.0f}`, visible, pos))
}

func (r *Recorder) push(kind, detail string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return
	}
	ev := repository.TraceEvent{
		ID:     uuid.NewString(),
		Kind:   kind,
		Detail: detail,
		At:     time.Now().UTC(),
	}
	select {
	case r.events <- ev:
	default:
		// full buffer: the UI path must not wait on sqlite
	}
}

// Close stops accepting events and waits for the drain loop to finish.
func (r *Recorder) Close() {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return
	}
	r.closed = true
	close(r.events)
	r.mu.Unlock()
	<-r.done
}
