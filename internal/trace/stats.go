package trace

import (
	"sync"
	"time"
)

// Stats keeps a bounded ring of per-event processing durations and answers
// summary queries over the retained window. Old samples are overwritten,
// never reallocated.
type Stats struct {
	mu      sync.Mutex
	samples []time.Duration
	next    int
	filled  bool
	total   uint64
}

// NewStats returns a ring holding up to capacity samples (at least one).
func NewStats(capacity int) *Stats {
	if capacity < 1 {
		capacity = 1
	}
	return &Stats{samples: make([]time.Duration, capacity)}
}

// Record adds one sample, overwriting the oldest when the ring is full.
func (s *Stats) Record(d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.samples[s.next] = d
	s.next++
	if s.next == len(s.samples) {
		s.next = 0
		s.filled = true
	}
	s.total++
}

// Summary describes the retained window. Count is the lifetime total,
// including samples already overwritten.
type Summary struct {
	Count   uint64
	Average time.Duration
	Max     time.Duration
}

func (s *Stats) Summary() Summary {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := s.next
	if s.filled {
		n = len(s.samples)
	}
	out := Summary{Count: s.total}
	if n == 0 {
		return out
	}
	var sum time.Duration
	for _, d := range s.samples[:n] {
		sum += d
		if d > out.Max {
			out.Max = d
		}
	}
	out.Average = sum / time.Duration(n)
	return out
}
