package scheduler

import (
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/affu-79/PII-SENTINEL-BACKEND-sub002/constants"
)

// batch aggregates counters across every job of one batch. The integer
// counters are updated via atomic increment; the category map takes its own
// small lock because map writes cannot be atomic.
type batch struct {
	id        uuid.UUID
	total     atomic.Int64
	succeeded atomic.Int64
	failed    atomic.Int64
	cancelled atomic.Int64
	inFlight  atomic.Int64

	mu         sync.Mutex
	byCategory map[constants.PIICategory]int
}

func newBatch(id uuid.UUID) *batch {
	return &batch{id: id, byCategory: make(map[constants.PIICategory]int)}
}

func (b *batch) addCategory(c constants.PIICategory, n int) {
	b.mu.Lock()
	b.byCategory[c] += n
	b.mu.Unlock()
}

// BatchAnalysis is the externally visible aggregate for one batch.
type BatchAnalysis struct {
	BatchID    uuid.UUID                     `json:"batch_id"`
	Total      int                           `json:"total"`
	Succeeded  int                           `json:"succeeded"`
	Failed     int                           `json:"failed"`
	Cancelled  int                           `json:"cancelled"`
	InFlight   int                           `json:"in_flight"`
	ByCategory map[constants.PIICategory]int `json:"by_category"`
}

func (b *batch) analysis() BatchAnalysis {
	b.mu.Lock()
	cats := make(map[constants.PIICategory]int, len(b.byCategory))
	for k, v := range b.byCategory {
		cats[k] = v
	}
	b.mu.Unlock()
	return BatchAnalysis{
		BatchID:    b.id,
		Total:      int(b.total.Load()),
		Succeeded:  int(b.succeeded.Load()),
		Failed:     int(b.failed.Load()),
		Cancelled:  int(b.cancelled.Load()),
		InFlight:   int(b.inFlight.Load()),
		ByCategory: cats,
	}
}
