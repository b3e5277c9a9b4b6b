package ocr

import (
	"context"

	"golang.org/x/sync/semaphore"
)

// Gate serializes access to a shared OCR backend through a weighted
// semaphore. Each Recognize call acquires one slot and releases it on every
// exit path, so backend contention is bounded no matter how many pipeline
// workers run.
type Gate struct {
	engine Engine
	sem    *semaphore.Weighted
}

func NewGate(engine Engine, slots int64) *Gate {
	if slots <= 0 {
		slots = 1
	}
	return &Gate{engine: engine, sem: semaphore.NewWeighted(slots)}
}

func (g *Gate) Name() string { return g.engine.Name() }

func (g *Gate) Recognize(ctx context.Context, image []byte) (Result, error) {
	if err := g.sem.Acquire(ctx, 1); err != nil {
		return Result{}, err
	}
	defer g.sem.Release(1)
	return g.engine.Recognize(ctx, image)
}
