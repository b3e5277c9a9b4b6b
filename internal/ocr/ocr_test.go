package ocr

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

type fakeEngine struct {
	name   string
	result Result
	err    error
	calls  atomic.Int64
	delay  time.Duration
}

func (f *fakeEngine) Name() string { return f.name }
func (f *fakeEngine) Recognize(ctx context.Context, image []byte) (Result, error) {
	f.calls.Add(1)
	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return Result{}, ctx.Err()
		}
	}
	return f.result, f.err
}

func TestFailoverPrefersPrimary(t *testing.T) {
	primary := &fakeEngine{name: "primary", result: Result{Text: "from primary"}}
	secondary := &fakeEngine{name: "secondary", result: Result{Text: "from secondary"}}
	f := NewFailoverEngine(primary, secondary, nil)

	res, err := f.Recognize(context.Background(), []byte("img"))
	if err != nil {
		t.Fatalf("Recognize() error = %v", err)
	}
	if res.Text != "from primary" {
		t.Fatalf("Text = %q, want primary result", res.Text)
	}
	if secondary.calls.Load() != 0 {
		t.Fatalf("secondary consulted on healthy primary")
	}
}

func TestFailoverFallsBackOnPrimaryError(t *testing.T) {
	primary := &fakeEngine{name: "primary", err: errors.New("backend down")}
	secondary := &fakeEngine{name: "secondary", result: Result{Text: "from secondary"}}
	f := NewFailoverEngine(primary, secondary, nil)

	res, err := f.Recognize(context.Background(), []byte("img"))
	if err != nil {
		t.Fatalf("Recognize() error = %v", err)
	}
	if res.Text != "from secondary" {
		t.Fatalf("Text = %q, want secondary result", res.Text)
	}
}

func TestFailoverReportsBothFailures(t *testing.T) {
	primary := &fakeEngine{name: "primary", err: errors.New("down")}
	secondary := &fakeEngine{name: "secondary", err: errors.New("also down")}
	f := NewFailoverEngine(primary, secondary, nil)

	if _, err := f.Recognize(context.Background(), []byte("img")); err == nil {
		t.Fatalf("expected combined failure, got nil")
	}
}

func TestFailoverDoesNotRetryOnCancellation(t *testing.T) {
	primary := &fakeEngine{name: "primary", delay: time.Second}
	secondary := &fakeEngine{name: "secondary", result: Result{Text: "x"}}
	f := NewFailoverEngine(primary, secondary, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	if _, err := f.Recognize(ctx, []byte("img")); err == nil {
		t.Fatalf("expected context error")
	}
	if secondary.calls.Load() != 0 {
		t.Fatalf("secondary must not run after caller cancellation")
	}
}

func TestGateBoundsConcurrency(t *testing.T) {
	const slots = 2

	var inFlight, peak atomic.Int64
	g := NewGate(engineFunc(func(ctx context.Context, image []byte) (Result, error) {
		cur := inFlight.Add(1)
		for {
			p := peak.Load()
			if cur <= p || peak.CompareAndSwap(p, cur) {
				break
			}
		}
		time.Sleep(5 * time.Millisecond)
		inFlight.Add(-1)
		return Result{}, nil
	}), slots)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := g.Recognize(context.Background(), []byte("img")); err != nil {
				t.Errorf("Recognize() error = %v", err)
			}
		}()
	}
	wg.Wait()

	if p := peak.Load(); p > slots {
		t.Fatalf("observed %d concurrent calls, gate bound is %d", p, slots)
	}
}

func TestGateHonorsCancelledContext(t *testing.T) {
	g := NewGate(&fakeEngine{name: "inner", delay: time.Second}, 1)

	// occupy the single slot
	go func() { _, _ = g.Recognize(context.Background(), []byte("img")) }()
	time.Sleep(10 * time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := g.Recognize(ctx, []byte("img")); err == nil {
		t.Fatalf("expected error acquiring slot with cancelled context")
	}
}

// engineFunc adapts a bare function to the Engine contract for tests.
type engineFunc func(ctx context.Context, image []byte) (Result, error)

func (engineFunc) Name() string { return "func" }
func (f engineFunc) Recognize(ctx context.Context, image []byte) (Result, error) {
	return f(ctx, image)
}
