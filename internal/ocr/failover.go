package ocr

import (
	"context"
	"fmt"
	"log/slog"
)

// FailoverEngine tries the primary backend and falls back to the secondary
// when the primary returns an error. Substitution happens per call, so a
// flaky primary degrades gracefully without changing pipeline contracts.
type FailoverEngine struct {
	primary   Engine
	secondary Engine
	logger    *slog.Logger
}

func NewFailoverEngine(primary, secondary Engine, logger *slog.Logger) *FailoverEngine {
	if logger == nil {
		logger = slog.Default()
	}
	return &FailoverEngine{primary: primary, secondary: secondary, logger: logger}
}

func (f *FailoverEngine) Name() string {
	return fmt.Sprintf("failover(%s,%s)", f.primary.Name(), f.secondary.Name())
}

func (f *FailoverEngine) Recognize(ctx context.Context, image []byte) (Result, error) {
	res, err := f.primary.Recognize(ctx, image)
	if err == nil {
		return res, nil
	}
	if ctx.Err() != nil {
		// cancellation is the caller's timeout, not a backend fault
		return Result{}, err
	}
	f.logger.Warn("primary ocr backend failed, switching to secondary",
		"primary", f.primary.Name(), "secondary", f.secondary.Name(), "error", err)
	res, err2 := f.secondary.Recognize(ctx, image)
	if err2 != nil {
		return Result{}, fmt.Errorf("both backends failed: %v; %w", err, err2)
	}
	return res, nil
}
