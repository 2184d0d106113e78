package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go-intranet-app/internal/cache"
	"go-intranet-app/internal/data"
)

// boundCtx bounds a mutation by the configured backend ceiling. Reads are
// bounded inside the query cache instead.
func boundCtx(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, timeout)
}

// wrapRepoErr translates repository failures into the domain taxonomy: a
// deadline expiry becomes the timeout condition shared with the cache layer,
// a write against a nonexistent row becomes ErrNotFound. Other errors pass
// through untouched.
func wrapRepoErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", cache.ErrTimeout, err)
	}
	if errors.Is(err, data.ErrNotFound) {
		return fmt.Errorf("%w: %v", ErrNotFound, err)
	}
	return err
}
