package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/heygogu/car-rental/internal/models"
)

const defaultOperationTimeout = 5 * time.Second

func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		d = defaultOperationTimeout
	}
	return context.WithTimeout(ctx, d)
}

// mapTimeout turns an exceeded deadline into models.ErrUnavailable so the
// caller can retry. Other errors are returned as is.
func mapTimeout(err error) error {
	if err != nil && errors.Is(err, context.DeadlineExceeded) && !errors.Is(err, models.ErrUnavailable) {
		return fmt.Errorf("%w: %w", models.ErrUnavailable, err)
	}
	return err
}
