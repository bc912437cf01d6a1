// Package latency simula la demora de red de los mocks.
package latency

import (
	"context"
	"time"
)

// Sleep espera d o hasta que ctx se cancele. d <= 0 no espera.
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
