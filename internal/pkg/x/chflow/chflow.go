// Package chflow provides context-aware flow helpers so that blocking
// steps respect cancellation and deadlines via context.Context.
package chflow

import (
	"context"
	"time"
)

// Sleep pauses for d or until ctx is done, whichever happens first.
// It returns false if the pause was interrupted by the context.
func Sleep(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
