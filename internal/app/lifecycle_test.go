package app

import (
	"context"
	"errors"
	"testing"
	"time"
)

// TestSetupContext verifies the timeout propagation.
func TestSetupContext(t *testing.T) {
	t.Parallel()
	ctx, cancel := SetupContext(context.Background(), 10*time.Millisecond)
	defer cancel()

	if _, ok := ctx.Deadline(); !ok {
		t.Fatal("context should carry a deadline")
	}

	select {
	case <-ctx.Done():
	case <-time.After(time.Second):
		t.Fatal("context never expired")
	}
	if !errors.Is(ctx.Err(), context.DeadlineExceeded) {
		t.Errorf("ctx.Err() = %v, want DeadlineExceeded", ctx.Err())
	}
}

// TestSetupLifecycle verifies the combined timeout and signal context plus
// idempotent cleanup.
func TestSetupLifecycle(t *testing.T) {
	t.Parallel()
	ctx, cancels := SetupLifecycle(context.Background(), time.Minute)

	if ctx.Err() != nil {
		t.Fatalf("fresh context should be live, got %v", ctx.Err())
	}
	if cancels.CancelTimeout == nil || cancels.StopSignals == nil {
		t.Fatal("both cancel functions should be populated")
	}

	cancels.Cleanup()
	if !errors.Is(ctx.Err(), context.Canceled) {
		t.Errorf("ctx.Err() after cleanup = %v, want Canceled", ctx.Err())
	}
	// Cleanup must tolerate being called twice (defer plus explicit call).
	cancels.Cleanup()
}

// TestCancelFuncs_NilSafe verifies Cleanup on a zero value.
func TestCancelFuncs_NilSafe(t *testing.T) {
	t.Parallel()
	(&CancelFuncs{}).Cleanup()
}
