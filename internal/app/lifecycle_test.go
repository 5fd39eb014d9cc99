package app

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestSolveContext_AppliesTimeout(t *testing.T) {
	ctx, cancel := SolveContext(context.Background(), time.Millisecond)
	defer cancel()

	select {
	case <-ctx.Done():
	case <-time.After(time.Second):
		t.Fatal("context did not expire")
	}
	if !errors.Is(ctx.Err(), context.DeadlineExceeded) {
		t.Errorf("ctx.Err() = %v, want DeadlineExceeded", ctx.Err())
	}
}

func TestSolveContext_CancelReleasesEarly(t *testing.T) {
	ctx, cancel := SolveContext(context.Background(), time.Hour)
	cancel()

	if !errors.Is(ctx.Err(), context.Canceled) {
		t.Errorf("ctx.Err() = %v, want Canceled", ctx.Err())
	}
}

func TestSetupSignals_StopIsIdempotent(t *testing.T) {
	ctx, stop := SetupSignals(context.Background())
	if ctx.Err() != nil {
		t.Fatalf("fresh signal context already done: %v", ctx.Err())
	}
	stop()
	stop()
}
