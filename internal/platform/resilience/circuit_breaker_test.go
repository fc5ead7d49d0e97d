package resilience

import (
	"errors"
	"testing"
	"time"
)

func TestCircuitBreaker_OpensAfterThreshold(t *testing.T) {
	b := NewCircuitBreaker(CircuitBreakerConfig{FailureThreshold: 3, OpenTimeout: 10 * time.Second, HalfOpenMaxReq: 1})

	now := time.Date(2026, 8, 1, 18, 0, 0, 0, time.UTC)
	b.now = func() time.Time { return now }

	for i := 0; i < 2; i++ {
		b.RecordFailure()
	}
	if state := b.State(); state != CircuitStateClosed {
		t.Fatalf("state below threshold = %s, want closed", state)
	}

	b.RecordFailure()
	if state := b.State(); state != CircuitStateOpen {
		t.Fatalf("state at threshold = %s, want open", state)
	}
	if err := b.Allow(); !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("open breaker must reject, got %v", err)
	}
}

func TestCircuitBreaker_SuccessResetsFailureStreak(t *testing.T) {
	b := NewCircuitBreaker(CircuitBreakerConfig{FailureThreshold: 2, OpenTimeout: 10 * time.Second, HalfOpenMaxReq: 1})

	b.RecordFailure()
	b.RecordSuccess()
	b.RecordFailure()

	if state := b.State(); state != CircuitStateClosed {
		t.Fatalf("interleaved success must reset the streak, state = %s", state)
	}
}

func TestCircuitBreaker_HalfOpenProbeClosesOnSuccess(t *testing.T) {
	b := NewCircuitBreaker(CircuitBreakerConfig{FailureThreshold: 1, OpenTimeout: 5 * time.Second, HalfOpenMaxReq: 1})

	now := time.Date(2026, 8, 1, 18, 0, 0, 0, time.UTC)
	b.now = func() time.Time { return now }

	b.RecordFailure()
	if err := b.Allow(); !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("expected rejection while open, got %v", err)
	}

	now = now.Add(6 * time.Second)
	if err := b.Allow(); err != nil {
		t.Fatalf("probe after open timeout must pass, got %v", err)
	}
	if state := b.State(); state != CircuitStateHalfOpen {
		t.Fatalf("state = %s, want half_open", state)
	}

	b.RecordSuccess()
	if state := b.State(); state != CircuitStateClosed {
		t.Fatalf("state after successful probe = %s, want closed", state)
	}
}

func TestCircuitBreaker_HalfOpenFailureReopens(t *testing.T) {
	b := NewCircuitBreaker(CircuitBreakerConfig{FailureThreshold: 1, OpenTimeout: 5 * time.Second, HalfOpenMaxReq: 2})

	now := time.Date(2026, 8, 1, 18, 0, 0, 0, time.UTC)
	b.now = func() time.Time { return now }

	b.RecordFailure()
	now = now.Add(6 * time.Second)
	if err := b.Allow(); err != nil {
		t.Fatalf("probe must pass, got %v", err)
	}

	b.RecordFailure()
	if err := b.Allow(); !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("failed probe must reopen the breaker, got %v", err)
	}
}

func TestCircuitBreaker_HalfOpenLimitsProbes(t *testing.T) {
	b := NewCircuitBreaker(CircuitBreakerConfig{FailureThreshold: 1, OpenTimeout: 5 * time.Second, HalfOpenMaxReq: 1})

	now := time.Date(2026, 8, 1, 18, 0, 0, 0, time.UTC)
	b.now = func() time.Time { return now }

	b.RecordFailure()
	now = now.Add(6 * time.Second)

	if err := b.Allow(); err != nil {
		t.Fatalf("first probe must pass, got %v", err)
	}
	if err := b.Allow(); !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("second concurrent probe must be rejected, got %v", err)
	}
}

func TestCircuitBreaker_FailureWhileOpenExtendsWindow(t *testing.T) {
	b := NewCircuitBreaker(CircuitBreakerConfig{FailureThreshold: 1, OpenTimeout: 5 * time.Second, HalfOpenMaxReq: 1})

	now := time.Date(2026, 8, 1, 18, 0, 0, 0, time.UTC)
	b.now = func() time.Time { return now }

	b.RecordFailure()

	// A straggling retry fails 4s into the 5s window; the window restarts.
	now = now.Add(4 * time.Second)
	b.RecordFailure()

	now = now.Add(3 * time.Second)
	if err := b.Allow(); !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("extended window must still reject, got %v", err)
	}

	now = now.Add(3 * time.Second)
	if err := b.Allow(); err != nil {
		t.Fatalf("probe after the extended window must pass, got %v", err)
	}
}

func TestCircuitBreaker_ZeroConfigGetsDefaults(t *testing.T) {
	b := NewCircuitBreaker(CircuitBreakerConfig{})
	defaults := DefaultCircuitBreakerConfig()

	for i := 0; i < defaults.FailureThreshold-1; i++ {
		b.RecordFailure()
	}
	if state := b.State(); state != CircuitStateClosed {
		t.Fatalf("state below default threshold = %s, want closed", state)
	}
	b.RecordFailure()
	if state := b.State(); state != CircuitStateOpen {
		t.Fatalf("state at default threshold = %s, want open", state)
	}
}

func TestNormalizeCircuitBreakerConfig_FillsDefaults(t *testing.T) {
	cfg := NormalizeCircuitBreakerConfig(CircuitBreakerConfig{Enabled: true})
	defaults := DefaultCircuitBreakerConfig()

	if cfg.FailureThreshold != defaults.FailureThreshold {
		t.Fatalf("failure threshold = %d, want %d", cfg.FailureThreshold, defaults.FailureThreshold)
	}
	if cfg.OpenTimeout != defaults.OpenTimeout {
		t.Fatalf("open timeout = %s, want %s", cfg.OpenTimeout, defaults.OpenTimeout)
	}
	if cfg.HalfOpenMaxReq != defaults.HalfOpenMaxReq {
		t.Fatalf("half-open max = %d, want %d", cfg.HalfOpenMaxReq, defaults.HalfOpenMaxReq)
	}
}
