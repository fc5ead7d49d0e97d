package resilience

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestSingleFlight_JoinersShareInFlightCall(t *testing.T) {
	var g SingleFlight
	var executions atomic.Int32

	started := make(chan struct{})
	release := make(chan struct{})

	fn := func() (any, error) {
		executions.Add(1)
		close(started)
		<-release
		return "page", nil
	}

	winnerDone := make(chan struct{})
	go func() {
		defer close(winnerDone)
		val, err, _ := g.Do(context.Background(), "players?page=0", fn)
		if err != nil || val != "page" {
			t.Errorf("winner got (%v, %v)", val, err)
		}
	}()
	<-started

	const joiners = 4
	var wg sync.WaitGroup
	sharedCount := atomic.Int32{}
	for i := 0; i < joiners; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			val, err, shared := g.Do(context.Background(), "players?page=0", fn)
			if err != nil || val != "page" {
				t.Errorf("joiner got (%v, %v)", val, err)
			}
			if shared {
				sharedCount.Add(1)
			}
		}()
	}

	// Let the joiners reach the in-flight call before releasing it.
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()
	<-winnerDone

	if executions.Load() != 1 {
		t.Fatalf("expected a single execution, got %d", executions.Load())
	}
	if sharedCount.Load() != joiners {
		t.Fatalf("expected %d shared calls, got %d", joiners, sharedCount.Load())
	}
}

func TestSingleFlight_DistinctKeysRunIndependently(t *testing.T) {
	var g SingleFlight
	var executions atomic.Int32

	fn := func() (any, error) {
		executions.Add(1)
		return nil, nil
	}

	ctx := context.Background()
	if _, _, sharedCall := g.Do(ctx, "players?page=0", fn); sharedCall {
		t.Fatal("first call cannot be shared")
	}
	if _, _, sharedCall := g.Do(ctx, "players?page=1", fn); sharedCall {
		t.Fatal("different key cannot be shared")
	}
	if executions.Load() != 2 {
		t.Fatalf("expected 2 executions, got %d", executions.Load())
	}
}

func TestSingleFlight_JoinerStopsWaitingWhenCanceled(t *testing.T) {
	var g SingleFlight

	started := make(chan struct{})
	release := make(chan struct{})
	fn := func() (any, error) {
		close(started)
		<-release
		return "page", nil
	}

	winnerDone := make(chan struct{})
	go func() {
		defer close(winnerDone)
		if _, err, _ := g.Do(context.Background(), "matches?page=0", fn); err != nil {
			t.Errorf("winner got %v", err)
		}
	}()
	<-started

	ctx, cancel := context.WithCancel(context.Background())
	joinerDone := make(chan struct{})
	go func() {
		defer close(joinerDone)
		_, err, shared := g.Do(ctx, "matches?page=0", fn)
		if !errors.Is(err, context.Canceled) {
			t.Errorf("canceled joiner got %v", err)
		}
		if !shared {
			t.Error("joiner must report the shared call it abandoned")
		}
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case <-joinerDone:
	case <-time.After(time.Second):
		t.Fatal("canceled joiner must not wait for the winner")
	}

	close(release)
	<-winnerDone
}

func TestSingleFlight_WinnerCancellationDoesNotPoisonJoiner(t *testing.T) {
	var g SingleFlight
	var executions atomic.Int32

	started := make(chan struct{})
	release := make(chan struct{})
	fn := func() (any, error) {
		if executions.Add(1) == 1 {
			close(started)
			<-release
			return nil, context.Canceled
		}
		return "page", nil
	}

	winnerErr := make(chan error, 1)
	go func() {
		_, err, _ := g.Do(context.Background(), "players?page=0", fn)
		winnerErr <- err
	}()
	<-started

	joinerDone := make(chan struct{})
	go func() {
		defer close(joinerDone)
		val, err, _ := g.Do(context.Background(), "players?page=0", fn)
		if err != nil || val != "page" {
			t.Errorf("joiner got (%v, %v)", val, err)
		}
	}()

	// Let the joiner attach to the in-flight call before it fails.
	time.Sleep(50 * time.Millisecond)
	close(release)
	<-joinerDone

	if err := <-winnerErr; !errors.Is(err, context.Canceled) {
		t.Fatalf("winner must see its own cancellation, got %v", err)
	}
	if executions.Load() != 2 {
		t.Fatalf("joiner must rerun the call, got %d executions", executions.Load())
	}
}
