package cache

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestStore_SetGet(t *testing.T) {
	s := NewStore(time.Minute)
	ctx := context.Background()

	s.Set(ctx, "players?page=0", []int{1, 2})
	got, ok := s.Get(ctx, "players?page=0")
	if !ok {
		t.Fatal("expected cache hit")
	}
	if items := got.([]int); len(items) != 2 {
		t.Fatalf("unexpected cached value %v", got)
	}

	if _, ok := s.Get(ctx, "players?page=1"); ok {
		t.Fatal("expected miss for unknown key")
	}
}

func TestStore_EntriesExpire(t *testing.T) {
	s := NewStore(10 * time.Millisecond)
	ctx := context.Background()

	s.Set(ctx, "matches?page=0", "v")
	if _, ok := s.Get(ctx, "matches?page=0"); !ok {
		t.Fatal("fresh entry must be served")
	}

	time.Sleep(20 * time.Millisecond)
	if _, ok := s.Get(ctx, "matches?page=0"); ok {
		t.Fatal("expired entry must not be served")
	}
}

func TestStore_SetTTLOverridesDefault(t *testing.T) {
	s := NewStore(10 * time.Millisecond)
	ctx := context.Background()

	s.SetTTL(ctx, "seasons?page=0", "v", time.Minute)
	time.Sleep(20 * time.Millisecond)
	if _, ok := s.Get(ctx, "seasons?page=0"); !ok {
		t.Fatal("entry with longer ttl must survive the default window")
	}
}

func TestStore_DeletePrefix(t *testing.T) {
	s := NewStore(time.Minute)
	ctx := context.Background()

	s.Set(ctx, "players?page=0", "a")
	s.Set(ctx, "players?page=1", "b")
	s.Set(ctx, "matches?page=0", "c")

	s.DeletePrefix(ctx, "players")

	if _, ok := s.Get(ctx, "players?page=0"); ok {
		t.Fatal("prefixed entry must be dropped")
	}
	if _, ok := s.Get(ctx, "players?page=1"); ok {
		t.Fatal("prefixed entry must be dropped")
	}
	if _, ok := s.Get(ctx, "matches?page=0"); !ok {
		t.Fatal("other entity's entries must survive")
	}
}

func TestStore_GetOrLoad(t *testing.T) {
	s := NewStore(time.Minute)
	ctx := context.Background()

	loads := 0
	loader := func(context.Context) (any, error) {
		loads++
		return "loaded", nil
	}

	for i := 0; i < 3; i++ {
		got, err := s.GetOrLoad(ctx, "players?page=0", loader)
		if err != nil {
			t.Fatalf("get or load: %v", err)
		}
		if got != "loaded" {
			t.Fatalf("unexpected value %v", got)
		}
	}
	if loads != 1 {
		t.Fatalf("expected a single load, got %d", loads)
	}
}

func TestStore_GetOrLoadDoesNotCacheErrors(t *testing.T) {
	s := NewStore(time.Minute)
	ctx := context.Background()

	loads := 0
	loader := func(context.Context) (any, error) {
		loads++
		if loads == 1 {
			return nil, errors.New("backend down")
		}
		return "ok", nil
	}

	if _, err := s.GetOrLoad(ctx, "k", loader); err == nil {
		t.Fatal("expected first load to fail")
	}
	got, err := s.GetOrLoad(ctx, "k", loader)
	if err != nil {
		t.Fatalf("second load: %v", err)
	}
	if got != "ok" || loads != 2 {
		t.Fatalf("failed load must not be cached: got=%v loads=%d", got, loads)
	}
}
