package limiter

import (
	"context"
	"testing"
	"time"
)

func TestMemoryStore_EnforcesLimit(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		ok, err := store.Allow(ctx, "client", 3, time.Minute)
		if err != nil {
			t.Fatalf("Allow failed: %v", err)
		}
		if !ok {
			t.Fatalf("request %d should be allowed", i+1)
		}
	}

	ok, err := store.Allow(ctx, "client", 3, time.Minute)
	if err != nil {
		t.Fatalf("Allow failed: %v", err)
	}
	if ok {
		t.Error("fourth request should be refused")
	}
}

func TestMemoryStore_KeysAreIndependent(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	if ok, _ := store.Allow(ctx, "a", 1, time.Minute); !ok {
		t.Fatal("first hit for a should pass")
	}
	if ok, _ := store.Allow(ctx, "a", 1, time.Minute); ok {
		t.Error("a is over its limit")
	}
	if ok, _ := store.Allow(ctx, "b", 1, time.Minute); !ok {
		t.Error("b has its own bucket")
	}
}

func TestMemoryStore_WindowResets(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	window := 10 * time.Millisecond
	if ok, _ := store.Allow(ctx, "client", 1, window); !ok {
		t.Fatal("first hit should pass")
	}
	if ok, _ := store.Allow(ctx, "client", 1, window); ok {
		t.Fatal("second hit inside the window should be refused")
	}

	time.Sleep(2 * window)

	if ok, _ := store.Allow(ctx, "client", 1, window); !ok {
		t.Error("hit after the window elapsed should pass")
	}
}
