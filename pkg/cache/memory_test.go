package cache

import (
	"context"
	"testing"
	"time"
)

func TestMemory_GetMiss(t *testing.T) {
	m := NewMemory(time.Minute)

	_, ok, err := m.Get(context.Background(), "absent")
	if err != nil {
		t.Fatalf("Get() error = %v, want nil", err)
	}
	if ok {
		t.Error("Get() reported a hit for an absent key")
	}
}

func TestMemory_SetGet(t *testing.T) {
	m := NewMemory(time.Minute)
	ctx := context.Background()

	if err := m.Set(ctx, "k", []byte("v")); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	got, ok, err := m.Get(ctx, "k")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if !ok {
		t.Fatal("Get() reported a miss for a fresh entry")
	}
	if string(got) != "v" {
		t.Errorf("Get() = %q, want %q", got, "v")
	}
}

func TestMemory_LazyExpiry(t *testing.T) {
	m := NewMemory(time.Minute)
	ctx := context.Background()

	now := time.Now()
	m.now = func() time.Time { return now }

	if err := m.Set(ctx, "k", []byte("v")); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	// Exactly at the TTL boundary the entry is still visible.
	now = now.Add(time.Minute)
	if _, ok, _ := m.Get(ctx, "k"); !ok {
		t.Error("Get() at TTL boundary reported a miss, want hit")
	}

	// Past the boundary it is indistinguishable from absent and purged.
	now = now.Add(time.Second)
	if _, ok, _ := m.Get(ctx, "k"); ok {
		t.Error("Get() past TTL reported a hit, want miss")
	}

	size, _ := m.Size(ctx)
	if size != 0 {
		t.Errorf("Size() after expired read = %d, want 0", size)
	}
}

func TestMemory_OverwriteResetsClock(t *testing.T) {
	m := NewMemory(time.Minute)
	ctx := context.Background()

	now := time.Now()
	m.now = func() time.Time { return now }

	m.Set(ctx, "k", []byte("old"))

	// Half the TTL later, overwrite. The clock restarts from here.
	now = now.Add(30 * time.Second)
	m.Set(ctx, "k", []byte("new"))

	// 50s after the overwrite the original deadline has long passed, but
	// the entry must still be live.
	now = now.Add(50 * time.Second)
	got, ok, _ := m.Get(ctx, "k")
	if !ok {
		t.Fatal("Get() after overwrite reported a miss, want hit")
	}
	if string(got) != "new" {
		t.Errorf("Get() = %q, want %q", got, "new")
	}
}

func TestMemory_SizeIncludesExpired(t *testing.T) {
	m := NewMemory(time.Minute)
	ctx := context.Background()

	now := time.Now()
	m.now = func() time.Time { return now }

	m.Set(ctx, "a", []byte("1"))
	m.Set(ctx, "b", []byte("2"))

	now = now.Add(2 * time.Minute)

	// Both entries are expired but unread; Size still counts them.
	size, _ := m.Size(ctx)
	if size != 2 {
		t.Errorf("Size() = %d, want 2 (expiry is lazy)", size)
	}

	// Reading one purges only that key.
	m.Get(ctx, "a")
	size, _ = m.Size(ctx)
	if size != 1 {
		t.Errorf("Size() after one expired read = %d, want 1", size)
	}
}

func TestMemory_Clear(t *testing.T) {
	m := NewMemory(time.Minute)
	ctx := context.Background()

	m.Set(ctx, "a", []byte("1"))
	m.Set(ctx, "b", []byte("2"))

	if err := m.Clear(ctx); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}

	size, _ := m.Size(ctx)
	if size != 0 {
		t.Errorf("Size() after Clear = %d, want 0", size)
	}
	if _, ok, _ := m.Get(ctx, "a"); ok {
		t.Error("Get() after Clear reported a hit")
	}
}

func TestMemory_ConcurrentAccess(t *testing.T) {
	m := NewMemory(time.Minute)
	ctx := context.Background()

	done := make(chan struct{})
	for i := 0; i < 8; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			for j := 0; j < 100; j++ {
				m.Set(ctx, "shared", []byte("v"))
				m.Get(ctx, "shared")
				m.Size(ctx)
			}
		}()
	}
	for i := 0; i < 8; i++ {
		<-done
	}

	if _, ok, _ := m.Get(ctx, "shared"); !ok {
		t.Error("Get() after concurrent writes reported a miss")
	}
}
