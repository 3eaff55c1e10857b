package reservation

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestTryReserveIsExclusive(t *testing.T) {
	store := NewMemorySlotStore()
	ctx := context.Background()

	if !store.TryReserve(ctx, "slot:f1:w1", "client-a", time.Minute) {
		t.Fatal("first TryReserve = false, want true")
	}
	if store.TryReserve(ctx, "slot:f1:w1", "client-b", time.Minute) {
		t.Error("second TryReserve on same key = true, want false")
	}
	if !store.TryReserve(ctx, "slot:f1:w2", "client-b", time.Minute) {
		t.Error("TryReserve on a different key = false, want true")
	}
}

func TestTryReserveConcurrentSingleWinner(t *testing.T) {
	store := NewMemorySlotStore()
	ctx := context.Background()

	const callers = 100
	var wins int64
	var wg sync.WaitGroup
	start := make(chan struct{})
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			if store.TryReserve(ctx, "slot:f1:contested", "holder", time.Minute) {
				atomic.AddInt64(&wins, 1)
			}
		}()
	}
	close(start)
	wg.Wait()

	if wins != 1 {
		t.Errorf("concurrent TryReserve winners = %d, want exactly 1", wins)
	}
}

func TestReservationExpires(t *testing.T) {
	store := NewMemorySlotStore()
	ctx := context.Background()

	now := time.Now()
	store.now = func() time.Time { return now }

	if !store.TryReserve(ctx, "slot:f1:w1", "client-a", 10*time.Minute) {
		t.Fatal("TryReserve = false, want true")
	}

	// Just before expiry the slot is still held.
	store.now = func() time.Time { return now.Add(10*time.Minute - time.Second) }
	if store.TryReserve(ctx, "slot:f1:w1", "client-b", 10*time.Minute) {
		t.Error("TryReserve before TTL elapsed = true, want false")
	}

	// After expiry a different holder can take it.
	store.now = func() time.Time { return now.Add(10*time.Minute + time.Second) }
	if !store.TryReserve(ctx, "slot:f1:w1", "client-b", 10*time.Minute) {
		t.Error("TryReserve after TTL elapsed = false, want true")
	}
}

func TestReleaseIsIdempotentAndHolderScoped(t *testing.T) {
	store := NewMemorySlotStore()
	ctx := context.Background()

	// Releasing a key that was never reserved is a no-op.
	store.Release(ctx, "slot:f1:w1", "client-a")

	if !store.TryReserve(ctx, "slot:f1:w1", "client-a", time.Minute) {
		t.Fatal("TryReserve = false, want true")
	}

	// A different holder cannot release the reservation.
	store.Release(ctx, "slot:f1:w1", "client-b")
	if store.TryReserve(ctx, "slot:f1:w1", "client-b", time.Minute) {
		t.Error("foreign Release freed the slot")
	}

	// The actual holder can, repeatedly.
	store.Release(ctx, "slot:f1:w1", "client-a")
	store.Release(ctx, "slot:f1:w1", "client-a")
	if !store.TryReserve(ctx, "slot:f1:w1", "client-b", time.Minute) {
		t.Error("TryReserve after release = false, want true")
	}
}

func TestSlotKeyNormalization(t *testing.T) {
	start := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)

	got := SlotKey("fl-42", start, end)
	want := "slot:fl-42:2025-06-01T09:00:00Z-2025-06-01T10:00:00Z"
	if got != want {
		t.Errorf("SlotKey = %q, want %q", got, want)
	}

	// The same instant in another zone produces the same key.
	loc := time.FixedZone("UTC+3", 3*60*60)
	if SlotKey("fl-42", start.In(loc), end.In(loc)) != want {
		t.Error("SlotKey is not timezone-normalized")
	}
}
