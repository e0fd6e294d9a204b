package cache

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestStore_GetOrLoad_SingleFlight(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	var loads atomic.Int32

	loader := func(context.Context) (any, error) {
		loads.Add(1)
		time.Sleep(20 * time.Millisecond)
		return "holders", nil
	}

	const readers = 24
	start := make(chan struct{})
	errCh := make(chan error, readers)
	var wg sync.WaitGroup
	wg.Add(readers)

	for i := 0; i < readers; i++ {
		go func() {
			defer wg.Done()
			<-start
			v, err := store.GetOrLoad(context.Background(), "titles:list", loader)
			if err != nil {
				errCh <- err
				return
			}
			if got, _ := v.(string); got != "holders" {
				errCh <- fmt.Errorf("unexpected value %v", v)
			}
		}()
	}

	close(start)
	wg.Wait()
	close(errCh)
	for err := range errCh {
		t.Fatalf("concurrent load: %v", err)
	}

	if got := loads.Load(); got != 1 {
		t.Fatalf("loader ran %d times, want 1", got)
	}
}

func TestStore_GetOrLoad_ServesCachedValue(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	var loads atomic.Int32

	loader := func(context.Context) (any, error) {
		loads.Add(1)
		return "cached", nil
	}

	for i := 0; i < 3; i++ {
		if _, err := store.GetOrLoad(context.Background(), "titles:unassigned", loader); err != nil {
			t.Fatalf("GetOrLoad %d: %v", i, err)
		}
	}

	if got := loads.Load(); got != 1 {
		t.Fatalf("loader ran %d times, want 1", got)
	}
}

func TestStore_DeletePrefix(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	ctx := context.Background()

	store.Set(ctx, "titles:list", 1)
	store.Set(ctx, "titles:show:2", 2)
	store.Set(ctx, "roster:1", 3)

	store.DeletePrefix(ctx, "titles:")

	if _, ok := store.Get(ctx, "titles:list"); ok {
		t.Fatalf("prefixed key survived DeletePrefix")
	}
	if _, ok := store.Get(ctx, "titles:show:2"); ok {
		t.Fatalf("prefixed key survived DeletePrefix")
	}
	if _, ok := store.Get(ctx, "roster:1"); !ok {
		t.Fatalf("unrelated key deleted")
	}
}

func TestStore_TTLExpiry(t *testing.T) {
	t.Parallel()

	store := NewStore(10 * time.Millisecond)
	ctx := context.Background()

	store.Set(ctx, "titles:list", "v")
	if _, ok := store.Get(ctx, "titles:list"); !ok {
		t.Fatalf("fresh entry missing")
	}

	time.Sleep(25 * time.Millisecond)
	if _, ok := store.Get(ctx, "titles:list"); ok {
		t.Fatalf("expired entry still served")
	}
}
