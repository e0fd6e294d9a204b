package resilience

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestSingleFlight_CollapsesConcurrentCalls(t *testing.T) {
	var (
		group SingleFlight
		calls atomic.Int64
	)

	const workers = 16

	var wg sync.WaitGroup
	start := make(chan struct{})
	sharedCount := atomic.Int64{}

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			val, err, shared := group.Do("wrestledex:roster:aew", func() (any, error) {
				calls.Add(1)
				time.Sleep(25 * time.Millisecond)
				return 42, nil
			})
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if val != 42 {
				t.Errorf("got %v, want 42", val)
			}
			if shared {
				sharedCount.Add(1)
			}
		}()
	}

	close(start)
	wg.Wait()

	if got := calls.Load(); got != 1 {
		t.Fatalf("expected a single execution, got %d", got)
	}
	if got := sharedCount.Load(); got != workers-1 {
		t.Fatalf("expected %d shared results, got %d", workers-1, got)
	}
}

func TestSingleFlight_DistinctKeysRunIndependently(t *testing.T) {
	var (
		group SingleFlight
		calls atomic.Int64
	)

	keys := []string{"wrestledex:roster:roh", "wrestledex:roster:njpw"}
	for _, key := range keys {
		val, err, shared := group.Do(key, func() (any, error) {
			calls.Add(1)
			return key, nil
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if shared {
			t.Fatalf("sequential call for %q must not be shared", key)
		}
		if val != key {
			t.Fatalf("got %v, want %q", val, key)
		}
	}

	if got := calls.Load(); got != int64(len(keys)) {
		t.Fatalf("expected %d executions, got %d", len(keys), got)
	}
}

func TestSingleFlight_KeyReusableAfterCompletion(t *testing.T) {
	var (
		group SingleFlight
		calls atomic.Int64
	)

	for i := 0; i < 2; i++ {
		if _, err, _ := group.Do("titles:list", func() (any, error) {
			calls.Add(1)
			return nil, nil
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if got := calls.Load(); got != 2 {
		t.Fatalf("completed key must be callable again, got %d executions", got)
	}
}
