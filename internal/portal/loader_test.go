package portal

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestLoaderSharesConcurrentLoad(t *testing.T) {
	var calls atomic.Int32
	release := make(chan struct{})
	l := NewLoader(func(ctx context.Context) (int, error) {
		calls.Add(1)
		<-release
		return 42, nil
	})
	if l.State() != StateIdle {
		t.Fatalf("initial state = %s", l.State())
	}

	var wg sync.WaitGroup
	results := make([]int, 5)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			v, err := l.Get(context.Background())
			if err != nil {
				t.Errorf("Get: %v", err)
			}
			results[i] = v
		}(i)
	}

	deadline := time.Now().Add(time.Second)
	for l.State() != StateLoading && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	close(release)
	wg.Wait()

	if calls.Load() != 1 {
		t.Fatalf("fetch ran %d times, want 1", calls.Load())
	}
	for i, v := range results {
		if v != 42 {
			t.Fatalf("result %d = %d", i, v)
		}
	}
	if l.State() != StateReady {
		t.Fatalf("state = %s, want ready", l.State())
	}
}

func TestLoaderRetriesAfterFailure(t *testing.T) {
	boom := errors.New("boom")
	var calls int
	l := NewLoader(func(ctx context.Context) (string, error) {
		calls++
		if calls == 1 {
			return "", boom
		}
		return "ok", nil
	})

	if _, err := l.Get(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("first Get err = %v", err)
	}
	if l.State() != StateFailed {
		t.Fatalf("state = %s, want failed", l.State())
	}
	v, err := l.Get(context.Background())
	if err != nil || v != "ok" {
		t.Fatalf("retry = %q, %v", v, err)
	}
	l.Get(context.Background())
	if calls != 2 {
		t.Fatalf("cached value refetched, calls = %d", calls)
	}

	l.Reset()
	if l.State() != StateIdle {
		t.Fatalf("state after reset = %s", l.State())
	}
	l.Get(context.Background())
	if calls != 3 {
		t.Fatalf("reset did not refetch, calls = %d", calls)
	}
}

func TestLoaderWaiterHonoursContext(t *testing.T) {
	release := make(chan struct{})
	defer close(release)
	l := NewLoader(func(ctx context.Context) (int, error) {
		<-release
		return 1, nil
	})
	go l.Get(context.Background())

	deadline := time.Now().Add(time.Second)
	for l.State() != StateLoading && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	if _, err := l.Get(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("waiter err = %v, want deadline exceeded", err)
	}
}

func TestLoaderWaiterRetriesWhenLoaderCallerCancels(t *testing.T) {
	var calls atomic.Int32
	l := NewLoader(func(ctx context.Context) (int, error) {
		if calls.Add(1) == 1 {
			<-ctx.Done()
			return 0, ctx.Err()
		}
		return 7, nil
	})

	first, cancel := context.WithCancel(context.Background())
	firstErr := make(chan error, 1)
	go func() {
		_, err := l.Get(first)
		firstErr <- err
	}()
	deadline := time.Now().Add(time.Second)
	for l.State() != StateLoading && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}

	type result struct {
		v   int
		err error
	}
	waiter := make(chan result, 1)
	go func() {
		v, err := l.Get(context.Background())
		waiter <- result{v, err}
	}()
	time.Sleep(10 * time.Millisecond)
	cancel()

	if err := <-firstErr; !errors.Is(err, context.Canceled) {
		t.Fatalf("cancelled caller err = %v, want canceled", err)
	}
	select {
	case got := <-waiter:
		if got.err != nil || got.v != 7 {
			t.Fatalf("waiter = %d, %v; want 7, nil", got.v, got.err)
		}
	case <-time.After(time.Second):
		t.Fatalf("waiter did not finish")
	}
	if l.State() != StateReady {
		t.Fatalf("state = %s, want ready", l.State())
	}
	if calls.Load() != 2 {
		t.Fatalf("fetch ran %d times, want 2", calls.Load())
	}
}
