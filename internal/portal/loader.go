package portal

import (
	"context"
	"errors"
	"sync"
)

type LoadState string

const (
	StateIdle    LoadState = "idle"
	StateLoading LoadState = "loading"
	StateReady   LoadState = "ready"
	StateFailed  LoadState = "failed"
)

// Loader runs fetch at most once at a time and keeps the first successful
// result. Callers arriving while a load runs wait for it; a failed load is
// retried by the next caller. A load that failed only because its caller went
// away is retried by the waiters instead of being reported to them.
type Loader[T any] struct {
	fetch func(ctx context.Context) (T, error)

	mu    sync.Mutex
	state LoadState
	value T
	err   error
	done  chan struct{}
}

func NewLoader[T any](fetch func(ctx context.Context) (T, error)) *Loader[T] {
	return &Loader[T]{fetch: fetch, state: StateIdle}
}

func (l *Loader[T]) State() LoadState {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

func (l *Loader[T]) Get(ctx context.Context) (T, error) {
	for {
		l.mu.Lock()
		switch l.state {
		case StateReady:
			v := l.value
			l.mu.Unlock()
			return v, nil
		case StateLoading:
			done := l.done
			l.mu.Unlock()
			select {
			case <-done:
			case <-ctx.Done():
				var zero T
				return zero, ctx.Err()
			}
			l.mu.Lock()
			if l.state == StateFailed && l.done == done {
				err := l.err
				if isContextErr(err) && ctx.Err() == nil {
					l.mu.Unlock()
					continue
				}
				l.mu.Unlock()
				var zero T
				return zero, err
			}
			l.mu.Unlock()
			continue
		}

		// idle or failed: this caller runs the fetch
		l.state = StateLoading
		l.done = make(chan struct{})
		done := l.done
		l.mu.Unlock()

		v, err := l.fetch(ctx)

		l.mu.Lock()
		if err != nil {
			l.state = StateFailed
			l.err = err
		} else {
			l.state = StateReady
			l.value = v
			l.err = nil
		}
		close(done)
		l.mu.Unlock()
		return v, err
	}
}

func isContextErr(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// Reset drops a cached result so the next Get fetches again.
func (l *Loader[T]) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.state == StateLoading {
		return
	}
	var zero T
	l.state = StateIdle
	l.value = zero
	l.err = nil
}
