// Package cache is a request-keyed read cache with explicit invalidation.
//
// Every read operation is addressed by a composite key (operation plus its
// filter parameters). The cache guarantees at most one in-flight fetch per
// key, bounds each fetch by a fixed timeout, and holds results until a
// mutation invalidates the key family. There is no TTL: correctness relies
// entirely on invalidation-on-write.
package cache

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// ErrTimeout marks a backend call that did not complete within the
// configured ceiling.
var ErrTimeout = errors.New("backend request timed out")

// Store is a process-wide query cache. Construct one per process and inject
// it; it is never a hidden singleton, so tests can substitute their own.
type Store struct {
	mu       sync.Mutex
	entries  map[string]interface{}
	inflight map[string]int // refcount of callers waiting per key
	gens     map[string]uint64
	group    singleflight.Group
	timeout  time.Duration
}

// New creates a Store whose fetches are bounded by timeout.
func New(timeout time.Duration) *Store {
	return &Store{
		entries:  make(map[string]interface{}),
		inflight: make(map[string]int),
		gens:     make(map[string]uint64),
		timeout:  timeout,
	}
}

// Do returns the cached value for key, or runs fetch to populate it.
// Concurrent callers for the same key share a single fetch and observe the
// same result. A fetch that outlives the timeout fails with ErrTimeout and
// its in-flight marker is cleared, so a retry starts fresh rather than
// joining a dead call.
func (s *Store) Do(ctx context.Context, key string, fetch func(context.Context) (interface{}, error)) (interface{}, error) {
	s.mu.Lock()
	if v, ok := s.entries[key]; ok {
		s.mu.Unlock()
		return v, nil
	}
	s.inflight[key]++
	gen := s.gens[key]
	s.mu.Unlock()

	v, err, _ := s.group.Do(key, func() (interface{}, error) {
		// The fetch is detached from caller cancellation: a caller that
		// abandons interest stops waiting, but the backend call itself
		// runs to completion or to the timeout.
		fctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.timeout)
		defer cancel()

		type result struct {
			v   interface{}
			err error
		}
		ch := make(chan result, 1)
		go func() {
			v, err := fetch(fctx)
			ch <- result{v, err}
		}()

		select {
		case r := <-ch:
			if r.err != nil {
				if errors.Is(r.err, context.DeadlineExceeded) {
					return nil, fmt.Errorf("%w: %s", ErrTimeout, key)
				}
				return nil, r.err
			}
			s.mu.Lock()
			// A result fetched before an invalidation of this key is
			// pre-mutation data; the caller still gets it, but it must
			// never be written back.
			if s.gens[key] == gen {
				s.entries[key] = r.v
			}
			s.mu.Unlock()
			return r.v, nil
		case <-fctx.Done():
			// The fetch ignored its context; give up on it. Its eventual
			// result is discarded.
			return nil, fmt.Errorf("%w: %s", ErrTimeout, key)
		}
	})

	s.mu.Lock()
	if s.inflight[key]--; s.inflight[key] <= 0 {
		delete(s.inflight, key)
	}
	s.mu.Unlock()

	if err != nil {
		// singleflight drops the call once it completes, but be explicit:
		// a failed key must never block a retry.
		s.group.Forget(key)
		return nil, err
	}
	return v, nil
}

// Invalidate drops every cached entry whose key starts with one of the
// given prefixes, and cuts off matching in-flight fetches so that a read
// issued after the invalidation never observes pre-mutation data: the
// singleflight call is forgotten so the next read starts a fresh fetch,
// and the key's generation is bumped so the superseded fetch cannot write
// its result back when it eventually completes.
func (s *Store) Invalidate(prefixes ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for key := range s.entries {
		if matchesAny(key, prefixes) {
			delete(s.entries, key)
		}
	}
	for key := range s.inflight {
		if matchesAny(key, prefixes) {
			s.gens[key]++
			s.group.Forget(key)
		}
	}
}

func matchesAny(key string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(key, p) {
			return true
		}
	}
	return false
}

// Get is a typed wrapper around Store.Do.
func Get[T any](ctx context.Context, s *Store, key string, fetch func(context.Context) (T, error)) (T, error) {
	v, err := s.Do(ctx, key, func(ctx context.Context) (interface{}, error) {
		return fetch(ctx)
	})
	if err != nil {
		var zero T
		return zero, err
	}
	typed, ok := v.(T)
	if !ok {
		var zero T
		return zero, fmt.Errorf("cache entry %q holds %T", key, v)
	}
	return typed, nil
}
