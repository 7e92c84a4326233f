package rmux

import (
	"sync"
	"sync/atomic"
)

// DefaultPoolSize is the number of URI buffers a dispatcher pre-allocates
// when DispatcherOptions.PoolSize is unset.
const DefaultPoolSize = 1000

// PoolStats is a point-in-time snapshot of URI pool activity.
type PoolStats struct {
	Acquires  uint64 // total Acquire calls
	Releases  uint64 // total Release calls
	Misses    uint64 // Acquires served by a fresh allocation instead of the pool
	Available int    // buffers currently idle in the pool
}

// uriPool recycles URI parse buffers across requests.
//
// The free list is pre-populated to capacity, so the steady state allocates
// nothing per request. Acquire never blocks: when the list is empty it hands
// out a fresh buffer instead, which means the number of live buffers can
// transiently exceed capacity, and Release accepts every buffer back
// regardless of where it came from.
type uriPool struct {
	mu       sync.Mutex
	free     []*URI
	acquires atomic.Uint64
	releases atomic.Uint64
	misses   atomic.Uint64
}

// newURIPool creates a pool pre-populated with capacity buffers.
// A non-positive capacity falls back to DefaultPoolSize.
func newURIPool(capacity int) *uriPool {
	if capacity <= 0 {
		capacity = DefaultPoolSize
	}

	pool := &uriPool{free: make([]*URI, 0, capacity)}
	for i := 0; i < capacity; i++ {
		pool.free = append(pool.free, &URI{})
	}
	return pool
}

// Acquire pops an idle buffer, or allocates when none is available.
func (pool *uriPool) Acquire() *URI {
	pool.acquires.Add(1)

	pool.mu.Lock()
	if n := len(pool.free); n > 0 {
		u := pool.free[n-1]
		pool.free[n-1] = nil
		pool.free = pool.free[:n-1]
		pool.mu.Unlock()
		return u
	}
	pool.mu.Unlock()

	pool.misses.Add(1)
	return &URI{}
}

// Release resets the buffer and returns it to the free list.
func (pool *uriPool) Release(u *URI) {
	if u == nil {
		return
	}

	u.Reset()
	pool.releases.Add(1)

	pool.mu.Lock()
	pool.free = append(pool.free, u)
	pool.mu.Unlock()
}

// Occupancy reports how many buffers are idle in the pool.
func (pool *uriPool) Occupancy() int {
	pool.mu.Lock()
	defer pool.mu.Unlock()
	return len(pool.free)
}

// Stats returns a snapshot of pool activity.
func (pool *uriPool) Stats() PoolStats {
	return PoolStats{
		Acquires:  pool.acquires.Load(),
		Releases:  pool.releases.Load(),
		Misses:    pool.misses.Load(),
		Available: pool.Occupancy(),
	}
}
