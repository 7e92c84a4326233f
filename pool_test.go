package rmux

import (
	"testing"

	"github.com/rohanthewiz/assert"
)

func TestPoolPrePopulation(t *testing.T) {
	pool := newURIPool(8)
	assert.Equal(t, pool.Occupancy(), 8)

	pool = newURIPool(0)
	assert.Equal(t, pool.Occupancy(), DefaultPoolSize)

	pool = newURIPool(-3)
	assert.Equal(t, pool.Occupancy(), DefaultPoolSize)
}

// Draining the pool must not block: extra acquires get fresh buffers
// and count as misses.
func TestPoolAcquireBeyondCapacity(t *testing.T) {
	pool := newURIPool(2)

	a := pool.Acquire()
	b := pool.Acquire()
	c := pool.Acquire()
	assert.True(t, a != nil)
	assert.True(t, b != nil)
	assert.True(t, c != nil)
	assert.Equal(t, pool.Occupancy(), 0)

	stats := pool.Stats()
	assert.Equal(t, stats.Acquires, uint64(3))
	assert.Equal(t, stats.Misses, uint64(1))
}

// Every released buffer is kept, even past the original capacity.
func TestPoolReleaseBeyondCapacity(t *testing.T) {
	pool := newURIPool(1)

	a := pool.Acquire()
	b := pool.Acquire() // miss
	pool.Release(a)
	pool.Release(b)

	assert.Equal(t, pool.Occupancy(), 2)
	assert.Equal(t, pool.Stats().Releases, uint64(2))
}

func TestPoolReleaseResets(t *testing.T) {
	pool := newURIPool(1)

	u := pool.Acquire()
	u.Project("https://example.com/some/path?k=v")
	pool.Release(u)

	recycled := pool.Acquire()
	assert.Equal(t, recycled.Path(), "")
	assert.Equal(t, recycled.Query(), "")
	assert.Equal(t, recycled.Host(), "")
}

func TestPoolReleaseNil(t *testing.T) {
	pool := newURIPool(1)

	pool.Release(nil)
	assert.Equal(t, pool.Occupancy(), 1)
	assert.Equal(t, pool.Stats().Releases, uint64(0))
}

func TestPoolRoundTrip(t *testing.T) {
	pool := newURIPool(4)

	for i := 0; i < 100; i++ {
		u := pool.Acquire()
		u.Project("/cycle")
		pool.Release(u)
	}

	stats := pool.Stats()
	assert.Equal(t, stats.Acquires, uint64(100))
	assert.Equal(t, stats.Releases, uint64(100))
	assert.Equal(t, stats.Misses, uint64(0))
	assert.Equal(t, stats.Available, 4)
}
