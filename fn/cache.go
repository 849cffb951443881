package fn

import (
	"sync"

	"github.com/cespare/xxhash/v2"
	"go.uber.org/zap"
)

// cache is a sharded key/value store. A shard is picked by hashing the key
// with xxhash, so unrelated keys rarely contend for the same lock.
type cache[R any] struct {
	shards     []*shard[R]
	maxEntries int
}

// shard keeps two generations of entries. When the current generation is
// full it becomes the previous one and a fresh map takes its place.
type shard[R any] struct {
	mu       sync.Mutex
	current  map[string]R
	previous map[string]R
}

func newCache[R any](shards, maxEntries int) *cache[R] {
	c := &cache[R]{
		shards:     make([]*shard[R], shards),
		maxEntries: maxEntries,
	}
	for i := range c.shards {
		c.shards[i] = &shard[R]{current: make(map[string]R)}
	}
	return c
}

func (c *cache[R]) shardFor(key string) *shard[R] {
	return c.shards[xxhash.Sum64String(key)%uint64(len(c.shards))]
}

func (c *cache[R]) load(key string) (R, bool) {
	s := c.shardFor(key)
	s.mu.Lock()
	defer s.mu.Unlock()
	if v, ok := s.current[key]; ok {
		return v, true
	}
	v, ok := s.previous[key]
	return v, ok
}

func (c *cache[R]) store(key string, value R) {
	s := c.shardFor(key)
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.current[key]; !ok && c.maxEntries > 0 && len(s.current) >= c.maxEntries {
		logger().Debug("memo shard rotated", zap.Int("entries", len(s.current)))
		s.previous = s.current
		s.current = make(map[string]R, c.maxEntries)
	}
	s.current[key] = value
}
