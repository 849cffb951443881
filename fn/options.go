package fn

// Defaults applied by [Memoize], [Memoize2] and [MemoizeN].
const (
	// DefaultShards is the number of independently locked cache shards.
	DefaultShards = 16

	// DefaultMaxEntries bounds each shard; 0 means unbounded.
	DefaultMaxEntries = 0
)

// Option configures a memoized function.
type Option func(*config)

type config struct {
	keyFunc    KeyFunc
	shards     int
	maxEntries int
}

// WithKeyFunc sets the function deriving the cache key from the argument
// list. The default is [StructuralKey]. A nil fn keeps the default.
func WithKeyFunc(fn KeyFunc) Option {
	return func(c *config) {
		if fn != nil {
			c.keyFunc = fn
		}
	}
}

// WithShards sets the number of cache shards. Values below 1 keep
// [DefaultShards].
func WithShards(n int) Option {
	return func(c *config) {
		if n >= 1 {
			c.shards = n
		}
	}
}

// WithMaxEntries bounds the number of entries per shard. A full shard starts
// a new generation; entries of the previous generation stay readable until
// the next rotation. Negative values keep [DefaultMaxEntries].
func WithMaxEntries(n int) Option {
	return func(c *config) {
		if n >= 0 {
			c.maxEntries = n
		}
	}
}

func newConfig(opts []Option) config {
	c := config{
		keyFunc:    StructuralKey,
		shards:     DefaultShards,
		maxEntries: DefaultMaxEntries,
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
