package cache

import (
	"sync/atomic"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"readarrbridge.app/bridge/model"
)

const (
	DefaultTTL         = 300 * time.Second
	DefaultCheckPeriod = 120 * time.Second
)

// ID names a cache instance owned by the Manager.
type ID string

const (
	Readarr ID = "readarr"
)

// Store is a named, time-expiring key/value store. Expired entries are
// evicted by a background sweep every check period, and reads of an expired
// entry that has not been swept yet report a miss.
type Store struct {
	id   ID
	name string
	data *gocache.Cache

	hits   atomic.Int64
	misses atomic.Int64
}

type options struct {
	ttl         time.Duration
	checkPeriod time.Duration
}

// Option overrides a Store default.
type Option func(*options)

// WithTTL sets the time-to-live used when Set is called without one.
func WithTTL(ttl time.Duration) Option {
	return func(o *options) {
		if ttl > 0 {
			o.ttl = ttl
		}
	}
}

// WithCheckPeriod sets the interval of the expiry sweep.
func WithCheckPeriod(period time.Duration) Option {
	return func(o *options) {
		if period > 0 {
			o.checkPeriod = period
		}
	}
}

// New creates a named cache.
func New(id ID, name string, opts ...Option) *Store {
	o := options{ttl: DefaultTTL, checkPeriod: DefaultCheckPeriod}
	for _, opt := range opts {
		opt(&o)
	}

	return &Store{
		id:   id,
		name: name,
		data: gocache.New(o.ttl, o.checkPeriod),
	}
}

func (s *Store) ID() ID {
	return s.id
}

func (s *Store) Name() string {
	return s.name
}

// Get returns the value stored under key, if present and not expired.
func (s *Store) Get(key string) (any, bool) {
	value, ok := s.data.Get(key)
	if !ok {
		s.misses.Add(1)
		return nil, false
	}
	s.hits.Add(1)
	return value, true
}

// Set stores value under key. A non-positive ttl uses the store default.
func (s *Store) Set(key string, value any, ttl time.Duration) {
	if ttl <= 0 {
		ttl = gocache.DefaultExpiration
	}
	s.data.Set(key, value, ttl)
}

// Flush drops every entry and resets the hit and miss counters.
func (s *Store) Flush() {
	s.data.Flush()
	s.hits.Store(0)
	s.misses.Store(0)
}

func (s *Store) Stats() model.CacheStats {
	return model.CacheStats{
		Hits:   s.hits.Load(),
		Misses: s.misses.Load(),
		Keys:   s.data.ItemCount(),
	}
}

// Info describes the store for reporting.
func (s *Store) Info() model.CacheInfo {
	return model.CacheInfo{
		ID:    string(s.id),
		Name:  s.name,
		Stats: s.Stats(),
	}
}

// GetAs is Get with a type assertion. A value of another type counts as absent.
func GetAs[T any](s *Store, key string) (T, bool) {
	var zero T
	value, ok := s.Get(key)
	if !ok {
		return zero, false
	}
	typed, ok := value.(T)
	if !ok {
		return zero, false
	}
	return typed, true
}
