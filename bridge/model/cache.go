package model

// CacheStats reports usage counters of a named cache.
type CacheStats struct {
	Hits   int64 `json:"hits"`
	Misses int64 `json:"misses"`
	Keys   int   `json:"keys"`
}

// CacheInfo describes a named cache instance.
type CacheInfo struct {
	ID    string     `json:"id"`
	Name  string     `json:"name"`
	Stats CacheStats `json:"stats"`
}
