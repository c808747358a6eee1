package idempotency

import (
	"time"

	"encore.dev/storage/cache"

	"readarrbridge.app/bridge/model"
)

const (
	defaultCompletedTTL = 24 * time.Hour
	// inFlightTTL bounds how long a crashed request can hold the in-flight guard.
	inFlightTTL = 10 * time.Minute
)

// ActionCluster is the cache cluster for guarded actions
var ActionCluster = cache.NewCluster("action-cluster", cache.ClusterConfig{
	EvictionPolicy: cache.AllKeysLRU,
})

// ActionCache is the keyspace for idempotency keys and in-flight guards
var ActionCache = cache.NewStructKeyspace[model.ActionKey, model.ActionEntry](
	ActionCluster,
	cache.KeyspaceConfig{
		KeyPattern:    "actions/:Resource/:Key",
		DefaultExpiry: cache.ExpireIn(defaultCompletedTTL),
	},
)

var completedTTL = defaultCompletedTTL

// SetCompletedTTL sets how long a completed response is replayed for its idempotency key.
func SetCompletedTTL(ttl time.Duration) {
	if ttl > 0 {
		completedTTL = ttl
	}
}
