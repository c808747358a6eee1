package catalog

import (
	"context"

	"encore.dev/rlog"

	"readarrbridge.app/bridge/cache"
	"readarrbridge.app/bridge/model"
)

const (
	searchKeyPrefix = "search:"
	profilesKey     = "profiles"
)

// CachedClient serves searches and profile listings from a cache store and
// forwards AddBook untouched.
type CachedClient struct {
	next  Client
	store *cache.Store
}

func NewCachedClient(next Client, store *cache.Store) *CachedClient {
	return &CachedClient{next: next, store: store}
}

func (c *CachedClient) SearchBooks(ctx context.Context, query string) ([]model.Candidate, error) {
	key := searchKeyPrefix + query
	if candidates, ok := cache.GetAs[[]model.Candidate](c.store, key); ok {
		rlog.Debug("catalog cache hit", "key", key)
		return candidates, nil
	}

	candidates, err := c.next.SearchBooks(ctx, query)
	if err != nil {
		return nil, err
	}
	c.store.Set(key, candidates, 0)
	return candidates, nil
}

func (c *CachedClient) GetMetadataProfiles(ctx context.Context) ([]model.MetadataProfile, error) {
	if profiles, ok := cache.GetAs[[]model.MetadataProfile](c.store, profilesKey); ok {
		rlog.Debug("catalog cache hit", "key", profilesKey)
		return profiles, nil
	}

	profiles, err := c.next.GetMetadataProfiles(ctx)
	if err != nil {
		return nil, err
	}
	c.store.Set(profilesKey, profiles, 0)
	return profiles, nil
}

func (c *CachedClient) AddBook(ctx context.Context, spec model.AddBookSpec) (*model.AddedBook, error) {
	return c.next.AddBook(ctx, spec)
}
