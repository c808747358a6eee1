package bridge

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"readarrbridge.app/bridge/cache"
	"readarrbridge.app/bridge/model"
)

type ListCachesResponse struct {
	Success bool              `json:"success"`
	Data    []model.CacheInfo `json:"data"`
}

type FlushCacheResponse struct {
	Success bool            `json:"success"`
	Data    model.CacheInfo `json:"data"`
}

//encore:api public method=GET path=/api/caches
func (s *Service) ListCaches(ctx context.Context) (*ListCachesResponse, error) {
	return &ListCachesResponse{Success: true, Data: s.caches.All()}, nil
}

//encore:api public method=POST path=/api/caches/:id/flush tag:idempotency
func (s *Service) FlushCache(ctx context.Context, id string) (*FlushCacheResponse, error) {
	store, ok := s.caches.Get(cache.ID(id))
	if !ok {
		return nil, &errs.Error{Code: errs.NotFound, Message: "cache not found"}
	}

	s.caches.Flush(store.ID())
	rlog.Info("cache flushed", "cache_id", id)
	return &FlushCacheResponse{Success: true, Data: store.Info()}, nil
}
