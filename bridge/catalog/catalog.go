package catalog

import (
	"context"

	"readarrbridge.app/bridge/model"
)

// Client is the contract the resolution pipeline needs from the external book catalog.
type Client interface {
	// SearchBooks returns candidates in the catalog's own relevance order.
	SearchBooks(ctx context.Context, query string) ([]model.Candidate, error)
	GetMetadataProfiles(ctx context.Context) ([]model.MetadataProfile, error)
	// AddBook asks the catalog to add and monitor a book. It has side effects and is never cached.
	AddBook(ctx context.Context, spec model.AddBookSpec) (*model.AddedBook, error)
}
