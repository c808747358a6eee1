package pipeline

import (
	"context"

	"readarrbridge.app/bridge/business/ledger"
	"readarrbridge.app/bridge/catalog"
	"readarrbridge.app/bridge/model"
)

// Business resolves book requests against the catalog and records every
// outcome in the ledger.
type Business interface {
	// Ingest validates a request and records it as pending. Invalid input never reaches the ledger.
	Ingest(ctx context.Context, bookTitle, bookAuthors string, requestBody []byte) (*model.Request, error)
	// Resolve runs search, selection, identifier derivation and add for a pending
	// request and ends with exactly one ledger write. Only storage errors are returned.
	Resolve(ctx context.Context, id int64) (*model.Outcome, error)
	// Requeue moves a failed request back to pending without resolving it.
	Requeue(ctx context.Context, id int64) (*model.Request, error)
	// Retry requeues a failed request and resolves it again from the stored title and authors.
	Retry(ctx context.Context, id int64) (*model.Outcome, error)
	// Remove drops the local record of a request that added a book. The catalog is not touched.
	Remove(ctx context.Context, id int64) error
}

// Options are the catalog settings applied to every added book.
type Options struct {
	RootFolderPath    string
	QualityProfileID  int32
	MetadataProfileID int32
	SearchOnAdd       bool
	// ProbeMetadataProfiles lists metadata profiles before searching to confirm the catalog is reachable.
	ProbeMetadataProfiles bool
}

type business struct {
	ledger   ledger.Business
	catalog  catalog.Client
	selector Selector
	opts     Options
}

type Option func(*business)

// WithSelector replaces the rank-0 candidate selection policy.
func WithSelector(selector Selector) Option {
	return func(b *business) {
		if selector != nil {
			b.selector = selector
		}
	}
}

// NewPipelineBusiness creates the resolution pipeline over the ledger and a catalog client
func NewPipelineBusiness(ledgerBusiness ledger.Business, catalogClient catalog.Client, opts Options, options ...Option) Business {
	b := &business{
		ledger:   ledgerBusiness,
		catalog:  catalogClient,
		selector: FirstCandidate{},
		opts:     opts,
	}
	for _, option := range options {
		option(b)
	}
	return b
}
