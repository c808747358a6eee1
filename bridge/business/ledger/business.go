package ledger

import (
	"context"
	"time"

	"readarrbridge.app/bridge/domain"
	"readarrbridge.app/bridge/model"
	"readarrbridge.app/bridge/repository/requests"
)

// Business is the request ledger: the durable record of every ingested
// request and its current state.
type Business interface {
	CreateRequest(ctx context.Context, bookTitle, bookAuthors string, requestBody []byte) (*model.Request, error)
	GetRequest(ctx context.Context, id int64) (*model.Request, error)
	ListRequests(ctx context.Context, filter model.ListFilter) ([]*model.Request, error)
	CountRequestsByStatus(ctx context.Context) (map[model.RequestStatus]int64, error)

	MarkSucceeded(ctx context.Context, id int64, book *model.AddedBook) (*model.Request, error)
	MarkFailed(ctx context.Context, id int64, errorMessage string) (*model.Request, error)
	MarkPending(ctx context.Context, id int64) (*model.Request, error)
	RemoveRequest(ctx context.Context, id int64) error
}

type business struct {
	requestRepo  requests.Querier
	stateMachine domain.StateMachine
	clock        func() time.Time
}

// Option customizes the ledger.
type Option func(*business)

// WithClock allows tests to control timestamps.
func WithClock(clock func() time.Time) Option {
	return func(b *business) {
		if clock != nil {
			b.clock = clock
		}
	}
}

// NewLedgerBusiness creates the ledger over the request queries and the state machine
func NewLedgerBusiness(requestRepo requests.Querier, stateMachine domain.StateMachine, opts ...Option) Business {
	b := &business{
		requestRepo:  requestRepo,
		stateMachine: stateMachine,
		clock:        func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}
