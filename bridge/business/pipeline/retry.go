package pipeline

import (
	"context"

	"encore.dev/rlog"

	"readarrbridge.app/bridge/model"
)

func (b *business) Requeue(ctx context.Context, id int64) (*model.Request, error) {
	request, err := b.ledger.MarkPending(ctx, id)
	if err != nil {
		return nil, err
	}
	rlog.Info("request requeued", "request_id", id)
	return request, nil
}

// Retry resolves from the stored title and authors, never from a caller's live payload.
func (b *business) Retry(ctx context.Context, id int64) (*model.Outcome, error) {
	if _, err := b.Requeue(ctx, id); err != nil {
		return nil, err
	}
	return b.Resolve(ctx, id)
}
