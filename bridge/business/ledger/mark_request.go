package ledger

import (
	"context"

	"encore.dev/rlog"

	"readarrbridge.app/bridge/model"
)

// MarkSucceeded moves a pending request to succeeded with the catalog's identity of the book.
func (b *business) MarkSucceeded(ctx context.Context, id int64, book *model.AddedBook) (*model.Request, error) {
	dbRequest, err := b.stateMachine.TransitionToSucceeded(ctx, id, book, b.clock())
	if err != nil {
		rlog.Error("failed to mark request succeeded", "request_id", id, "error", err)
		return nil, err
	}
	return convertDBRequestToModel(dbRequest), nil
}

// MarkFailed moves a pending request to failed.
func (b *business) MarkFailed(ctx context.Context, id int64, errorMessage string) (*model.Request, error) {
	dbRequest, err := b.stateMachine.TransitionToFailed(ctx, id, errorMessage, b.clock())
	if err != nil {
		rlog.Error("failed to mark request failed", "request_id", id, "error", err)
		return nil, err
	}
	return convertDBRequestToModel(dbRequest), nil
}

// MarkPending resets a failed request for another resolution run.
func (b *business) MarkPending(ctx context.Context, id int64) (*model.Request, error) {
	dbRequest, err := b.stateMachine.TransitionToPending(ctx, id)
	if err != nil {
		return nil, err
	}
	return convertDBRequestToModel(dbRequest), nil
}

// RemoveRequest deletes the local record only. The book stays in the catalog.
func (b *business) RemoveRequest(ctx context.Context, id int64) error {
	if err := b.stateMachine.Remove(ctx, id); err != nil {
		return err
	}
	rlog.Info("request removed", "request_id", id)
	return nil
}
