package domain

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"encore.dev/beta/errs"

	"readarrbridge.app/bridge/model"
	"readarrbridge.app/bridge/repository"
	"readarrbridge.app/bridge/repository/requests"
)

// StateMachine owns every ledger state transition. Each transition locks the
// row, validates the current status and writes the new state in one transaction.
//
//	pending --succeed--> succeeded
//	pending --fail-----> failed --requeue--> pending
type StateMachine interface {
	TransitionToSucceeded(ctx context.Context, id int64, book *model.AddedBook, at time.Time) (requests.Request, error)
	TransitionToFailed(ctx context.Context, id int64, message string, at time.Time) (requests.Request, error)
	TransitionToPending(ctx context.Context, id int64) (requests.Request, error)
	Remove(ctx context.Context, id int64) error
}

type RequestStateMachine struct {
	tx repository.TxRunner
}

func NewRequestStateMachine(tx repository.TxRunner) *RequestStateMachine {
	return &RequestStateMachine{tx: tx}
}

var _ StateMachine = (*RequestStateMachine)(nil)

// transitionWithLock runs fn with the row locked by SELECT ... FOR UPDATE.
func (sm *RequestStateMachine) transitionWithLock(ctx context.Context, id int64, fn func(q requests.Querier, current requests.Request) error) error {
	return sm.tx.InTx(ctx, func(q requests.Querier) error {
		current, err := q.GetRequestForUpdate(ctx, id)
		if err != nil {
			if repository.IsNotFound(err) {
				return &errs.Error{Code: errs.NotFound, Message: "request not found"}
			}
			return repository.Classify(err, "failed to lock request for state transition")
		}
		return fn(q, current)
	})
}

// TransitionToSucceeded records the catalog identity of the added book.
func (sm *RequestStateMachine) TransitionToSucceeded(ctx context.Context, id int64, book *model.AddedBook, at time.Time) (requests.Request, error) {
	if book == nil {
		return requests.Request{}, &errs.Error{Code: errs.InvalidArgument, Message: "added book is required"}
	}

	response := []byte(book.Raw)
	if len(response) == 0 {
		response = []byte("null")
	}

	var updated requests.Request
	err := sm.transitionWithLock(ctx, id, func(q requests.Querier, current requests.Request) error {
		if current.Status != string(model.RequestStatusPending) {
			return &errs.Error{
				Code:    errs.FailedPrecondition,
				Message: "request must be in pending status to transition to succeeded",
			}
		}

		var err error
		updated, err = q.MarkRequestSucceeded(ctx, requests.MarkRequestSucceededParams{
			ID:             id,
			AddedBookID:    pgtype.Int8{Int64: book.ID, Valid: true},
			AddedBookTitle: pgtype.Text{String: book.Title, Valid: true},
			Monitored:      pgtype.Bool{Bool: book.Monitored, Valid: true},
			ResponseJson:   response,
			ProcessedAt:    pgtype.Timestamptz{Time: at, Valid: true},
		})
		return repository.Classify(err, "failed to mark request succeeded")
	})
	return updated, err
}

// TransitionToFailed records why resolution failed.
func (sm *RequestStateMachine) TransitionToFailed(ctx context.Context, id int64, message string, at time.Time) (requests.Request, error) {
	var updated requests.Request
	err := sm.transitionWithLock(ctx, id, func(q requests.Querier, current requests.Request) error {
		if current.Status != string(model.RequestStatusPending) {
			return &errs.Error{
				Code:    errs.FailedPrecondition,
				Message: "request must be in pending status to transition to failed",
			}
		}

		var err error
		updated, err = q.MarkRequestFailed(ctx, requests.MarkRequestFailedParams{
			ID:           id,
			ErrorMessage: pgtype.Text{String: message, Valid: true},
			ProcessedAt:  pgtype.Timestamptz{Time: at, Valid: true},
		})
		return repository.Classify(err, "failed to mark request failed")
	})
	return updated, err
}

// TransitionToPending puts a failed request back in the queue.
func (sm *RequestStateMachine) TransitionToPending(ctx context.Context, id int64) (requests.Request, error) {
	var updated requests.Request
	err := sm.transitionWithLock(ctx, id, func(q requests.Querier, current requests.Request) error {
		if current.Status != string(model.RequestStatusFailed) {
			return &errs.Error{
				Code:    errs.FailedPrecondition,
				Message: "only failed requests can be retried",
			}
		}

		var err error
		updated, err = q.MarkRequestPending(ctx, id)
		return repository.Classify(err, "failed to mark request pending")
	})
	return updated, err
}

// Remove drops the local record of a request whose book reached the catalog.
func (sm *RequestStateMachine) Remove(ctx context.Context, id int64) error {
	return sm.transitionWithLock(ctx, id, func(q requests.Querier, current requests.Request) error {
		if !current.AddedBookID.Valid {
			return &errs.Error{
				Code:    errs.FailedPrecondition,
				Message: "request has no added book to remove",
			}
		}

		if _, err := q.DeleteRequest(ctx, id); err != nil {
			return repository.Classify(err, "failed to remove request")
		}
		return nil
	})
}
