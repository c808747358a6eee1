package bridge

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"readarrbridge.app/bridge/model"
)

// ActionResponse reports the result of a retry or remove. A retry that ran but
// ended failed is answered with Success false and the recorded error message.
type ActionResponse struct {
	Success bool           `json:"success"`
	Error   string         `json:"error,omitempty"`
	Outcome *model.Outcome `json:"outcome,omitempty"`
	Request *model.Request `json:"request,omitempty"`
}

// RetryRequest resolves a failed request again from its stored title and authors.
//
//encore:api public method=POST path=/api/requests/:id/retry tag:idempotency
func (s *Service) RetryRequest(ctx context.Context, id int64) (*ActionResponse, error) {
	if id <= 0 {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid request ID"}
	}

	outcome, err := s.retry(ctx, id)
	if err != nil {
		rlog.Error("failed to retry request", "error", err, "id", id)
		return nil, err
	}

	request, err := s.ledger.GetRequest(ctx, id)
	if err != nil {
		rlog.Error("failed to get retried request", "error", err, "id", id)
		return nil, err
	}

	response := &ActionResponse{
		Success: outcome.Status != model.RequestStatusFailed,
		Outcome: outcome,
		Request: request,
	}
	if !response.Success {
		response.Error = outcome.Message
	}
	return response, nil
}

// RemoveRequest drops the local record of a request that added a book. The book
// stays monitored in the catalog.
//
//encore:api public method=POST path=/api/requests/:id/remove tag:idempotency
func (s *Service) RemoveRequest(ctx context.Context, id int64) (*ActionResponse, error) {
	if id <= 0 {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid request ID"}
	}

	if err := s.pipeline.Remove(ctx, id); err != nil {
		rlog.Error("failed to remove request", "error", err, "id", id)
		return nil, err
	}

	return &ActionResponse{Success: true}, nil
}
