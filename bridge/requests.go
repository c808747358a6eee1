package bridge

import (
	"context"
	"math"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"readarrbridge.app/bridge/model"
)

type ListRequestsParams struct {
	Status string `query:"status"`
	Limit  int    `query:"limit"`
	Offset int    `query:"offset"`
}

type ListRequestsResponse struct {
	Success bool                   `json:"success"`
	Data    []model.RequestSummary `json:"data"`
}

type RequestResponse struct {
	Success bool           `json:"success"`
	Data    *model.Request `json:"data"`
}

// ListRequests lists recorded requests newest first.
//
//encore:api public method=GET path=/api/requests
func (s *Service) ListRequests(ctx context.Context, params *ListRequestsParams) (*ListRequestsResponse, error) {
	if params.Limit < 0 || params.Offset < 0 {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "limit and offset must not be negative"}
	}
	if params.Limit > math.MaxInt32 || params.Offset > math.MaxInt32 {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "limit and offset must not exceed 2147483647"}
	}

	requests, err := s.ledger.ListRequests(ctx, model.ListFilter{
		Status: model.RequestStatus(params.Status),
		Limit:  int32(params.Limit),
		Offset: int32(params.Offset),
	})
	if err != nil {
		rlog.Error("failed to list requests", "error", err)
		return nil, err
	}

	response := &ListRequestsResponse{
		Success: true,
		Data:    make([]model.RequestSummary, len(requests)),
	}
	for i, request := range requests {
		response.Data[i] = request.Summary()
	}
	return response, nil
}

// GetRequest returns one request with its payloads and error detail.
//
//encore:api public method=GET path=/api/requests/:id
func (s *Service) GetRequest(ctx context.Context, id int64) (*RequestResponse, error) {
	if id <= 0 {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid request ID"}
	}

	request, err := s.ledger.GetRequest(ctx, id)
	if err != nil {
		rlog.Error("failed to get request", "error", err, "id", id)
		return nil, err
	}

	return &RequestResponse{Success: true, Data: request}, nil
}
