package ledger

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"

	"encore.dev/beta/errs"

	"readarrbridge.app/bridge/model"
	"readarrbridge.app/bridge/repository"
	"readarrbridge.app/bridge/repository/requests"
)

// ListRequests returns requests newest first, ties broken by id descending.
func (b *business) ListRequests(ctx context.Context, filter model.ListFilter) ([]*model.Request, error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid status filter"}
	}
	if filter.Limit < 0 || filter.Offset < 0 {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "limit and offset must not be negative"}
	}

	params := requests.ListRequestsParams{RowOffset: filter.Offset}
	if filter.Status != "" {
		params.Status = pgtype.Text{String: string(filter.Status), Valid: true}
	}
	if filter.Limit > 0 {
		params.RowLimit = pgtype.Int4{Int32: filter.Limit, Valid: true}
	}

	dbRequests, err := b.requestRepo.ListRequests(ctx, params)
	if err != nil {
		return nil, repository.Classify(err, "failed to list requests")
	}

	result := make([]*model.Request, len(dbRequests))
	for i, dbRequest := range dbRequests {
		result[i] = convertDBRequestToModel(dbRequest)
	}
	return result, nil
}

// CountRequestsByStatus reports how many requests sit in each status. Every
// status is present in the result, with zero when no request has it.
func (b *business) CountRequestsByStatus(ctx context.Context) (map[model.RequestStatus]int64, error) {
	rows, err := b.requestRepo.CountRequestsByStatus(ctx)
	if err != nil {
		return nil, repository.Classify(err, "failed to count requests")
	}

	counts := map[model.RequestStatus]int64{
		model.RequestStatusPending:   0,
		model.RequestStatusSucceeded: 0,
		model.RequestStatusFailed:    0,
	}
	for _, row := range rows {
		counts[model.RequestStatus(row.Status)] = row.Total
	}
	return counts, nil
}
