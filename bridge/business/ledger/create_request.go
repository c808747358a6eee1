package ledger

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"

	"encore.dev/rlog"

	"readarrbridge.app/bridge/model"
	"readarrbridge.app/bridge/repository"
	"readarrbridge.app/bridge/repository/requests"
)

var emptyBody = []byte("{}")

// CreateRequest inserts a new pending request stamped with the current time.
func (b *business) CreateRequest(ctx context.Context, bookTitle, bookAuthors string, requestBody []byte) (*model.Request, error) {
	if len(requestBody) == 0 {
		requestBody = emptyBody
	}

	dbRequest, err := b.requestRepo.CreateRequest(ctx, requests.CreateRequestParams{
		ReceivedAt:  pgtype.Timestamptz{Time: b.clock(), Valid: true},
		BookTitle:   bookTitle,
		BookAuthors: bookAuthors,
		RequestBody: requestBody,
	})
	if err != nil {
		return nil, repository.Classify(err, "failed to create request")
	}

	rlog.Info("request recorded", "request_id", dbRequest.ID, "book_title", bookTitle)
	return convertDBRequestToModel(dbRequest), nil
}
