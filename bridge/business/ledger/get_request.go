package ledger

import (
	"context"

	"encore.dev/beta/errs"

	"readarrbridge.app/bridge/model"
	"readarrbridge.app/bridge/repository"
)

func (b *business) GetRequest(ctx context.Context, id int64) (*model.Request, error) {
	dbRequest, err := b.requestRepo.GetRequest(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, &errs.Error{Code: errs.NotFound, Message: "request not found"}
		}
		return nil, repository.Classify(err, "failed to get request")
	}

	return convertDBRequestToModel(dbRequest), nil
}
