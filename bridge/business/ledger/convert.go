package ledger

import (
	"encoding/json"

	"readarrbridge.app/bridge/model"
	"readarrbridge.app/bridge/repository/requests"
)

// convertDBRequestToModel converts a database request row to the domain model
func convertDBRequestToModel(dbRequest requests.Request) *model.Request {
	request := &model.Request{
		ID:          dbRequest.ID,
		ReceivedAt:  dbRequest.ReceivedAt.Time,
		BookTitle:   dbRequest.BookTitle,
		BookAuthors: dbRequest.BookAuthors,
		Status:      model.RequestStatus(dbRequest.Status),
	}

	if len(dbRequest.RequestBody) > 0 {
		request.RequestBody = json.RawMessage(dbRequest.RequestBody)
	}

	if dbRequest.ErrorMessage.Valid {
		request.ErrorMessage = &dbRequest.ErrorMessage.String
	}

	if dbRequest.AddedBookID.Valid {
		request.AddedBookID = &dbRequest.AddedBookID.Int64
	}

	if dbRequest.AddedBookTitle.Valid {
		request.AddedBookTitle = &dbRequest.AddedBookTitle.String
	}

	if dbRequest.Monitored.Valid {
		request.Monitored = &dbRequest.Monitored.Bool
	}

	if len(dbRequest.ResponseJson) > 0 {
		request.ResponseJSON = json.RawMessage(dbRequest.ResponseJson)
	}

	if dbRequest.ProcessedAt.Valid {
		request.ProcessedAt = &dbRequest.ProcessedAt.Time
	}

	return request
}
