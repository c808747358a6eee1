package bridge

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"readarrbridge.app/bridge/model"
)

const maxWebhookBodyBytes = 1 << 20

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// WebhookRequest is the part of the inbound payload the pipeline reads. The
// whole body, extra fields included, is stored verbatim with the request.
type WebhookRequest struct {
	BookTitle   string `json:"bookTitle" validate:"notblank"`
	BookAuthors string `json:"bookAuthors" validate:"notblank"`
	EventUser   string `json:"eventUser,omitempty"`
}

type WebhookBook struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Monitored bool   `json:"monitored"`
}

type WebhookResponse struct {
	Success   bool         `json:"success"`
	Message   string       `json:"message,omitempty"`
	Error     string       `json:"error,omitempty"`
	RequestID int64        `json:"requestId,omitempty"`
	Status    string       `json:"status,omitempty"`
	Book      *WebhookBook `json:"book,omitempty"`
}

// Validate implements validation for WebhookRequest using go-playground/validator
func (r *WebhookRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			return &errs.Error{Code: errs.InvalidArgument, Message: fmt.Sprintf("Invalid or missing '%s'", fieldErrs[0].Field())}
		}
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}
	return nil
}

// decodeWebhookRequest reads the fields the pipeline needs. Fields of the wrong
// type are treated as missing.
func decodeWebhookRequest(body []byte) (*WebhookRequest, error) {
	var raw map[string]any
	if err := json.Unmarshal(body, &raw); err != nil || raw == nil {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "request body must be a JSON object"}
	}

	req := &WebhookRequest{}
	req.BookTitle, _ = raw["bookTitle"].(string)
	req.BookAuthors, _ = raw["bookAuthors"].(string)
	req.EventUser, _ = raw["eventUser"].(string)
	return req, nil
}

// ReadarrWebhook ingests a book request and resolves it.
//
//encore:api public raw method=POST path=/webhook/readarr
func (s *Service) ReadarrWebhook(w http.ResponseWriter, req *http.Request) {
	ctx := req.Context()

	body, err := io.ReadAll(http.MaxBytesReader(w, req.Body, maxWebhookBodyBytes))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, WebhookResponse{Error: "unable to read request body"})
		return
	}

	payload, err := decodeWebhookRequest(body)
	if err == nil {
		err = payload.Validate()
	}
	if err != nil {
		writeJSON(w, http.StatusBadRequest, WebhookResponse{Error: errorMessage(err)})
		return
	}

	request, err := s.pipeline.Ingest(ctx, payload.BookTitle, payload.BookAuthors, body)
	if err != nil {
		rlog.Error("failed to ingest request", "error", err)
		errs.HTTPError(w, err)
		return
	}

	outcome, err := s.dispatch(ctx, request.ID)
	if err != nil {
		rlog.Error("webhook processing failed", "request_id", request.ID, "error", err)
		errs.HTTPError(w, err)
		return
	}

	status, response := webhookResponse(outcome)
	writeJSON(w, status, response)
}

// webhookResponse maps an outcome to the status code and body answered to the webhook caller
func webhookResponse(outcome *model.Outcome) (int, WebhookResponse) {
	switch {
	case outcome.Succeeded():
		return http.StatusOK, WebhookResponse{
			Success:   true,
			Message:   outcome.Message,
			RequestID: outcome.RequestID,
			Book: &WebhookBook{
				ID:        outcome.Book.ID,
				Title:     outcome.Book.Title,
				Monitored: outcome.Book.Monitored,
			},
		}
	case outcome.Status == model.RequestStatusPending:
		return http.StatusAccepted, WebhookResponse{
			Success:   true,
			RequestID: outcome.RequestID,
			Status:    string(model.RequestStatusPending),
		}
	}

	response := WebhookResponse{Error: outcome.Message, RequestID: outcome.RequestID}
	switch outcome.Failure {
	case model.FailureNotFound:
		return http.StatusNotFound, response
	case model.FailureUnprocessableIdentifiers:
		return http.StatusUnprocessableEntity, response
	case model.FailureCatalog:
		return http.StatusBadGateway, response
	default:
		return http.StatusInternalServerError, response
	}
}

// errorMessage returns the caller-facing message of err without its error code prefix
func errorMessage(err error) string {
	var apiErr *errs.Error
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return err.Error()
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		rlog.Error("failed to write response", "error", err)
	}
}
