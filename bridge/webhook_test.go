package bridge

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"encore.dev/beta/errs"

	"readarrbridge.app/bridge/model"
)

func postWebhook(s *Service, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/webhook/readarr", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.ReadarrWebhook(rec, req)
	return rec
}

func decodeWebhookResponse(t *testing.T, rec *httptest.ResponseRecorder) WebhookResponse {
	var response WebhookResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	return response
}

func TestReadarrWebhook(t *testing.T) {
	body := `{"bookTitle":"Dune","bookAuthors":"Frank Herbert","eventUser":"alice"}`

	testCases := []struct {
		name            string
		outcome         *model.Outcome
		expectedStatus  int
		expectedSuccess bool
		expectedError   string
	}{
		{
			name: "book_added",
			outcome: &model.Outcome{
				RequestID: 1,
				Status:    model.RequestStatusSucceeded,
				Message:   `Book "Dune" added/monitored successfully`,
				Book:      &model.AddedBook{ID: 42, Title: "Dune", Monitored: true},
			},
			expectedStatus:  http.StatusOK,
			expectedSuccess: true,
		},
		{
			name: "not_found",
			outcome: &model.Outcome{
				RequestID: 1,
				Status:    model.RequestStatusFailed,
				Failure:   model.FailureNotFound,
				Message:   "Book not found from title/author search",
			},
			expectedStatus: http.StatusNotFound,
			expectedError:  "Book not found from title/author search",
		},
		{
			name: "unprocessable_identifiers",
			outcome: &model.Outcome{
				RequestID: 1,
				Status:    model.RequestStatusFailed,
				Failure:   model.FailureUnprocessableIdentifiers,
				Message:   "Unable to derive identifiers required to add the book",
			},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedError:  "Unable to derive identifiers required to add the book",
		},
		{
			name: "catalog_error",
			outcome: &model.Outcome{
				RequestID: 1,
				Status:    model.RequestStatusFailed,
				Failure:   model.FailureCatalog,
				Message:   "readarr: POST /book: 500 Internal Server Error",
			},
			expectedStatus: http.StatusBadGateway,
			expectedError:  "readarr: POST /book: 500 Internal Server Error",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestService(t, DispatchInline)

			s.pipeline.EXPECT().
				Ingest(gomock.Any(), "Dune", "Frank Herbert", []byte(body)).
				Return(&model.Request{ID: 1, Status: model.RequestStatusPending}, nil)
			s.pipeline.EXPECT().Resolve(gomock.Any(), int64(1)).Return(tc.outcome, nil)

			rec := postWebhook(s.Service, body)

			assert.Equal(t, tc.expectedStatus, rec.Code)
			response := decodeWebhookResponse(t, rec)
			assert.Equal(t, tc.expectedSuccess, response.Success)
			assert.Equal(t, tc.expectedError, response.Error)
			assert.Equal(t, int64(1), response.RequestID)
			if tc.expectedSuccess {
				require.NotNil(t, response.Book)
				assert.Equal(t, int64(42), response.Book.ID)
				assert.True(t, response.Book.Monitored)
				assert.Equal(t, `Book "Dune" added/monitored successfully`, response.Message)
			}
		})
	}
}

func TestReadarrWebhook_RejectedBeforeLedger(t *testing.T) {
	testCases := []struct {
		name          string
		body          string
		expectedError string
	}{
		{name: "empty_title", body: `{"bookTitle":"","bookAuthors":"Frank Herbert"}`, expectedError: "Invalid or missing 'bookTitle'"},
		{name: "blank_title", body: `{"bookTitle":"   ","bookAuthors":"Frank Herbert"}`, expectedError: "Invalid or missing 'bookTitle'"},
		{name: "missing_authors", body: `{"bookTitle":"Dune"}`, expectedError: "Invalid or missing 'bookAuthors'"},
		{name: "numeric_title", body: `{"bookTitle":42,"bookAuthors":"Frank Herbert"}`, expectedError: "Invalid or missing 'bookTitle'"},
		{name: "not_json", body: `bookTitle=Dune`, expectedError: "request body must be a JSON object"},
		{name: "json_array", body: `[]`, expectedError: "request body must be a JSON object"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestService(t, DispatchInline)
			s.pipeline.EXPECT().Ingest(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

			rec := postWebhook(s.Service, tc.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tc.expectedError, decodeWebhookResponse(t, rec).Error)
		})
	}
}

func TestReadarrWebhook_StorageError(t *testing.T) {
	s := newTestService(t, DispatchInline)
	body := `{"bookTitle":"Dune","bookAuthors":"Frank Herbert"}`

	s.pipeline.EXPECT().Ingest(gomock.Any(), "Dune", "Frank Herbert", gomock.Any()).
		Return(nil, &errs.Error{Code: errs.Unavailable, Message: "storage unavailable"})

	rec := postWebhook(s.Service, body)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestReadarrWebhook_WorkflowDispatch(t *testing.T) {
	body := `{"bookTitle":"Dune","bookAuthors":"Frank Herbert"}`

	t.Run("accepted", func(t *testing.T) {
		s := newTestService(t, DispatchWorkflow)

		s.pipeline.EXPECT().Ingest(gomock.Any(), "Dune", "Frank Herbert", gomock.Any()).
			Return(&model.Request{ID: 7, Status: model.RequestStatusPending}, nil)
		s.temporal.On("ExecuteWorkflow",
			mock.Anything, // context
			mock.Anything, // StartWorkflowOptions
			mock.Anything, // workflow function
			mock.Anything, // workflow args
		).Return(nil, nil)

		rec := postWebhook(s.Service, body)

		assert.Equal(t, http.StatusAccepted, rec.Code)
		response := decodeWebhookResponse(t, rec)
		assert.True(t, response.Success)
		assert.Equal(t, int64(7), response.RequestID)
		assert.Equal(t, "pending", response.Status)
	})

	t.Run("start_failure_marks_failed", func(t *testing.T) {
		s := newTestService(t, DispatchWorkflow)

		s.pipeline.EXPECT().Ingest(gomock.Any(), "Dune", "Frank Herbert", gomock.Any()).
			Return(&model.Request{ID: 8, Status: model.RequestStatusPending}, nil)
		s.temporal.On("ExecuteWorkflow", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(nil, errors.New("temporal unavailable"))
		s.ledger.EXPECT().MarkFailed(gomock.Any(), int64(8), "failed to dispatch resolution: execute workflow request-8: temporal unavailable").
			Return(&model.Request{ID: 8, Status: model.RequestStatusFailed}, nil)

		rec := postWebhook(s.Service, body)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.False(t, decodeWebhookResponse(t, rec).Success)
	})
}

func TestWebhookRequest_Validate(t *testing.T) {
	testCases := []struct {
		name          string
		request       WebhookRequest
		expectedError string
	}{
		{name: "valid_request", request: WebhookRequest{BookTitle: "Dune", BookAuthors: "Frank Herbert"}},
		{name: "blank_title", request: WebhookRequest{BookTitle: " \t", BookAuthors: "Frank Herbert"}, expectedError: "Invalid or missing 'bookTitle'"},
		{name: "blank_authors", request: WebhookRequest{BookTitle: "Dune", BookAuthors: ""}, expectedError: "Invalid or missing 'bookAuthors'"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.request.Validate()

			if tc.expectedError != "" {
				assert.Equal(t, errs.InvalidArgument, errs.Code(err))
				assert.Equal(t, tc.expectedError, errorMessage(err))
				return
			}
			assert.NoError(t, err)
		})
	}
}
