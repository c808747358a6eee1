package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"encore.dev/beta/errs"

	"readarrbridge.app/bridge/catalog"
	"readarrbridge.app/bridge/mocks/catalog/catalog_client"
	"readarrbridge.app/bridge/model"
)

func TestResolve(t *testing.T) {
	dune := &model.AddedBook{ID: 42, Title: "Dune", Monitored: true, Raw: json.RawMessage(`{"id":42,"title":"Dune","monitored":true}`)}
	expectedSpec := model.AddBookSpec{
		Title:             "Dune",
		ForeignBookID:     999,
		ForeignAuthorID:   111,
		RootFolderPath:    "/books",
		QualityProfileID:  2,
		MetadataProfileID: 1,
		Tags:              []int32{},
		SearchNow:         false,
	}

	testCases := []struct {
		name            string
		request         *model.Request
		setupCatalog    func(m *catalogExpect)
		expectedStatus  model.RequestStatus
		expectedFailure model.FailureKind
		expectedMessage string
	}{
		{
			name:    "book_added",
			request: pendingRequest(1, "Dune", "Frank Herbert"),
			setupCatalog: func(m *catalogExpect) {
				m.profiles(nil)
				m.search("Dune Frank Herbert", []model.Candidate{{Title: "Dune", ForeignBookID: "999", ForeignAuthorID: "111"}}, nil)
				m.add(expectedSpec, dune, nil)
			},
			expectedStatus:  model.RequestStatusSucceeded,
			expectedMessage: `Book "Dune" added/monitored successfully`,
		},
		{
			name:    "rank_zero_wins",
			request: pendingRequest(1, "Dune", "Frank Herbert"),
			setupCatalog: func(m *catalogExpect) {
				m.profiles(nil)
				m.search("Dune Frank Herbert", []model.Candidate{
					{Title: "Dune", ForeignBookID: "999", ForeignAuthorID: "111"},
					{Title: "Dune Messiah", ForeignBookID: "1000", ForeignAuthorID: "111"},
				}, nil)
				m.add(expectedSpec, dune, nil)
			},
			expectedStatus:  model.RequestStatusSucceeded,
			expectedMessage: `Book "Dune" added/monitored successfully`,
		},
		{
			name:    "no_candidates",
			request: pendingRequest(2, "Unknown Book", "Nobody"),
			setupCatalog: func(m *catalogExpect) {
				m.profiles(nil)
				m.search("Unknown Book Nobody", []model.Candidate{}, nil)
			},
			expectedStatus:  model.RequestStatusFailed,
			expectedFailure: model.FailureNotFound,
			expectedMessage: MessageBookNotFound,
		},
		{
			name:    "non_numeric_book_id",
			request: pendingRequest(3, "Dune", "Frank Herbert"),
			setupCatalog: func(m *catalogExpect) {
				m.profiles(nil)
				m.search("Dune Frank Herbert", []model.Candidate{{Title: "Dune", ForeignBookID: "dune-slug", ForeignAuthorID: "111"}}, nil)
			},
			expectedStatus:  model.RequestStatusFailed,
			expectedFailure: model.FailureUnprocessableIdentifiers,
			expectedMessage: `Unable to derive identifiers required to add the book: foreign book id "dune-slug" is not numeric`,
		},
		{
			name:    "missing_author_id",
			request: pendingRequest(3, "Dune", "Frank Herbert"),
			setupCatalog: func(m *catalogExpect) {
				m.profiles(nil)
				m.search("Dune Frank Herbert", []model.Candidate{{Title: "Dune", ForeignBookID: "999"}}, nil)
			},
			expectedStatus:  model.RequestStatusFailed,
			expectedFailure: model.FailureUnprocessableIdentifiers,
			expectedMessage: "Unable to derive identifiers required to add the book: foreign author id is missing",
		},
		{
			name:    "probe_failed",
			request: pendingRequest(4, "Dune", "Frank Herbert"),
			setupCatalog: func(m *catalogExpect) {
				m.profiles(errors.New("dial tcp 127.0.0.1:8787: connect: connection refused"))
			},
			expectedStatus:  model.RequestStatusFailed,
			expectedFailure: model.FailureCatalog,
			expectedMessage: "dial tcp 127.0.0.1:8787: connect: connection refused",
		},
		{
			name:    "search_failed",
			request: pendingRequest(4, "Dune", "Frank Herbert"),
			setupCatalog: func(m *catalogExpect) {
				m.profiles(nil)
				m.search("Dune Frank Herbert", nil, &catalog.APIError{Method: http.MethodGet, Path: "/search", StatusCode: http.StatusUnauthorized})
			},
			expectedStatus:  model.RequestStatusFailed,
			expectedFailure: model.FailureCatalog,
			expectedMessage: "readarr: GET /search: 401 Unauthorized",
		},
		{
			name:    "add_failed",
			request: pendingRequest(5, "Dune", "Frank Herbert"),
			setupCatalog: func(m *catalogExpect) {
				m.profiles(nil)
				m.search("Dune Frank Herbert", []model.Candidate{{Title: "Dune", ForeignBookID: "999", ForeignAuthorID: "111"}}, nil)
				m.add(expectedSpec, nil, errors.New("book already exists"))
			},
			expectedStatus:  model.RequestStatusFailed,
			expectedFailure: model.FailureCatalog,
			expectedMessage: "book already exists",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			b, mockLedger, mockCatalog := newPipeline(t, testOptions)
			id := tc.request.ID

			mockLedger.EXPECT().GetRequest(gomock.Any(), id).Return(tc.request, nil)
			tc.setupCatalog(&catalogExpect{mock: mockCatalog})

			if tc.expectedStatus == model.RequestStatusSucceeded {
				mockLedger.EXPECT().MarkSucceeded(gomock.Any(), id, dune).Return(&model.Request{ID: id, Status: model.RequestStatusSucceeded}, nil)
			} else {
				mockLedger.EXPECT().MarkFailed(gomock.Any(), id, tc.expectedMessage).Return(&model.Request{ID: id, Status: model.RequestStatusFailed}, nil)
			}

			outcome, err := b.Resolve(context.Background(), id)

			require.NoError(t, err)
			assert.Equal(t, id, outcome.RequestID)
			assert.Equal(t, tc.expectedStatus, outcome.Status)
			assert.Equal(t, tc.expectedFailure, outcome.Failure)
			assert.Equal(t, tc.expectedMessage, outcome.Message)
			if outcome.Succeeded() {
				assert.Equal(t, int64(42), outcome.Book.ID)
			} else {
				assert.Nil(t, outcome.Book)
			}
		})
	}
}

func TestResolve_WithoutProbe(t *testing.T) {
	opts := testOptions
	opts.ProbeMetadataProfiles = false
	b, mockLedger, mockCatalog := newPipeline(t, opts)

	mockLedger.EXPECT().GetRequest(gomock.Any(), int64(1)).Return(pendingRequest(1, "Dune", "Frank Herbert"), nil)
	mockCatalog.EXPECT().GetMetadataProfiles(gomock.Any()).Times(0)
	mockCatalog.EXPECT().SearchBooks(gomock.Any(), "Dune Frank Herbert").Return(nil, nil)
	mockLedger.EXPECT().MarkFailed(gomock.Any(), int64(1), MessageBookNotFound).Return(&model.Request{}, nil)

	outcome, err := b.Resolve(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, model.FailureNotFound, outcome.Failure)
}

func TestResolve_CustomSelector(t *testing.T) {
	last := SelectorFunc(func(candidates []model.Candidate) (model.Candidate, bool) {
		if len(candidates) == 0 {
			return model.Candidate{}, false
		}
		return candidates[len(candidates)-1], true
	})
	opts := testOptions
	opts.SearchOnAdd = true
	b, mockLedger, mockCatalog := newPipeline(t, opts, WithSelector(last))
	added := &model.AddedBook{ID: 43, Title: "Dune Messiah", Monitored: true}

	mockLedger.EXPECT().GetRequest(gomock.Any(), int64(1)).Return(pendingRequest(1, "Dune", "Frank Herbert"), nil)
	mockCatalog.EXPECT().GetMetadataProfiles(gomock.Any()).Return([]model.MetadataProfile{{ID: 1, Name: "Standard"}}, nil)
	mockCatalog.EXPECT().SearchBooks(gomock.Any(), "Dune Frank Herbert").Return([]model.Candidate{
		{Title: "Dune", ForeignBookID: "999", ForeignAuthorID: "111"},
		{Title: "Dune Messiah", ForeignBookID: "1000", ForeignAuthorID: "111"},
	}, nil)
	mockCatalog.EXPECT().AddBook(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, spec model.AddBookSpec) (*model.AddedBook, error) {
		assert.Equal(t, int64(1000), spec.ForeignBookID)
		assert.True(t, spec.SearchNow)
		return added, nil
	})
	mockLedger.EXPECT().MarkSucceeded(gomock.Any(), int64(1), added).Return(&model.Request{}, nil)

	outcome, err := b.Resolve(context.Background(), 1)

	require.NoError(t, err)
	assert.True(t, outcome.Succeeded())
}

func TestResolve_Errors(t *testing.T) {
	t.Run("request_not_found", func(t *testing.T) {
		b, mockLedger, _ := newPipeline(t, testOptions)
		mockLedger.EXPECT().GetRequest(gomock.Any(), int64(7)).Return(nil, &errs.Error{Code: errs.NotFound, Message: "request not found"})

		outcome, err := b.Resolve(context.Background(), 7)

		assert.Nil(t, outcome)
		assert.Equal(t, errs.NotFound, errs.Code(err))
	})

	t.Run("request_not_pending", func(t *testing.T) {
		b, mockLedger, _ := newPipeline(t, testOptions)
		mockLedger.EXPECT().GetRequest(gomock.Any(), int64(7)).Return(&model.Request{ID: 7, Status: model.RequestStatusSucceeded}, nil)

		outcome, err := b.Resolve(context.Background(), 7)

		assert.Nil(t, outcome)
		assert.Equal(t, errs.FailedPrecondition, errs.Code(err))
	})

	t.Run("storage_error_on_terminal_write", func(t *testing.T) {
		b, mockLedger, mockCatalog := newPipeline(t, testOptions)
		mockLedger.EXPECT().GetRequest(gomock.Any(), int64(7)).Return(pendingRequest(7, "Dune", "Frank Herbert"), nil)
		mockCatalog.EXPECT().GetMetadataProfiles(gomock.Any()).Return(nil, nil)
		mockCatalog.EXPECT().SearchBooks(gomock.Any(), gomock.Any()).Return(nil, nil)
		mockLedger.EXPECT().MarkFailed(gomock.Any(), int64(7), MessageBookNotFound).
			Return(nil, &errs.Error{Code: errs.Unavailable, Message: "storage unavailable"})

		outcome, err := b.Resolve(context.Background(), 7)

		assert.Nil(t, outcome)
		assert.Equal(t, errs.Unavailable, errs.Code(err))
	})
}

// catalogExpect records the catalog calls of one resolution in order.
type catalogExpect struct {
	mock *catalog_client.MockClient
	last *gomock.Call
}

func (c *catalogExpect) after(call *gomock.Call) {
	if c.last != nil {
		call.After(c.last)
	}
	c.last = call
}

func (c *catalogExpect) profiles(err error) {
	var profiles []model.MetadataProfile
	if err == nil {
		profiles = []model.MetadataProfile{{ID: 1, Name: "Standard"}}
	}
	c.after(c.mock.EXPECT().GetMetadataProfiles(gomock.Any()).Return(profiles, err))
}

func (c *catalogExpect) search(query string, candidates []model.Candidate, err error) {
	c.after(c.mock.EXPECT().SearchBooks(gomock.Any(), query).Return(candidates, err))
}

func (c *catalogExpect) add(spec model.AddBookSpec, book *model.AddedBook, err error) {
	c.after(c.mock.EXPECT().AddBook(gomock.Any(), spec).Return(book, err))
}
