package pipeline

import (
	"testing"

	"go.uber.org/mock/gomock"

	"readarrbridge.app/bridge/mocks/business/ledger_business"
	"readarrbridge.app/bridge/mocks/catalog/catalog_client"
	"readarrbridge.app/bridge/model"
)

var testOptions = Options{
	RootFolderPath:        "/books",
	QualityProfileID:      2,
	MetadataProfileID:     1,
	SearchOnAdd:           false,
	ProbeMetadataProfiles: true,
}

func newPipeline(t *testing.T, opts Options, options ...Option) (*business, *ledger_business.MockBusiness, *catalog_client.MockClient) {
	ctrl := gomock.NewController(t)
	mockLedger := ledger_business.NewMockBusiness(ctrl)
	mockCatalog := catalog_client.NewMockClient(ctrl)
	b := NewPipelineBusiness(mockLedger, mockCatalog, opts, options...).(*business)
	return b, mockLedger, mockCatalog
}

func pendingRequest(id int64, title, authors string) *model.Request {
	return &model.Request{ID: id, BookTitle: title, BookAuthors: authors, Status: model.RequestStatusPending}
}
