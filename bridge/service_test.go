package bridge

import (
	"testing"

	"go.temporal.io/sdk/mocks"
	"go.uber.org/mock/gomock"

	"readarrbridge.app/bridge/cache"
	"readarrbridge.app/bridge/mocks/business/ledger_business"
	"readarrbridge.app/bridge/mocks/business/pipeline_business"
)

// Run tests using `encore test`, which compiles the Encore app and then runs `go test`.

var testSettings = settings{
	ReadarrURL:            "http://readarr.test",
	APIKey:                "secret",
	RootFolderPath:        "/books",
	QualityProfileID:      2,
	MetadataProfileID:     1,
	ProbeMetadataProfiles: true,
	Dispatch:              DispatchInline,
}

type testService struct {
	*Service
	ledger   *ledger_business.MockBusiness
	pipeline *pipeline_business.MockBusiness
	temporal *mocks.Client
}

func newTestService(t *testing.T, mode DispatchMode) *testService {
	ctrl := gomock.NewController(t)
	mockLedger := ledger_business.NewMockBusiness(ctrl)
	mockPipeline := pipeline_business.NewMockBusiness(ctrl)

	s := testSettings
	s.Dispatch = mode

	svc := &Service{
		settings: s,
		ledger:   mockLedger,
		pipeline: mockPipeline,
		caches:   cache.NewManager(cache.New(cache.Readarr, "Readarr catalog")),
	}

	ts := &testService{Service: svc, ledger: mockLedger, pipeline: mockPipeline}
	if mode == DispatchWorkflow {
		ts.temporal = mocks.NewClient(t)
		svc.temporal = ts.temporal
	}
	return ts
}
