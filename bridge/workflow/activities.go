package workflow

import (
	"context"

	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/temporal"

	"readarrbridge.app/bridge/business/ledger"
	"readarrbridge.app/bridge/business/pipeline"
	"readarrbridge.app/bridge/model"
)

// ActivityDependencies holds the dependencies needed by activities
type ActivityDependencies struct {
	Pipeline pipeline.Business
	Ledger   ledger.Business
}

var activityDeps *ActivityDependencies

// SetActivityDependencies sets the dependencies for activities
func SetActivityDependencies(pipelineBusiness pipeline.Business, ledgerBusiness ledger.Business) {
	activityDeps = &ActivityDependencies{
		Pipeline: pipelineBusiness,
		Ledger:   ledgerBusiness,
	}
}

// ResolveRequestActivity runs one resolution of a pending request
func ResolveRequestActivity(ctx context.Context, requestID int64) (*model.Outcome, error) {
	logger := activity.GetLogger(ctx)
	logger.Info("Processing resolve request activity", "requestID", requestID)

	if activityDeps == nil || activityDeps.Pipeline == nil {
		logger.Error("Activity dependencies not set")
		return nil, temporal.NewApplicationError("activity dependencies not initialized", "DependencyError")
	}

	outcome, err := activityDeps.Pipeline.Resolve(ctx, requestID)
	if err != nil {
		logger.Error("Failed to resolve request", "requestID", requestID, "error", err)
		return nil, temporal.NewNonRetryableApplicationError("failed to resolve request", "REQUEST_RESOLUTION_FAILED", err)
	}

	logger.Info("Resolved request", "requestID", requestID, "status", outcome.Status, "failure", outcome.Failure)
	return outcome, nil
}

// FailRequestActivity records a failure for a request whose resolution never completed
func FailRequestActivity(ctx context.Context, requestID int64, message string) error {
	logger := activity.GetLogger(ctx)
	logger.Info("Processing fail request activity", "requestID", requestID)

	if activityDeps == nil || activityDeps.Ledger == nil {
		logger.Error("Activity dependencies not set")
		return temporal.NewApplicationError("activity dependencies not initialized", "DependencyError")
	}

	if _, err := activityDeps.Ledger.MarkFailed(ctx, requestID, message); err != nil {
		logger.Error("Failed to mark request failed", "requestID", requestID, "error", err)
		return err
	}

	logger.Info("Marked request failed", "requestID", requestID)
	return nil
}
