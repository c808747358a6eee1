package workflow

import (
	"errors"
	"strconv"
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"

	"readarrbridge.app/bridge/model"
)

// TaskQueue is the Temporal task queue the resolution worker polls.
const TaskQueue = "book-requests"

// WorkflowID is the workflow id of a request's resolution. One id per request
// keeps at most one run in flight.
func WorkflowID(requestID int64) string {
	return "request-" + strconv.FormatInt(requestID, 10)
}

// ResolveRequestParams contains parameters for starting the resolution workflow
type ResolveRequestParams struct {
	RequestID int64 `json:"request_id"`
}

// ResolveRequest resolves one pending request. Catalog failures are recorded by the
// pipeline itself and are never retried here. If the resolution cannot complete at
// all, the request is marked failed so it does not stay pending.
func ResolveRequest(ctx workflow.Context, params ResolveRequestParams) (*model.Outcome, error) {
	logger := workflow.GetLogger(ctx)
	logger.Info("Starting resolve request workflow", "requestID", params.RequestID)

	outcome, err := resolveRequest(ctx, params.RequestID)
	if err == nil {
		logger.Info("Resolve request workflow completed", "requestID", params.RequestID, "status", outcome.Status)
		return outcome, nil
	}

	logger.Error("Resolution did not complete", "requestID", params.RequestID, "error", err)
	message := "resolution did not complete: " + rootCause(err).Error()
	if failErr := failRequest(ctx, params.RequestID, message); failErr != nil {
		logger.Error("Failed to record failure", "requestID", params.RequestID, "error", failErr)
		return nil, err
	}

	return &model.Outcome{
		RequestID: params.RequestID,
		Status:    model.RequestStatusFailed,
		Failure:   model.FailureIncomplete,
		Message:   message,
	}, nil
}

// resolveRequest executes the ResolveRequest activity exactly once
func resolveRequest(ctx workflow.Context, requestID int64) (*model.Outcome, error) {
	activityOptions := workflow.ActivityOptions{
		StartToCloseTimeout: 2 * time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			MaximumAttempts: 1,
		},
	}
	activityCtx := workflow.WithActivityOptions(ctx, activityOptions)

	var outcome model.Outcome
	if err := workflow.ExecuteActivity(activityCtx, ResolveRequestActivity, requestID).Get(ctx, &outcome); err != nil {
		return nil, err
	}
	return &outcome, nil
}

// failRequest executes the FailRequest activity
func failRequest(ctx workflow.Context, requestID int64, message string) error {
	activityOptions := workflow.ActivityOptions{
		StartToCloseTimeout: 30 * time.Second,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    500 * time.Millisecond,
			BackoffCoefficient: 2.0,
			MaximumInterval:    5 * time.Second,
			MaximumAttempts:    4,
		},
	}
	activityCtx := workflow.WithActivityOptions(ctx, activityOptions)
	return workflow.ExecuteActivity(activityCtx, FailRequestActivity, requestID, message).Get(ctx, nil)
}

func rootCause(err error) error {
	for {
		next := errors.Unwrap(err)
		if next == nil {
			return err
		}
		err = next
	}
}
