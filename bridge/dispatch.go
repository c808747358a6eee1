package bridge

import (
	"context"
	"fmt"

	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/temporal"

	"encore.dev/rlog"

	"readarrbridge.app/bridge/model"
	"readarrbridge.app/bridge/workflow"
)

// dispatch resolves a pending request according to the configured mode. A
// resolution, once started, is not cancelled when the caller goes away.
func (s *Service) dispatch(ctx context.Context, requestID int64) (*model.Outcome, error) {
	ctx = context.WithoutCancel(ctx)

	if s.settings.Dispatch != DispatchWorkflow {
		return s.pipeline.Resolve(ctx, requestID)
	}

	if err := s.startResolveWorkflow(ctx, requestID); err != nil {
		rlog.Error("workflow start issue", "request_id", requestID, "workflow_id", workflow.WorkflowID(requestID), "error", err)

		message := "failed to dispatch resolution: " + err.Error()
		if _, markErr := s.ledger.MarkFailed(ctx, requestID, message); markErr != nil {
			return nil, markErr
		}
		return &model.Outcome{
			RequestID: requestID,
			Status:    model.RequestStatusFailed,
			Failure:   model.FailureIncomplete,
			Message:   message,
		}, nil
	}

	return &model.Outcome{RequestID: requestID, Status: model.RequestStatusPending}, nil
}

// retry requeues a failed request and resolves it again
func (s *Service) retry(ctx context.Context, requestID int64) (*model.Outcome, error) {
	if s.settings.Dispatch != DispatchWorkflow {
		return s.pipeline.Retry(context.WithoutCancel(ctx), requestID)
	}

	if _, err := s.pipeline.Requeue(ctx, requestID); err != nil {
		return nil, err
	}
	return s.dispatch(ctx, requestID)
}

// startResolveWorkflow starts the Temporal workflow resolving one request
func (s *Service) startResolveWorkflow(ctx context.Context, requestID int64) error {
	if s.temporal == nil {
		return fmt.Errorf("temporal client is not configured")
	}

	workflowID := workflow.WorkflowID(requestID)
	// A run still in flight for the same request surfaces as AlreadyStarted instead of being reused silently.
	options := client.StartWorkflowOptions{
		ID:                                       workflowID,
		TaskQueue:                                workflow.TaskQueue,
		WorkflowExecutionErrorWhenAlreadyStarted: true,
	}

	params := workflow.ResolveRequestParams{
		RequestID: requestID,
	}

	_, err := s.temporal.ExecuteWorkflow(ctx, options, workflow.ResolveRequest, params)
	if err != nil {
		if temporal.IsWorkflowExecutionAlreadyStartedError(err) {
			rlog.Info("workflow already started", "request_id", requestID, "workflow_id", workflowID)
			return nil
		}
		return fmt.Errorf("execute workflow %s: %w", workflowID, err)
	}
	return nil
}
