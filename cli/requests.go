package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"readarrbridge.app/bridge/model"
)

const (
	FlagStatus         = "status"
	FlagLimit          = "limit"
	FlagOffset         = "offset"
	FlagIdempotencyKey = "idempotency-key"
)

func newRequestsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "requests",
		Aliases:           []string{"request", "req"},
		Short:             "Inspect and operate recorded book requests",
		Args:              cobra.NoArgs,
		DisableAutoGenTag: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(newListRequestsCommand())
	cmd.AddCommand(newGetRequestCommand())
	cmd.AddCommand(newRetryRequestCommand())
	cmd.AddCommand(newRemoveRequestCommand())

	return cmd
}

func newListRequestsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recorded requests, newest first",
		Args:  cobra.NoArgs,
		Example: `  # List the 20 most recent failed requests
  abrctl requests list --status failed --limit 20`,
		DisableAutoGenTag: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cc, err := fromCommand(cmd)
			if err != nil {
				return err
			}

			status, _ := cmd.Flags().GetString(FlagStatus)
			if status != "" && !model.RequestStatus(status).Valid() {
				return fmt.Errorf("invalid status %q: must be pending, succeeded or failed", status)
			}
			limit, _ := cmd.Flags().GetInt(FlagLimit)
			offset, _ := cmd.Flags().GetInt(FlagOffset)
			if limit < 0 || offset < 0 {
				return errors.New("limit and offset must not be negative")
			}

			requests, err := cc.client.ListRequests(cmd.Context(), status, limit, offset)
			if err != nil {
				return fmt.Errorf("listing requests failed: %w", err)
			}
			return renderRequests(cmd.OutOrStdout(), cc.output, requests)
		},
	}

	cmd.Flags().String(FlagStatus, "", "only list requests with this status (pending, succeeded, failed)")
	cmd.Flags().Int(FlagLimit, 0, "maximum number of requests to list (0 uses the server default)")
	cmd.Flags().Int(FlagOffset, 0, "number of requests to skip")

	return cmd
}

func newGetRequestCommand() *cobra.Command {
	return &cobra.Command{
		Use:               "get <id>",
		Short:             "Show a single request with its stored payloads",
		Args:              cobra.ExactArgs(1),
		DisableAutoGenTag: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseRequestID(args[0])
			if err != nil {
				return err
			}
			cc, err := fromCommand(cmd)
			if err != nil {
				return err
			}

			request, err := cc.client.GetRequest(cmd.Context(), id)
			if err != nil {
				return fmt.Errorf("getting request %d failed: %w", id, err)
			}
			return renderRequest(cmd.OutOrStdout(), cc.output, request)
		},
	}
}

func newRetryRequestCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "retry <id>",
		Short: "Run resolution again for a failed request",
		Args:  cobra.ExactArgs(1),
		Example: `  # Retry request 42, safe to repeat with the same key
  abrctl requests retry 42 --idempotency-key retry-42`,
		DisableAutoGenTag: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAction(cmd, args, "retry", (*Client).RetryRequest)
		},
	}
	cmd.Flags().String(FlagIdempotencyKey, "", "idempotency key sent with the call")
	return cmd
}

func newRemoveRequestCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "remove <id>",
		Short:             "Forget the book added for a request",
		Args:              cobra.ExactArgs(1),
		DisableAutoGenTag: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAction(cmd, args, "remove", (*Client).RemoveRequest)
		},
	}
	cmd.Flags().String(FlagIdempotencyKey, "", "idempotency key sent with the call")
	return cmd
}

type actionFunc func(c *Client, ctx context.Context, id int64, idempotencyKey string) (*ActionResult, error)

func runAction(cmd *cobra.Command, args []string, verb string, action actionFunc) error {
	id, err := parseRequestID(args[0])
	if err != nil {
		return err
	}
	cc, err := fromCommand(cmd)
	if err != nil {
		return err
	}
	key, _ := cmd.Flags().GetString(FlagIdempotencyKey)

	result, err := action(cc.client, cmd.Context(), id, key)
	if err != nil {
		return fmt.Errorf("%s request %d failed: %w", verb, id, err)
	}
	return renderAction(cmd.OutOrStdout(), cc.output, verb, id, result)
}

func parseRequestID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid request id %q", arg)
	}
	return id, nil
}
