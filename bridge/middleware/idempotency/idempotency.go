package idempotency

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"errors"
	"reflect"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"

	"encore.dev/beta/errs"
	"encore.dev/middleware"
	"encore.dev/rlog"
	"encore.dev/storage/cache"

	"readarrbridge.app/bridge/model"
)

const (
	IdempotencyHeader = "X-Idempotency-Key"

	// inFlightKey marks the per-path guard used when no idempotency key is sent.
	inFlightKey = "in-flight"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ActionMiddleware guards state-changing actions. With an X-Idempotency-Key header
// the first response is replayed for the same key. Without it, a second concurrent
// call on the same path is rejected until the first one finishes.
//
//encore:middleware target=tag:idempotency
func ActionMiddleware(req middleware.Request, next middleware.Next) middleware.Response {
	idempotencyKey := extractIdempotencyKey(req)
	if idempotencyKey == "" {
		return guardInFlight(req, next)
	}

	bodyHash := generateBodyHash(req)
	actionKey := model.ActionKey{
		Resource: req.Data().Path,
		Key:      idempotencyKey,
	}

	claimed, err := markAsProcessing(req.Context(), actionKey, bodyHash, completedTTL)
	if err != nil {
		return middleware.Response{Err: err}
	}
	if !claimed {
		entry, getErr := ActionCache.Get(req.Context(), actionKey)
		if getErr != nil {
			rlog.Error("Failed to read idempotency entry", "key", idempotencyKey, "error", getErr)
			return middleware.Response{
				Err: &errs.Error{Code: errs.Internal, Message: "Failed to check idempotency"},
			}
		}
		return handleExistingEntry(req, next, entry, bodyHash, idempotencyKey)
	}

	response := next(req)

	if response.Err != nil {
		deleteCacheEntry(req.Context(), actionKey)
	} else {
		markAsCompleted(req.Context(), actionKey, bodyHash, idempotencyKey, response)
	}

	return response
}

// guardInFlight lets one call per path run at a time and releases the path when it returns
func guardInFlight(req middleware.Request, next middleware.Next) middleware.Response {
	actionKey := model.ActionKey{
		Resource: req.Data().Path,
		Key:      inFlightKey,
	}

	claimed, err := markAsProcessing(req.Context(), actionKey, "", inFlightTTL)
	if err != nil {
		return middleware.Response{Err: err}
	}
	if !claimed {
		return handleProcessingEntry(actionKey.Resource)
	}
	defer deleteCacheEntry(context.WithoutCancel(req.Context()), actionKey)

	return next(req)
}

// extractIdempotencyKey returns the trimmed idempotency key header, or empty when absent
func extractIdempotencyKey(req middleware.Request) string {
	if headers := req.Data().Headers; headers != nil {
		return strings.TrimSpace(headers.Get(IdempotencyHeader))
	}
	return ""
}

// generateBodyHash creates a hash of the request body for conflict detection
func generateBodyHash(req middleware.Request) string {
	var bodyHash string
	if payload := req.Data().Payload; payload != nil {
		if bodyBytes, err := json.Marshal(payload); err != nil {
			rlog.Error("Failed to marshal request body", "error", err)
		} else {
			bodyHash = hashing(bodyBytes)
		}
	}
	return bodyHash
}

// handleExistingEntry handles cases where a cache entry already exists
func handleExistingEntry(req middleware.Request, next middleware.Next, entry model.ActionEntry, bodyHash, idempotencyKey string) middleware.Response {
	if err := validateBodyHash(entry, bodyHash); err != nil {
		return middleware.Response{Err: err}
	}

	switch entry.State {
	case model.ActionStateProcessing:
		return handleProcessingEntry(idempotencyKey)
	case model.ActionStateCompleted:
		return handleCompletedEntry(req, next, entry, idempotencyKey)
	default:
		rlog.Warn("Unknown cache entry state, processing as new request", "key", idempotencyKey, "state", entry.State)
		return next(req)
	}
}

// validateBodyHash checks for conflicts in request body hash
func validateBodyHash(entry model.ActionEntry, bodyHash string) *errs.Error {
	if bodyHash != "" && entry.RequestBodyHash != "" && bodyHash != entry.RequestBodyHash {
		return &errs.Error{Code: errs.InvalidArgument, Message: "idempotency key conflict: request body does not match previous request"}
	}
	return nil
}

// handleProcessingEntry handles concurrent request detection
func handleProcessingEntry(key string) middleware.Response {
	rlog.Info("Concurrent request detected", "key", key)
	return middleware.Response{
		Err: &errs.Error{Code: errs.Aborted, Message: "Request is already being processed."},
	}
}

// handleCompletedEntry handles returning cached responses
func handleCompletedEntry(req middleware.Request, next middleware.Next, entry model.ActionEntry, idempotencyKey string) middleware.Response {
	if len(entry.Response) > 0 {
		rlog.Info("Returning cached response", "key", idempotencyKey)

		if api := req.Data().API; api != nil && api.ResponseType != nil {
			responseValue := reflect.New(api.ResponseType.Elem()).Interface()

			err := json.Unmarshal(entry.Response, responseValue)
			if err == nil {
				return middleware.Response{Payload: responseValue}
			}
			rlog.Error("Failed to unmarshal cached response into correct type", "error", err, "key", idempotencyKey)
		}
	}

	// corrupted or untyped entry
	return next(req)
}

// markAsProcessing claims the action key. It reports false when another call holds it.
func markAsProcessing(ctx context.Context, actionKey model.ActionKey, bodyHash string, ttl time.Duration) (bool, *errs.Error) {
	now := time.Now()
	err := ActionCache.With(cache.ExpireIn(ttl)).SetIfNotExists(ctx, actionKey, model.ActionEntry{
		State:           model.ActionStateProcessing,
		RequestBodyHash: bodyHash,
		CreatedAt:       now,
		UpdatedAt:       now,
	})
	if errors.Is(err, cache.KeyExists) {
		return false, nil
	}
	if err != nil {
		rlog.Error("Failed to mark request as processing", "error", err)
		return false, &errs.Error{Code: errs.Internal, Message: "Failed to mark request as processing"}
	}
	return true, nil
}

// deleteCacheEntry releases the action key
func deleteCacheEntry(ctx context.Context, actionKey model.ActionKey) {
	if _, deleteErr := ActionCache.Delete(ctx, actionKey); deleteErr != nil {
		rlog.Error("Failed to clear action entry from cache", "error", deleteErr)
	}
}

// markAsCompleted caches the successful response
func markAsCompleted(ctx context.Context, actionKey model.ActionKey, bodyHash, idempotencyKey string, response middleware.Response) {
	completedEntry := model.ActionEntry{
		State:           model.ActionStateCompleted,
		RequestBodyHash: bodyHash,
		UpdatedAt:       time.Now(),
	}

	if response.Payload != nil {
		payloadBytes, err := json.Marshal(response.Payload)
		if err != nil {
			rlog.Error("Failed to marshal response payload for caching", "error", err)
			deleteCacheEntry(ctx, actionKey)
			return
		}
		completedEntry.Response = payloadBytes
	}

	if setErr := ActionCache.With(cache.ExpireIn(completedTTL)).Set(ctx, actionKey, completedEntry); setErr != nil {
		rlog.Error("Failed to cache successful response", "error", setErr)
	}

	rlog.Debug("Request completed and response cached", "key", idempotencyKey)
}

// hashing creates a stable hash of the JSON request body
func hashing(body []byte) string {
	if len(body) == 0 {
		return ""
	}

	hash := md5.New()
	hash.Write(body)
	return hex.EncodeToString(hash.Sum(nil))
}
