package model

import (
	"encoding/json"
	"time"
)

// ActionKey identifies one guarded action in the idempotency keyspace.
// Key is the caller's X-Idempotency-Key, or a fixed marker for the per-path in-flight guard.
type ActionKey struct {
	Resource string
	Key      string
}

type ActionState string

const (
	ActionStateProcessing ActionState = "processing"
	ActionStateCompleted  ActionState = "completed"
)

// ActionEntry is what the idempotency keyspace stores per ActionKey.
type ActionEntry struct {
	State           ActionState     `json:"state"`
	RequestBodyHash string          `json:"request_body_hash"`
	Response        json.RawMessage `json:"response,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}
