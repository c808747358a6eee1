package model

import (
	"encoding/json"
	"time"
)

// Request is a single ingested book request as recorded in the ledger.
type Request struct {
	ID             int64           `json:"id"`
	ReceivedAt     time.Time       `json:"receivedAt"`
	BookTitle      string          `json:"bookTitle"`
	BookAuthors    string          `json:"bookAuthors"`
	RequestBody    json.RawMessage `json:"requestBody,omitempty"`
	Status         RequestStatus   `json:"status"`
	ErrorMessage   *string         `json:"errorMessage,omitempty"`
	AddedBookID    *int64          `json:"addedBookId,omitempty"`
	AddedBookTitle *string         `json:"addedBookTitle,omitempty"`
	Monitored      *bool           `json:"monitored,omitempty"`
	ResponseJSON   json.RawMessage `json:"responseJson,omitempty"`
	ProcessedAt    *time.Time      `json:"processedAt,omitempty"`
}

// RequestSummary is the listing view of a Request.
type RequestSummary struct {
	ID             int64         `json:"id"`
	ReceivedAt     time.Time     `json:"receivedAt"`
	BookTitle      string        `json:"bookTitle"`
	BookAuthors    string        `json:"bookAuthors"`
	Status         RequestStatus `json:"status"`
	AddedBookID    *int64        `json:"addedBookId"`
	AddedBookTitle *string       `json:"addedBookTitle"`
}

// Summary drops the audit payloads.
func (r *Request) Summary() RequestSummary {
	return RequestSummary{
		ID:             r.ID,
		ReceivedAt:     r.ReceivedAt,
		BookTitle:      r.BookTitle,
		BookAuthors:    r.BookAuthors,
		Status:         r.Status,
		AddedBookID:    r.AddedBookID,
		AddedBookTitle: r.AddedBookTitle,
	}
}

// Removable reports whether the request reached the catalog and can be dropped locally.
func (r *Request) Removable() bool {
	return r.AddedBookID != nil
}

type RequestStatus string

const (
	RequestStatusPending   RequestStatus = "pending"
	RequestStatusSucceeded RequestStatus = "succeeded"
	RequestStatusFailed    RequestStatus = "failed"
)

func (s RequestStatus) Valid() bool {
	switch s {
	case RequestStatusPending, RequestStatusSucceeded, RequestStatusFailed:
		return true
	}
	return false
}

// ListFilter narrows a ledger listing. A zero Limit means no limit.
type ListFilter struct {
	Status RequestStatus
	Limit  int32
	Offset int32
}
