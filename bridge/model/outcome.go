package model

// FailureKind classifies why a resolution ended in the failed state.
type FailureKind string

const (
	FailureNone                     FailureKind = ""
	FailureNotFound                 FailureKind = "not_found"
	FailureUnprocessableIdentifiers FailureKind = "unprocessable_identifiers"
	FailureCatalog                  FailureKind = "catalog_error"
	// FailureIncomplete means the resolution could not be run to completion.
	FailureIncomplete               FailureKind = "incomplete"
)

// Outcome is the result of one resolution run. Status is pending only when
// resolution was handed off to a workflow and has not finished yet.
type Outcome struct {
	RequestID int64         `json:"requestId"`
	Status    RequestStatus `json:"status"`
	Failure   FailureKind   `json:"failure,omitempty"`
	Message   string        `json:"message,omitempty"`
	Book      *AddedBook    `json:"book,omitempty"`
}

func (o *Outcome) Succeeded() bool {
	return o != nil && o.Status == RequestStatusSucceeded
}
