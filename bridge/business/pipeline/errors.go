package pipeline

import (
	"errors"
	"fmt"

	"readarrbridge.app/bridge/model"
)

const (
	MessageBookNotFound             = "Book not found from title/author search"
	MessageUnprocessableIdentifiers = "Unable to derive identifiers required to add the book"
)

var (
	ErrBookNotFound             = errors.New("book not found from title/author search")
	ErrUnprocessableIdentifiers = errors.New("unable to derive identifiers required to add the book")
)

// IdentifierError reports a foreign identifier of the chosen candidate that is not a usable number.
// An empty Reason means the value is not numeric.
type IdentifierError struct {
	Field  string
	Value  string
	Reason string
}

const (
	reasonNotNumeric = "is not numeric"
	reasonFractional = "is not an integer"
	reasonOutOfRange = "is out of range"
)

func (e *IdentifierError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("%s is missing", e.Field)
	}
	reason := e.Reason
	if reason == "" {
		reason = reasonNotNumeric
	}
	return fmt.Sprintf("%s %q %s", e.Field, e.Value, reason)
}

func (e *IdentifierError) Is(target error) bool {
	return target == ErrUnprocessableIdentifiers
}

// CatalogError wraps a failed catalog call. Its message is the underlying error's message.
type CatalogError struct {
	Op  string
	Err error
}

func (e *CatalogError) Error() string {
	return e.Err.Error()
}

func (e *CatalogError) Unwrap() error {
	return e.Err
}

// classifyFailure maps a resolution error to its failure kind and the message stored in the ledger.
func classifyFailure(err error) (model.FailureKind, string) {
	var identErr *IdentifierError
	switch {
	case errors.Is(err, ErrBookNotFound):
		return model.FailureNotFound, MessageBookNotFound
	case errors.As(err, &identErr):
		return model.FailureUnprocessableIdentifiers, MessageUnprocessableIdentifiers + ": " + identErr.Error()
	case errors.Is(err, ErrUnprocessableIdentifiers):
		return model.FailureUnprocessableIdentifiers, MessageUnprocessableIdentifiers
	default:
		return model.FailureCatalog, err.Error()
	}
}
