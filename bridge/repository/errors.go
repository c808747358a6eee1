package repository

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"encore.dev/beta/errs"
	"encore.dev/rlog"
)

// IsNotFound reports whether err means the row does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

// Classify converts a storage error into a caller-facing error. Connection
// problems surface as Unavailable, constraint violations as FailedPrecondition
// and everything else as Internal with msg as the message.
func Classify(err error, msg string) error {
	if err == nil {
		return nil
	}

	var e *errs.Error
	if errors.As(err, &e) {
		return err
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgerrcode.IsConnectionException(pgErr.Code):
			rlog.Error("storage unavailable", "error", err, "code", pgErr.Code)
			return &errs.Error{Code: errs.Unavailable, Message: "storage unavailable"}
		case pgErr.Code == pgerrcode.CheckViolation:
			rlog.Error("request state constraint violated", "error", err, "constraint", pgErr.ConstraintName)
			return &errs.Error{Code: errs.FailedPrecondition, Message: "request state constraint violated"}
		case pgerrcode.IsTransactionRollback(pgErr.Code), pgErr.Code == pgerrcode.LockNotAvailable:
			rlog.Error("storage conflict", "error", err, "code", pgErr.Code)
			return &errs.Error{Code: errs.Aborted, Message: msg}
		}
	}

	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		rlog.Error("storage unavailable", "error", err)
		return &errs.Error{Code: errs.Unavailable, Message: "storage unavailable"}
	}

	rlog.Error(msg, "error", err)
	return &errs.Error{Code: errs.Internal, Message: msg}
}
