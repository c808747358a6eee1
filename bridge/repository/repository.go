package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"readarrbridge.app/bridge/repository/requests"
)

// Repository combines the domain-specific queriers
type Repository struct {
	Requests requests.Querier
	Tx       TxRunner
}

// NewRepository creates a new Repository over a pgx pool
func NewRepository(db *pgxpool.Pool) *Repository {
	queries := requests.New(db)
	return &Repository{
		Requests: queries,
		Tx:       NewTxRunner(db, queries),
	}
}

// TxBeginner is satisfied by *pgxpool.Pool and pgx.Tx.
type TxBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// TxRunner runs fn inside a single transaction. The transaction commits when
// fn returns nil and rolls back otherwise.
type TxRunner interface {
	InTx(ctx context.Context, fn func(q requests.Querier) error) error
}

type txRunner struct {
	db      TxBeginner
	queries *requests.Queries
}

func NewTxRunner(db TxBeginner, queries *requests.Queries) TxRunner {
	return &txRunner{db: db, queries: queries}
}

func (r *txRunner) InTx(ctx context.Context, fn func(q requests.Querier) error) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return Classify(fmt.Errorf("begin transaction: %w", err), "failed to start transaction")
	}
	defer tx.Rollback(ctx)

	if err := fn(r.queries.WithTx(tx)); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return Classify(fmt.Errorf("commit transaction: %w", err), "failed to commit transaction")
	}
	return nil
}
