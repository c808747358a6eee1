package pipeline

import (
	"context"
	"errors"
	"fmt"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"readarrbridge.app/bridge/model"
)

var errNoBookReturned = errors.New("catalog returned no book")

func (b *business) Resolve(ctx context.Context, id int64) (*model.Outcome, error) {
	request, err := b.ledger.GetRequest(ctx, id)
	if err != nil {
		return nil, err
	}
	if request.Status != model.RequestStatusPending {
		return nil, &errs.Error{Code: errs.FailedPrecondition, Message: "only pending requests can be resolved"}
	}

	book, err := b.addMatchingBook(ctx, request)
	if err != nil {
		kind, message := classifyFailure(err)
		rlog.Warn("request resolution failed", "request_id", id, "failure", kind, "error", err)

		if _, err := b.ledger.MarkFailed(ctx, id, message); err != nil {
			return nil, err
		}
		return &model.Outcome{
			RequestID: id,
			Status:    model.RequestStatusFailed,
			Failure:   kind,
			Message:   message,
		}, nil
	}

	if _, err := b.ledger.MarkSucceeded(ctx, id, book); err != nil {
		return nil, err
	}

	rlog.Info("book added", "request_id", id, "book_id", book.ID, "book_title", book.Title)
	return &model.Outcome{
		RequestID: id,
		Status:    model.RequestStatusSucceeded,
		Message:   fmt.Sprintf("Book \"%s\" added/monitored successfully", book.Title),
		Book:      book,
	}, nil
}

// addMatchingBook runs the catalog side of a resolution: probe, search, select, derive ids, add.
func (b *business) addMatchingBook(ctx context.Context, request *model.Request) (*model.AddedBook, error) {
	if b.opts.ProbeMetadataProfiles {
		if _, err := b.catalog.GetMetadataProfiles(ctx); err != nil {
			return nil, &CatalogError{Op: "get metadata profiles", Err: err}
		}
	}

	candidates, err := b.catalog.SearchBooks(ctx, buildQuery(request.BookTitle, request.BookAuthors))
	if err != nil {
		return nil, &CatalogError{Op: "search books", Err: err}
	}

	candidate, ok := b.selector.Select(candidates)
	if !ok {
		return nil, ErrBookNotFound
	}

	bookID, authorID, err := deriveIdentifiers(candidate)
	if err != nil {
		return nil, err
	}

	added, err := b.catalog.AddBook(ctx, model.AddBookSpec{
		Title:             request.BookTitle,
		ForeignBookID:     bookID,
		ForeignAuthorID:   authorID,
		RootFolderPath:    b.opts.RootFolderPath,
		QualityProfileID:  b.opts.QualityProfileID,
		MetadataProfileID: b.opts.MetadataProfileID,
		Tags:              []int32{},
		SearchNow:         b.opts.SearchOnAdd,
	})
	if err != nil {
		return nil, &CatalogError{Op: "add book", Err: err}
	}
	if added == nil {
		return nil, &CatalogError{Op: "add book", Err: errNoBookReturned}
	}
	return added, nil
}
