package pipeline

import (
	"context"
	"strings"

	"encore.dev/beta/errs"

	"readarrbridge.app/bridge/model"
)

func (b *business) Ingest(ctx context.Context, bookTitle, bookAuthors string, requestBody []byte) (*model.Request, error) {
	title := strings.TrimSpace(bookTitle)
	if title == "" {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "Invalid or missing 'bookTitle'"}
	}
	authors := strings.TrimSpace(bookAuthors)
	if authors == "" {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "Invalid or missing 'bookAuthors'"}
	}

	return b.ledger.CreateRequest(ctx, title, authors, requestBody)
}

// buildQuery joins title and authors into the free-text catalog search term.
func buildQuery(bookTitle, bookAuthors string) string {
	return strings.TrimSpace(strings.TrimSpace(bookTitle) + " " + strings.TrimSpace(bookAuthors))
}
