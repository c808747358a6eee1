package pipeline

import "context"

func (b *business) Remove(ctx context.Context, id int64) error {
	return b.ledger.RemoveRequest(ctx, id)
}
