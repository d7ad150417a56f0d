package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/franchise-ledger/internal/ledger"
	"github.com/carson-networks/franchise-ledger/internal/storage"
)

// SubmitTransaction stores a new Pending transaction together with its
// submitted event.
type SubmitTransaction struct {
	Transaction ledger.Transaction
	Actor       ledger.Principal
	EventID     uuid.UUID
}

func (s *SubmitTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	if err := writer.Transactions.Insert(ctx, &s.Transaction); err != nil {
		return err
	}

	event := ledger.NewEvent(s.EventID, s.Transaction, ledger.EventSubmitted, s.Actor, s.Transaction.CreatedAt)
	return writer.Events.Insert(ctx, &event)
}
