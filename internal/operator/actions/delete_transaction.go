package actions

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/franchise-ledger/internal/ledger"
	"github.com/carson-networks/franchise-ledger/internal/storage"
)

// DeleteTransaction removes a transaction and records the removed snapshot in
// the audit trail.
type DeleteTransaction struct {
	ID            uuid.UUID
	Actor         ledger.Principal
	AllowResolved bool
	Now           time.Time
	EventID       uuid.UUID

	Deleted ledger.Transaction
}

func (d *DeleteTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	current, err := writer.Transactions.FindByIDForUpdate(ctx, d.ID)
	if err != nil {
		return err
	}

	if err = ledger.CheckDelete(*current, d.Actor, d.AllowResolved); err != nil {
		return err
	}

	if err = writer.Transactions.Delete(ctx, d.ID); err != nil {
		return err
	}

	event := ledger.NewEvent(d.EventID, *current, ledger.EventDeleted, d.Actor, d.Now)
	if err = writer.Events.Insert(ctx, &event); err != nil {
		return err
	}

	d.Deleted = *current
	return nil
}
