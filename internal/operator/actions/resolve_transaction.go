package actions

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/franchise-ledger/internal/ledger"
	"github.com/carson-networks/franchise-ledger/internal/storage"
)

// ResolveTransaction approves or rejects a Pending transaction. The row stays
// locked from the read until commit, so two approvers cannot both succeed.
type ResolveTransaction struct {
	ID      uuid.UUID
	Actor   ledger.Principal
	Target  ledger.Status
	Now     time.Time
	EventID uuid.UUID

	// Result holds the resolved transaction once Perform succeeds.
	Result ledger.Transaction
}

func (r *ResolveTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	current, err := writer.Transactions.FindByIDForUpdate(ctx, r.ID)
	if err != nil {
		return err
	}

	resolved, err := ledger.Resolve(*current, r.Actor, r.Target, r.Now)
	if err != nil {
		return err
	}

	if err = writer.Transactions.UpdateStatus(ctx, r.ID, resolved.Status, r.Now); err != nil {
		return err
	}

	event := ledger.NewEvent(r.EventID, resolved, ledger.ResolutionEvent(resolved.Status), r.Actor, r.Now)
	if err = writer.Events.Insert(ctx, &event); err != nil {
		return err
	}

	r.Result = resolved
	return nil
}
