package sqlconfig

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"

	"github.com/carson-networks/franchise-ledger/internal/ledger"
)

var _ IEventTable = (*EventsTable)(nil)

type EventsTable struct {
	exec bob.Executor
}

func NewEventsTable(exec bob.Executor) *EventsTable {
	return &EventsTable{exec: exec}
}

func (t *EventsTable) Insert(ctx context.Context, event *ledger.Event) error {
	raw, err := marshalSnapshot(event.Snapshot)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}

	query := psql.Insert(
		im.Into(eventsTableName, "id", "transaction_id", "branch", "event_type", "actor_role", "actor_user_id", "snapshot", "created_at"),
		im.Values(
			psql.Arg(event.ID),
			psql.Arg(event.TransactionID),
			psql.Arg(event.BranchID),
			psql.Arg(string(event.Type)),
			psql.Arg(string(event.ActorRole)),
			psql.Arg(event.ActorUserID),
			psql.Arg(string(raw)),
			psql.Arg(event.CreatedAt),
		),
	)
	_, err = bob.Exec(ctx, t.exec, query)
	return err
}

// ListByTransaction returns the audit trail of one transaction, oldest first.
// Entries outlive the transaction itself.
func (t *EventsTable) ListByTransaction(ctx context.Context, transactionID uuid.UUID) ([]ledger.Event, error) {
	query := psql.Select(
		sm.Columns(
			psql.Quote("id"), psql.Quote("transaction_id"), psql.Quote("branch"), psql.Quote("event_type"),
			psql.Quote("actor_role"), psql.Quote("actor_user_id"), psql.Quote("snapshot"), psql.Quote("created_at"),
		),
		sm.From(eventsTableName),
		sm.Where(psql.Quote("transaction_id").EQ(psql.Arg(transactionID))),
		sm.OrderBy(psql.Quote("created_at")).Asc(),
		sm.OrderBy(psql.Quote("id")).Asc(),
	)

	rows, err := bob.All(ctx, t.exec, query, scan.StructMapper[eventRow]())
	if err != nil {
		return nil, err
	}

	events := make([]ledger.Event, len(rows))
	for i, row := range rows {
		snap, err := unmarshalSnapshot(row.Snapshot)
		if err != nil {
			return nil, fmt.Errorf("event %s: %w", row.ID, err)
		}
		events[i] = ledger.Event{
			ID:            row.ID,
			TransactionID: row.TransactionID,
			BranchID:      row.Branch,
			Type:          ledger.EventType(row.EventType),
			ActorRole:     ledger.Role(row.ActorRole),
			ActorUserID:   row.ActorUserID,
			Snapshot:      snap,
			CreatedAt:     row.CreatedAt.UTC(),
		}
	}
	return events, nil
}
