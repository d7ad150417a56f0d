package ledger

import (
	"time"

	"github.com/gofrs/uuid/v5"
)

// EventType names an entry in a transaction's audit trail.
type EventType string

const (
	EventSubmitted EventType = "submitted"
	EventApproved  EventType = "approved"
	EventRejected  EventType = "rejected"
	EventDeleted   EventType = "deleted"
)

// Event records who changed a transaction and what it looked like afterwards.
// For EventDeleted the snapshot is the record as it was removed.
type Event struct {
	ID            uuid.UUID
	TransactionID uuid.UUID
	BranchID      string
	Type          EventType
	ActorRole     Role
	ActorUserID   string
	Snapshot      Transaction
	CreatedAt     time.Time
}

// NewEvent builds the audit entry for t written by actor at now.
func NewEvent(id uuid.UUID, t Transaction, typ EventType, actor Principal, now time.Time) Event {
	return Event{
		ID:            id,
		TransactionID: t.ID,
		BranchID:      t.BranchID,
		Type:          typ,
		ActorRole:     actor.Role,
		ActorUserID:   actor.UserID,
		Snapshot:      t,
		CreatedAt:     now,
	}
}

// ResolutionEvent maps a terminal status to its event type.
func ResolutionEvent(s Status) EventType {
	if s == StatusRejected {
		return EventRejected
	}
	return EventApproved
}
