package sqlconfig

import (
	"context"
	"encoding/json"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/franchise-ledger/internal/ledger"
)

const eventsTableName = "ledger_events"

// IEventTable defines the interface for the append-only ledger audit trail.
//
//go:generate mockery --name IEventTable --output mock_tables.go
type IEventTable interface {
	Insert(ctx context.Context, event *ledger.Event) error
	ListByTransaction(ctx context.Context, transactionID uuid.UUID) ([]ledger.Event, error)
}

type eventRow struct {
	ID            uuid.UUID `db:"id"`
	TransactionID uuid.UUID `db:"transaction_id"`
	Branch        string    `db:"branch"`
	EventType     string    `db:"event_type"`
	ActorRole     string    `db:"actor_role"`
	ActorUserID   string    `db:"actor_user_id"`
	Snapshot      string    `db:"snapshot"`
	CreatedAt     time.Time `db:"created_at"`
}

// snapshot is the JSONB form of a transaction inside an event.
type snapshot struct {
	ID             uuid.UUID       `json:"id"`
	Branch         string          `json:"branch"`
	Type           string          `json:"type"`
	Amount         decimal.Decimal `json:"amount"`
	Description    string          `json:"description"`
	Date           string          `json:"date"`
	Status         string          `json:"status"`
	CreatedByRole  string          `json:"created_by_role"`
	ApproverRole   string          `json:"role"`
	IsShared       bool            `json:"is_shared"`
	ReceivedByRole string          `json:"received_by,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	ResolvedAt     *time.Time      `json:"resolved_at,omitempty"`
}

func marshalSnapshot(t ledger.Transaction) ([]byte, error) {
	return json.Marshal(snapshot{
		ID:             t.ID,
		Branch:         t.BranchID,
		Type:           string(t.Type),
		Amount:         t.Amount,
		Description:    t.Description,
		Date:           t.OccurredAt.Format(time.DateOnly),
		Status:         string(t.Status),
		CreatedByRole:  string(t.CreatedByRole),
		ApproverRole:   string(t.ApproverRole),
		IsShared:       t.IsShared,
		ReceivedByRole: string(t.ReceivedByRole),
		CreatedAt:      t.CreatedAt,
		ResolvedAt:     t.ResolvedAt,
	})
}

func unmarshalSnapshot(raw string) (ledger.Transaction, error) {
	var s snapshot
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		return ledger.Transaction{}, err
	}

	date, err := time.Parse(time.DateOnly, s.Date)
	if err != nil {
		return ledger.Transaction{}, err
	}

	return ledger.Transaction{
		ID:             s.ID,
		BranchID:       s.Branch,
		Type:           ledger.TransactionType(s.Type),
		Amount:         s.Amount,
		Description:    s.Description,
		OccurredAt:     date,
		CreatedByRole:  ledger.Role(s.CreatedByRole),
		ApproverRole:   ledger.Role(s.ApproverRole),
		Status:         ledger.Status(s.Status),
		IsShared:       s.IsShared,
		ReceivedByRole: ledger.Role(s.ReceivedByRole),
		CreatedAt:      s.CreatedAt,
		ResolvedAt:     s.ResolvedAt,
	}, nil
}
