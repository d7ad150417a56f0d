package transaction

import (
	"time"

	"github.com/carson-networks/franchise-ledger/internal/ledger"
)

// Transaction is the API response model for a ledger transaction.
// It is used only for responses, not for request bodies.
type Transaction struct {
	ID            string `json:"id" doc:"Transaction UUID"`
	Branch        string `json:"branch" doc:"Branch the transaction belongs to"`
	Type          string `json:"type" enum:"Income,Expense" doc:"Income or Expense"`
	Amount        string `json:"amount" doc:"Decimal amount with two places"`
	Description   string `json:"description" doc:"Free text description"`
	Date          string `json:"date" doc:"Occurrence date, YYYY-MM-DD"`
	Status        string `json:"status" enum:"Pending,Approved,Rejected" doc:"Approval status"`
	CreatedByRole string `json:"created_by_role" doc:"Role that submitted the transaction"`
	Role          string `json:"role" doc:"Role that must approve or reject the transaction"`
	IsShared      bool   `json:"is_shared" doc:"Whether the income is split by the share percentage"`
	ReceivedBy    string `json:"received_by,omitempty" doc:"Role that received the income"`
	CreatedAt     string `json:"created_at" doc:"RFC3339 creation time"`
	ResolvedAt    string `json:"resolved_at,omitempty" doc:"RFC3339 approval or rejection time"`
}

func fromLedger(t ledger.Transaction) Transaction {
	out := Transaction{
		ID:            t.ID.String(),
		Branch:        t.BranchID,
		Type:          string(t.Type),
		Amount:        t.Amount.StringFixed(2),
		Description:   t.Description,
		Date:          t.OccurredAt.Format(time.DateOnly),
		Status:        string(t.Status),
		CreatedByRole: string(t.CreatedByRole),
		Role:          string(t.ApproverRole),
		IsShared:      t.IsShared,
		ReceivedBy:    string(t.ReceivedByRole),
		CreatedAt:     t.CreatedAt.Format(time.RFC3339),
	}
	if t.ResolvedAt != nil {
		out.ResolvedAt = t.ResolvedAt.Format(time.RFC3339)
	}
	return out
}

// Event is the API response model for one audit trail entry.
type Event struct {
	ID          string      `json:"id" doc:"Event UUID"`
	Type        string      `json:"type" enum:"submitted,approved,rejected,deleted" doc:"What happened"`
	ActorRole   string      `json:"actor_role" doc:"Role of the acting principal"`
	ActorUserID string      `json:"actor_user_id" doc:"User id of the acting principal"`
	CreatedAt   string      `json:"created_at" doc:"RFC3339 time of the event"`
	Snapshot    Transaction `json:"snapshot" doc:"Transaction as it was after the event"`
}

func eventFromLedger(e ledger.Event) Event {
	return Event{
		ID:          e.ID.String(),
		Type:        string(e.Type),
		ActorRole:   string(e.ActorRole),
		ActorUserID: e.ActorUserID,
		CreatedAt:   e.CreatedAt.Format(time.RFC3339),
		Snapshot:    fromLedger(e.Snapshot),
	}
}
