package sqlconfig

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/franchise-ledger/internal/ledger"
)

var (
	// ErrNotFound is returned when no row matches the key.
	ErrNotFound = errors.New("sqlconfig: row not found")
	// ErrNotPending is returned when a status update finds the row already resolved.
	ErrNotPending = errors.New("sqlconfig: transaction is not pending")
)

const transactionsTableName = "ledger_transactions"

var transactionColumns = []string{
	"id", "branch", "type", "amount", "description", "occurred_at", "status",
	"created_by_role", "approver_role", "is_shared", "received_by_role",
	"created_at", "resolved_at",
}

// TransactionFilter narrows a branch listing. Nil bounds are open.
type TransactionFilter struct {
	From *time.Time
	To   *time.Time
}

// ITransactionTable defines the interface for ledger transaction storage operations.
// This abstraction allows swapping the implementation (e.g. Bob) without changing callers.
//
//go:generate mockery --name ITransactionTable --output mock_tables.go
type ITransactionTable interface {
	Insert(ctx context.Context, t *ledger.Transaction) error
	FindByID(ctx context.Context, id uuid.UUID) (*ledger.Transaction, error)
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*ledger.Transaction, error)
	ListByBranch(ctx context.Context, branchID string, filter *TransactionFilter) ([]ledger.Transaction, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status ledger.Status, resolvedAt time.Time) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type transactionRow struct {
	ID             uuid.UUID       `db:"id"`
	Branch         string          `db:"branch"`
	Type           string          `db:"type"`
	Amount         decimal.Decimal `db:"amount"`
	Description    string          `db:"description"`
	OccurredAt     time.Time       `db:"occurred_at"`
	Status         string          `db:"status"`
	CreatedByRole  string          `db:"created_by_role"`
	ApproverRole   string          `db:"approver_role"`
	IsShared       bool            `db:"is_shared"`
	ReceivedByRole sql.NullString  `db:"received_by_role"`
	CreatedAt      time.Time       `db:"created_at"`
	ResolvedAt     sql.NullTime    `db:"resolved_at"`
}

func rowToTransaction(row transactionRow) ledger.Transaction {
	t := ledger.Transaction{
		ID:             row.ID,
		BranchID:       row.Branch,
		Type:           ledger.TransactionType(row.Type),
		Amount:         row.Amount,
		Description:    row.Description,
		OccurredAt:     dateOnly(row.OccurredAt),
		CreatedByRole:  ledger.Role(row.CreatedByRole),
		ApproverRole:   ledger.Role(row.ApproverRole),
		Status:         ledger.Status(row.Status),
		IsShared:       row.IsShared,
		ReceivedByRole: ledger.Role(row.ReceivedByRole.String),
		CreatedAt:      row.CreatedAt.UTC(),
	}
	if row.ResolvedAt.Valid {
		resolvedAt := row.ResolvedAt.Time.UTC()
		t.ResolvedAt = &resolvedAt
	}
	return t
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func nullableRole(r ledger.Role) sql.NullString {
	return sql.NullString{String: string(r), Valid: r != ""}
}

func nullableTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}
