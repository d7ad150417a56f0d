// Package ledger holds the reconciliation rules shared by the Franchisee and the
// Administration of a branch: transaction validation, the approval state machine,
// revenue-share arithmetic, filtering and report rows.
//
// Everything here is pure. Storage, transport and identity live elsewhere and call in.
package ledger

import (
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Role is one of the two parties that co-author a branch ledger.
type Role string

const (
	RoleFranchisee     Role = "Franchisee"
	RoleAdministration Role = "Administration"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return r == RoleFranchisee || r == RoleAdministration
}

// Opposite returns the counter-party role. Unknown roles have no counter-party.
func (r Role) Opposite() Role {
	switch r {
	case RoleFranchisee:
		return RoleAdministration
	case RoleAdministration:
		return RoleFranchisee
	default:
		return ""
	}
}

// ParseRole accepts the canonical role names case-insensitively.
func ParseRole(s string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "franchisee":
		return RoleFranchisee, nil
	case "administration", "admin":
		return RoleAdministration, nil
	}
	return "", &ValidationError{Field: "role", Message: "unknown role " + quote(s)}
}

// TransactionType separates money coming in from money going out.
type TransactionType string

const (
	TypeIncome  TransactionType = "Income"
	TypeExpense TransactionType = "Expense"
)

func (t TransactionType) Valid() bool {
	return t == TypeIncome || t == TypeExpense
}

// ParseTransactionType accepts the canonical type names case-insensitively.
func ParseTransactionType(s string) (TransactionType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "income":
		return TypeIncome, nil
	case "expense":
		return TypeExpense, nil
	}
	return "", &ValidationError{Field: "type", Message: "unknown transaction type " + quote(s)}
}

// Status is the approval state of a transaction.
type Status string

const (
	StatusPending  Status = "Pending"
	StatusApproved Status = "Approved"
	StatusRejected Status = "Rejected"
)

func (s Status) Valid() bool {
	return s == StatusPending || s == StatusApproved || s == StatusRejected
}

// Resolved reports whether s is terminal.
func (s Status) Resolved() bool {
	return s == StatusApproved || s == StatusRejected
}

// Transaction is a single ledger entry of a branch.
type Transaction struct {
	ID          uuid.UUID
	BranchID    string
	Type        TransactionType
	Amount      decimal.Decimal
	Description string
	OccurredAt  time.Time

	// CreatedByRole is the submitting party; ApproverRole is always its opposite
	// and never changes after creation.
	CreatedByRole Role
	ApproverRole  Role
	Status        Status

	IsShared bool
	// ReceivedByRole is set for income only.
	ReceivedByRole Role

	CreatedAt  time.Time
	ResolvedAt *time.Time
}

// Draft is the caller-controlled part of a new transaction.
type Draft struct {
	BranchID       string
	Type           TransactionType
	Amount         decimal.Decimal
	Description    string
	OccurredAt     time.Time
	CreatedByRole  Role
	IsShared       bool
	ReceivedByRole Role
}

// MaxAmount is the first amount the ledger cannot store (NUMERIC(14, 2)).
var MaxAmount = decimal.New(1, 12)

// HasMoneyScale reports whether v is exact at two decimal places.
func HasMoneyScale(v decimal.Decimal) bool {
	return v.Equal(v.Truncate(2))
}

// Validate checks the draft field by field and returns the first problem found.
func (d Draft) Validate() error {
	if strings.TrimSpace(d.BranchID) == "" {
		return &ValidationError{Field: "branch", Message: "branch is required"}
	}
	if !d.Type.Valid() {
		return &ValidationError{Field: "type", Message: "type must be Income or Expense"}
	}
	if !d.Amount.IsPositive() {
		return &ValidationError{Field: "amount", Message: "amount must be greater than zero"}
	}
	if !HasMoneyScale(d.Amount) {
		return &ValidationError{Field: "amount", Message: "amount must have at most two decimal places"}
	}
	if d.Amount.GreaterThanOrEqual(MaxAmount) {
		return &ValidationError{Field: "amount", Message: "amount must be below " + MaxAmount.String()}
	}
	if strings.TrimSpace(d.Description) == "" {
		return &ValidationError{Field: "description", Message: "description is required"}
	}
	if d.OccurredAt.IsZero() {
		return &ValidationError{Field: "date", Message: "date is required"}
	}
	if !d.CreatedByRole.Valid() {
		return &ValidationError{Field: "created_by_role", Message: "creating role is unknown"}
	}
	if d.Type == TypeIncome && !d.ReceivedByRole.Valid() {
		return &ValidationError{Field: "received_by", Message: "income requires the receiving role"}
	}
	return nil
}

// NewTransaction validates the draft and builds the Pending transaction it describes.
// The approver is fixed here as the opposite of the creating role.
func NewTransaction(d Draft, id uuid.UUID, now time.Time) (Transaction, error) {
	if err := d.Validate(); err != nil {
		return Transaction{}, err
	}

	t := Transaction{
		ID:            id,
		BranchID:      strings.TrimSpace(d.BranchID),
		Type:          d.Type,
		Amount:        d.Amount,
		Description:   strings.TrimSpace(d.Description),
		OccurredAt:    truncateToDay(d.OccurredAt),
		CreatedByRole: d.CreatedByRole,
		ApproverRole:  d.CreatedByRole.Opposite(),
		Status:        StatusPending,
		CreatedAt:     now,
	}
	if d.Type == TypeIncome {
		t.IsShared = d.IsShared
		t.ReceivedByRole = d.ReceivedByRole
	}
	return t, nil
}

func truncateToDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func quote(s string) string {
	return "\"" + s + "\""
}
