package ledger

import (
	"errors"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validIncomeDraft() Draft {
	return Draft{
		BranchID:       "Coimbatore",
		Type:           TypeIncome,
		Amount:         decimal.RequireFromString("1000.00"),
		Description:    "January fees",
		OccurredAt:     time.Date(2024, 1, 15, 9, 30, 0, 0, time.UTC),
		CreatedByRole:  RoleFranchisee,
		IsShared:       true,
		ReceivedByRole: RoleFranchisee,
	}
}

func TestParseRole(t *testing.T) {
	tests := []struct {
		in      string
		want    Role
		wantErr bool
	}{
		{in: "Franchisee", want: RoleFranchisee},
		{in: "franchisee", want: RoleFranchisee},
		{in: " Administration ", want: RoleAdministration},
		{in: "admin", want: RoleAdministration},
		{in: "owner", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseRole(tt.in)
			if tt.wantErr {
				var vErr *ValidationError
				assert.ErrorAs(t, err, &vErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRole_Opposite(t *testing.T) {
	assert.Equal(t, RoleAdministration, RoleFranchisee.Opposite())
	assert.Equal(t, RoleFranchisee, RoleAdministration.Opposite())
	assert.Equal(t, Role(""), Role("Parent").Opposite())
}

func TestParseTransactionType(t *testing.T) {
	got, err := ParseTransactionType("EXPENSE")
	assert.NoError(t, err)
	assert.Equal(t, TypeExpense, got)

	_, err = ParseTransactionType("transfer")
	assert.Error(t, err)
}

func TestNewTransaction_Income(t *testing.T) {
	id := uuid.Must(uuid.NewV4())
	now := time.Date(2024, 1, 16, 8, 0, 0, 0, time.UTC)

	txn, err := NewTransaction(validIncomeDraft(), id, now)
	require.NoError(t, err)

	assert.Equal(t, id, txn.ID)
	assert.Equal(t, StatusPending, txn.Status)
	assert.Equal(t, RoleFranchisee, txn.CreatedByRole)
	assert.Equal(t, RoleAdministration, txn.ApproverRole)
	assert.Equal(t, RoleFranchisee, txn.ReceivedByRole)
	assert.True(t, txn.IsShared)
	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), txn.OccurredAt)
	assert.Equal(t, now, txn.CreatedAt)
	assert.Nil(t, txn.ResolvedAt)
}

func TestNewTransaction_ApproverIsOppositeOfCreator(t *testing.T) {
	d := validIncomeDraft()
	d.CreatedByRole = RoleAdministration

	txn, err := NewTransaction(d, uuid.Must(uuid.NewV4()), time.Now())
	require.NoError(t, err)
	assert.Equal(t, RoleFranchisee, txn.ApproverRole)
}

func TestNewTransaction_ExpenseIgnoresIncomeFields(t *testing.T) {
	d := validIncomeDraft()
	d.Type = TypeExpense
	d.IsShared = true
	d.ReceivedByRole = RoleAdministration

	txn, err := NewTransaction(d, uuid.Must(uuid.NewV4()), time.Now())
	require.NoError(t, err)
	assert.False(t, txn.IsShared)
	assert.Equal(t, Role(""), txn.ReceivedByRole)
}

func TestNewTransaction_ExpenseWithoutReceiver(t *testing.T) {
	d := validIncomeDraft()
	d.Type = TypeExpense
	d.ReceivedByRole = ""

	_, err := NewTransaction(d, uuid.Must(uuid.NewV4()), time.Now())
	assert.NoError(t, err)
}

func TestDraft_Validate(t *testing.T) {
	tests := []struct {
		name  string
		edit  func(d *Draft)
		field string
	}{
		{name: "missing branch", edit: func(d *Draft) { d.BranchID = "  " }, field: "branch"},
		{name: "unknown type", edit: func(d *Draft) { d.Type = "Transfer" }, field: "type"},
		{name: "zero amount", edit: func(d *Draft) { d.Amount = decimal.Zero }, field: "amount"},
		{name: "negative amount", edit: func(d *Draft) { d.Amount = decimal.RequireFromString("-5") }, field: "amount"},
		{name: "sub-cent amount", edit: func(d *Draft) { d.Amount = decimal.RequireFromString("0.001") }, field: "amount"},
		{name: "three decimals", edit: func(d *Draft) { d.Amount = decimal.RequireFromString("12.345") }, field: "amount"},
		{name: "amount at column limit", edit: func(d *Draft) { d.Amount = decimal.RequireFromString("1000000000000") }, field: "amount"},
		{name: "missing description", edit: func(d *Draft) { d.Description = "" }, field: "description"},
		{name: "missing date", edit: func(d *Draft) { d.OccurredAt = time.Time{} }, field: "date"},
		{name: "unknown creator", edit: func(d *Draft) { d.CreatedByRole = "Parent" }, field: "created_by_role"},
		{name: "income without receiver", edit: func(d *Draft) { d.ReceivedByRole = "" }, field: "received_by"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validIncomeDraft()
			tt.edit(&d)

			err := d.Validate()
			var vErr *ValidationError
			require.True(t, errors.As(err, &vErr), "expected ValidationError, got %v", err)
			assert.Equal(t, tt.field, vErr.Field)
		})
	}
}

func TestDraft_ValidateAmountBounds(t *testing.T) {
	for _, amount := range []string{"0.01", "12.30", "12.300", "999999999999.99"} {
		d := validIncomeDraft()
		d.Amount = decimal.RequireFromString(amount)
		assert.NoError(t, d.Validate(), amount)
	}
}

func TestIsDomainError(t *testing.T) {
	assert.True(t, IsDomainError(&ValidationError{Field: "amount"}))
	assert.True(t, IsDomainError(&StoreError{Op: "list", Err: errors.New("boom")}))
	assert.False(t, IsDomainError(errors.New("boom")))
}

func TestStoreError_Unwrap(t *testing.T) {
	cause := errors.New("connection reset")
	err := &StoreError{Op: "insert", Err: cause}
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "store: insert: connection reset", err.Error())
}
