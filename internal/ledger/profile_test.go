package ledger

import (
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestProfile_Validate(t *testing.T) {
	ok := Profile{BranchID: "Coimbatore", Name: "Little Steps Coimbatore", SharePercentage: decimal.NewFromInt(30)}
	assert.NoError(t, ok.Validate())

	noName := ok
	noName.Name = ""
	assert.Error(t, noName.Validate())

	tooMuch := ok
	tooMuch.SharePercentage = decimal.NewFromInt(120)
	var vErr *ValidationError
	assert.ErrorAs(t, tooMuch.Validate(), &vErr)
	assert.Equal(t, "share_percentage", vErr.Field)
}

func TestNewEvent(t *testing.T) {
	txn := approvedTxn(TypeIncome, "500", true)
	now := time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)
	id := uuid.Must(uuid.NewV4())

	e := NewEvent(id, txn, ResolutionEvent(txn.Status), admin, now)
	assert.Equal(t, id, e.ID)
	assert.Equal(t, txn.ID, e.TransactionID)
	assert.Equal(t, "Coimbatore", e.BranchID)
	assert.Equal(t, EventApproved, e.Type)
	assert.Equal(t, RoleAdministration, e.ActorRole)
	assert.Equal(t, "u-admin", e.ActorUserID)
	assert.Equal(t, EventRejected, ResolutionEvent(StatusRejected))
}
