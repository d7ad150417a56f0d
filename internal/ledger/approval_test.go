package ledger

import (
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	franchisee  = Principal{UserID: "u-franchisee", Role: RoleFranchisee, BranchID: "Coimbatore"}
	otherBranch = Principal{UserID: "u-other", Role: RoleFranchisee, BranchID: "Madurai"}
	admin       = Principal{UserID: "u-admin", Role: RoleAdministration}
)

func pendingFromFranchisee(t *testing.T) Transaction {
	t.Helper()
	txn, err := NewTransaction(validIncomeDraft(), uuid.Must(uuid.NewV4()), time.Now())
	require.NoError(t, err)
	return txn
}

func TestPrincipal_CanAccess(t *testing.T) {
	assert.True(t, franchisee.CanAccess("Coimbatore"))
	assert.False(t, franchisee.CanAccess("Madurai"))
	assert.True(t, admin.CanAccess("Madurai"))
	assert.False(t, Principal{Role: RoleFranchisee}.CanAccess(""))
	assert.False(t, Principal{Role: "Parent", BranchID: "Coimbatore"}.CanAccess("Coimbatore"))
}

func TestResolve_ApproverApproves(t *testing.T) {
	txn := pendingFromFranchisee(t)
	now := time.Date(2024, 1, 20, 10, 0, 0, 0, time.UTC)

	got, err := Resolve(txn, admin, StatusApproved, now)
	require.NoError(t, err)
	assert.Equal(t, StatusApproved, got.Status)
	require.NotNil(t, got.ResolvedAt)
	assert.Equal(t, now, *got.ResolvedAt)
	assert.Equal(t, StatusPending, txn.Status, "input is not mutated")
}

func TestResolve_ApproverRejects(t *testing.T) {
	got, err := Resolve(pendingFromFranchisee(t), admin, StatusRejected, time.Now())
	require.NoError(t, err)
	assert.Equal(t, StatusRejected, got.Status)
}

func TestResolve_CreatorCannotApproveOwn(t *testing.T) {
	txn := pendingFromFranchisee(t)

	got, err := Resolve(txn, franchisee, StatusApproved, time.Now())
	var authErr *AuthorizationError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, "approve", authErr.Action)
	assert.Equal(t, StatusPending, got.Status)
}

func TestResolve_OtherBranchDenied(t *testing.T) {
	d := validIncomeDraft()
	d.CreatedByRole = RoleAdministration
	txn, err := NewTransaction(d, uuid.Must(uuid.NewV4()), time.Now())
	require.NoError(t, err)

	_, err = Resolve(txn, otherBranch, StatusApproved, time.Now())
	var authErr *AuthorizationError
	assert.ErrorAs(t, err, &authErr)
}

func TestResolve_SecondResolutionFails(t *testing.T) {
	txn, err := Resolve(pendingFromFranchisee(t), admin, StatusApproved, time.Now())
	require.NoError(t, err)

	for _, target := range []Status{StatusApproved, StatusRejected} {
		got, err := Resolve(txn, admin, target, time.Now())
		var stateErr *InvalidStateError
		require.ErrorAs(t, err, &stateErr)
		assert.Equal(t, StatusApproved, stateErr.Status)
		assert.Equal(t, StatusApproved, got.Status)
	}
}

func TestResolve_WrongRoleOnResolvedReportsAuthorization(t *testing.T) {
	txn, err := Resolve(pendingFromFranchisee(t), admin, StatusRejected, time.Now())
	require.NoError(t, err)

	_, err = Resolve(txn, franchisee, StatusApproved, time.Now())
	var authErr *AuthorizationError
	assert.ErrorAs(t, err, &authErr)
}

func TestResolve_PendingIsNotATarget(t *testing.T) {
	_, err := Resolve(pendingFromFranchisee(t), admin, StatusPending, time.Now())
	var vErr *ValidationError
	assert.ErrorAs(t, err, &vErr)
}

func TestCheckDelete(t *testing.T) {
	pending := pendingFromFranchisee(t)
	approved, err := Resolve(pending, admin, StatusApproved, time.Now())
	require.NoError(t, err)

	assert.NoError(t, CheckDelete(pending, franchisee, false))
	assert.NoError(t, CheckDelete(pending, admin, false))
	assert.NoError(t, CheckDelete(approved, franchisee, true))

	var stateErr *InvalidStateError
	assert.ErrorAs(t, CheckDelete(approved, admin, false), &stateErr)

	var authErr *AuthorizationError
	assert.ErrorAs(t, CheckDelete(pending, otherBranch, true), &authErr)
}
