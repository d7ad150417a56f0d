package ledger

import "time"

// Principal is the authenticated actor behind a request. It is resolved server-side
// from a signed token; a role string supplied in a request body is never trusted.
type Principal struct {
	UserID   string
	Role     Role
	BranchID string
}

// CanAccess reports whether the principal may read or write the given branch.
// Administration spans every branch, a Franchisee only its own.
func (p Principal) CanAccess(branchID string) bool {
	switch p.Role {
	case RoleAdministration:
		return true
	case RoleFranchisee:
		return p.BranchID != "" && p.BranchID == branchID
	default:
		return false
	}
}

// RequireAccess returns an AuthorizationError when the principal may not touch the branch.
func (p Principal) RequireAccess(branchID, action string) error {
	if !p.CanAccess(branchID) {
		return &AuthorizationError{Role: p.Role, Action: action, Reason: "no access to branch " + quote(branchID)}
	}
	return nil
}

// Resolve moves a Pending transaction to Approved or Rejected on behalf of actor.
//
// Only the transaction's approver role may resolve it, and only once: authorization is
// checked before state so that a stranger learns nothing about the record.
func Resolve(t Transaction, actor Principal, target Status, now time.Time) (Transaction, error) {
	action := actionFor(target)
	if !target.Resolved() {
		return t, &ValidationError{Field: "status", Message: "target status must be Approved or Rejected"}
	}
	if err := actor.RequireAccess(t.BranchID, action); err != nil {
		return t, err
	}
	if actor.Role != t.ApproverRole {
		return t, &AuthorizationError{
			Role:   actor.Role,
			Action: action,
			Reason: "only " + string(t.ApproverRole) + " may " + action + " this transaction",
		}
	}
	if t.Status != StatusPending {
		return t, &InvalidStateError{ID: t.ID, Status: t.Status, Action: action}
	}

	resolvedAt := now
	t.Status = target
	t.ResolvedAt = &resolvedAt
	return t, nil
}

// CheckDelete decides whether actor may delete t. Either party of the branch may delete;
// resolved transactions additionally need allowResolved.
func CheckDelete(t Transaction, actor Principal, allowResolved bool) error {
	if err := actor.RequireAccess(t.BranchID, "delete"); err != nil {
		return err
	}
	if t.Status.Resolved() && !allowResolved {
		return &InvalidStateError{ID: t.ID, Status: t.Status, Action: "delete"}
	}
	return nil
}

func actionFor(target Status) string {
	switch target {
	case StatusApproved:
		return "approve"
	case StatusRejected:
		return "reject"
	default:
		return "resolve"
	}
}
