package ledger

import (
	"errors"
	"fmt"

	"github.com/gofrs/uuid/v5"
)

// ValidationError reports a malformed or missing field. Nothing is written.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return "validation: " + e.Message
	}
	return fmt.Sprintf("validation: %s: %s", e.Field, e.Message)
}

// AuthorizationError reports an actor that may not perform the action.
type AuthorizationError struct {
	Role   Role
	Action string
	Reason string
}

func (e *AuthorizationError) Error() string {
	return fmt.Sprintf("authorization: %s may not %s: %s", e.Role, e.Action, e.Reason)
}

// InvalidStateError reports an action attempted on a transaction that is no longer Pending.
type InvalidStateError struct {
	ID     uuid.UUID
	Status Status
	Action string
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("invalid state: cannot %s transaction %s in status %s", e.Action, e.ID, e.Status)
}

// NotFoundError reports an unknown transaction or branch profile.
type NotFoundError struct {
	Kind string
	Key  string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Kind, e.Key)
}

// StoreError wraps a backing-store failure. Callers may retry manually.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store: %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// IsDomainError reports whether err already carries one of the ledger error types.
func IsDomainError(err error) bool {
	var (
		validation *ValidationError
		authz      *AuthorizationError
		state      *InvalidStateError
		notFound   *NotFoundError
		store      *StoreError
	)
	return errors.As(err, &validation) ||
		errors.As(err, &authz) ||
		errors.As(err, &state) ||
		errors.As(err, &notFound) ||
		errors.As(err, &store)
}
