package service

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/franchise-ledger/internal/ledger"
	"github.com/carson-networks/franchise-ledger/internal/operator/actions"
)

// TransactionService handles submission, deletion and listing of branch transactions.
type TransactionService struct {
	*base
	allowResolvedDelete bool
}

// SubmitTransaction records a new Pending transaction. The creating role is always
// the principal's role.
func (s *TransactionService) SubmitTransaction(ctx context.Context, p ledger.Principal, d ledger.Draft) (ledger.Transaction, error) {
	if err := p.RequireAccess(d.BranchID, "submit"); err != nil {
		return ledger.Transaction{}, err
	}

	d.CreatedByRole = p.Role
	txn, err := ledger.NewTransaction(d, s.newID(), s.now())
	if err != nil {
		return ledger.Transaction{}, err
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	action := &actions.SubmitTransaction{Transaction: txn, Actor: p, EventID: s.newID()}
	if err = s.processor.Process(ctx, action); err != nil {
		return ledger.Transaction{}, s.translate("submit", err, nil)
	}

	s.metrics.Submitted(string(txn.Type), string(txn.CreatedByRole))
	s.log.WithFields(logrus.Fields{
		"id":     txn.ID,
		"branch": txn.BranchID,
		"type":   txn.Type,
		"role":   txn.CreatedByRole,
	}).Info("Transaction submitted")

	return txn, nil
}

// DeleteTransaction removes a transaction from its branch ledger.
func (s *TransactionService) DeleteTransaction(ctx context.Context, p ledger.Principal, id uuid.UUID) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	action := &actions.DeleteTransaction{
		ID:            id,
		Actor:         p,
		AllowResolved: s.allowResolvedDelete,
		Now:           s.now(),
		EventID:       s.newID(),
	}
	if err := s.processor.Process(ctx, action); err != nil {
		return s.translate("delete", err, transactionNotFound(id))
	}

	s.metrics.Deleted(string(action.Deleted.Status))
	s.log.WithFields(logrus.Fields{
		"id":     id,
		"branch": action.Deleted.BranchID,
		"status": action.Deleted.Status,
	}).Info("Transaction deleted")

	return nil
}

// GetFilteredLedger returns the branch transactions selected by f, newest first.
func (s *TransactionService) GetFilteredLedger(ctx context.Context, p ledger.Principal, branchID string, f ledger.Filters) ([]ledger.Transaction, error) {
	if err := p.RequireAccess(branchID, "view ledger"); err != nil {
		return nil, err
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	txns, err := s.listBranch(ctx, branchID, f.Range)
	if err != nil {
		return nil, err
	}
	return ledger.Apply(txns, f), nil
}

// ListEvents returns the audit trail of a transaction, oldest first. The trail
// outlives the transaction itself.
func (s *TransactionService) ListEvents(ctx context.Context, p ledger.Principal, id uuid.UUID) ([]ledger.Event, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	events, err := s.storage.Events.ListByTransaction(ctx, id)
	if err != nil {
		return nil, s.translate("list events", err, transactionNotFound(id))
	}
	if len(events) == 0 {
		return nil, transactionNotFound(id)
	}
	if err = p.RequireAccess(events[0].BranchID, "view history"); err != nil {
		return nil, err
	}
	return events, nil
}
