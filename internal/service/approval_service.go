package service

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/franchise-ledger/internal/ledger"
	"github.com/carson-networks/franchise-ledger/internal/operator/actions"
)

// ApprovalService moves Pending transactions to Approved or Rejected.
type ApprovalService struct {
	*base
}

func (s *ApprovalService) ApproveTransaction(ctx context.Context, p ledger.Principal, id uuid.UUID) (ledger.Transaction, error) {
	return s.resolve(ctx, p, id, ledger.StatusApproved)
}

func (s *ApprovalService) RejectTransaction(ctx context.Context, p ledger.Principal, id uuid.UUID) (ledger.Transaction, error) {
	return s.resolve(ctx, p, id, ledger.StatusRejected)
}

func (s *ApprovalService) resolve(ctx context.Context, p ledger.Principal, id uuid.UUID, target ledger.Status) (ledger.Transaction, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	action := &actions.ResolveTransaction{
		ID:      id,
		Actor:   p,
		Target:  target,
		Now:     s.now(),
		EventID: s.newID(),
	}
	if err := s.processor.Process(ctx, action); err != nil {
		return ledger.Transaction{}, s.translate("resolve", err, transactionNotFound(id))
	}

	s.metrics.Resolved(string(target))
	s.log.WithFields(logrus.Fields{
		"id":     id,
		"branch": action.Result.BranchID,
		"status": target,
		"role":   p.Role,
	}).Info("Transaction resolved")

	return action.Result, nil
}
