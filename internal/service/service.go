package service

import (
	"context"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/franchise-ledger/internal/ledger"
	"github.com/carson-networks/franchise-ledger/internal/metrics"
	"github.com/carson-networks/franchise-ledger/internal/operator/actions"
	"github.com/carson-networks/franchise-ledger/internal/storage"
	"github.com/carson-networks/franchise-ledger/internal/storage/sqlconfig"
)

// processor runs a write action inside its own database transaction.
type processor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// profileDirectory resolves branch profiles, possibly from a cache.
type profileDirectory interface {
	Lookup(ctx context.Context, branchID string) (*ledger.Profile, error)
	Invalidate(ctx context.Context, branchID string)
}

// Options tunes the services. Zero values are usable.
type Options struct {
	StoreTimeout        time.Duration
	AllowResolvedDelete bool
	Metrics             *metrics.Metrics
	Log                 logrus.FieldLogger
}

// Service holds all business logic services.
type Service struct {
	Transaction *TransactionService
	Approval    *ApprovalService
	Report      *ReportService
	Franchisee  *FranchiseeService
}

// NewService wires the services to the store for reads and to the operator for writes.
func NewService(store *storage.Storage, op processor, dir profileDirectory, opts Options) *Service {
	b := &base{
		storage:   store,
		processor: op,
		directory: dir,
		timeout:   opts.StoreTimeout,
		metrics:   opts.Metrics,
		log:       opts.Log,
		now:       func() time.Time { return time.Now().UTC().Truncate(time.Microsecond) },
		newID:     func() uuid.UUID { return uuid.Must(uuid.NewV4()) },
	}
	if b.log == nil {
		b.log = logrus.StandardLogger()
	}

	return &Service{
		Transaction: &TransactionService{base: b, allowResolvedDelete: opts.AllowResolvedDelete},
		Approval:    &ApprovalService{base: b},
		Report:      &ReportService{base: b},
		Franchisee:  &FranchiseeService{base: b},
	}
}

type base struct {
	storage   *storage.Storage
	processor processor
	directory profileDirectory
	timeout   time.Duration
	metrics   *metrics.Metrics
	log       logrus.FieldLogger
	now       func() time.Time
	newID     func() uuid.UUID
}

func (b *base) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if b.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, b.timeout)
}

// translate maps store failures onto the ledger error types. Domain errors pass
// through untouched; a missing row becomes notFound when one is given.
func (b *base) translate(op string, err error, notFound *ledger.NotFoundError) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sqlconfig.ErrNotFound) && notFound != nil {
		return notFound
	}
	if ledger.IsDomainError(err) {
		return err
	}

	b.metrics.StoreError(op)
	b.log.WithError(err).WithField("op", op).Error("Store operation failed")
	return &ledger.StoreError{Op: op, Err: err}
}

// profile returns the branch profile or a NotFoundError.
func (b *base) profile(ctx context.Context, branchID string) (ledger.Profile, error) {
	p, err := b.directory.Lookup(ctx, branchID)
	if err != nil {
		return ledger.Profile{}, b.translate("lookup profile", err, &ledger.NotFoundError{Kind: "franchisee profile", Key: branchID})
	}
	return *p, nil
}

// listBranch reads every transaction of the branch, narrowed to r when given.
func (b *base) listBranch(ctx context.Context, branchID string, r *ledger.DateRange) ([]ledger.Transaction, error) {
	var filter *sqlconfig.TransactionFilter
	if r != nil {
		filter = &sqlconfig.TransactionFilter{From: &r.Start, To: &r.End}
	}

	txns, err := b.storage.Transactions.ListByBranch(ctx, branchID, filter)
	if err != nil {
		return nil, b.translate("list", err, nil)
	}
	return txns, nil
}

func transactionNotFound(id uuid.UUID) *ledger.NotFoundError {
	return &ledger.NotFoundError{Kind: "transaction", Key: id.String()}
}
