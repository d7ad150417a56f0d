package sqlconfig

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"

	"github.com/carson-networks/franchise-ledger/internal/ledger"
)

var _ ITransactionTable = (*TransactionsTable)(nil)

type TransactionsTable struct {
	exec bob.Executor
}

// NewTransactionsTable binds the table to a pool or to an open transaction.
func NewTransactionsTable(exec bob.Executor) *TransactionsTable {
	return &TransactionsTable{exec: exec}
}

// Insert stores a new transaction with the id it already carries.
func (t *TransactionsTable) Insert(ctx context.Context, txn *ledger.Transaction) error {
	query := psql.Insert(
		im.Into(transactionsTableName, transactionColumns...),
		im.Values(
			psql.Arg(txn.ID),
			psql.Arg(txn.BranchID),
			psql.Arg(string(txn.Type)),
			psql.Arg(txn.Amount),
			psql.Arg(txn.Description),
			psql.Arg(txn.OccurredAt),
			psql.Arg(string(txn.Status)),
			psql.Arg(string(txn.CreatedByRole)),
			psql.Arg(string(txn.ApproverRole)),
			psql.Arg(txn.IsShared),
			psql.Arg(nullableRole(txn.ReceivedByRole)),
			psql.Arg(txn.CreatedAt),
			psql.Arg(nullableTime(txn.ResolvedAt)),
		),
	)
	_, err := bob.Exec(ctx, t.exec, query)
	return err
}

// FindByID retrieves a transaction by primary key.
func (t *TransactionsTable) FindByID(ctx context.Context, id uuid.UUID) (*ledger.Transaction, error) {
	return t.findOne(ctx, id, false)
}

// FindByIDForUpdate retrieves a transaction and locks its row until the enclosing
// database transaction ends. Only meaningful on a table bound to a bob.Tx.
func (t *TransactionsTable) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*ledger.Transaction, error) {
	return t.findOne(ctx, id, true)
}

func (t *TransactionsTable) findOne(ctx context.Context, id uuid.UUID, forUpdate bool) (*ledger.Transaction, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(columnExpressions(transactionColumns)...),
		sm.From(transactionsTableName),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	}
	if forUpdate {
		queryMods = append(queryMods, sm.ForUpdate())
	}

	row, err := bob.One(ctx, t.exec, psql.Select(queryMods...), scan.StructMapper[transactionRow]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	txn := rowToTransaction(row)
	return &txn, nil
}

// ListByBranch returns every transaction of the branch inside the filter bounds.
// Rows come back in storage order; callers sort.
func (t *TransactionsTable) ListByBranch(ctx context.Context, branchID string, filter *TransactionFilter) ([]ledger.Transaction, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(columnExpressions(transactionColumns)...),
		sm.From(transactionsTableName),
		sm.Where(psql.Quote("branch").EQ(psql.Arg(branchID))),
	}
	if filter != nil {
		if filter.From != nil {
			queryMods = append(queryMods, sm.Where(psql.Quote("occurred_at").GTE(psql.Arg(*filter.From))))
		}
		if filter.To != nil {
			queryMods = append(queryMods, sm.Where(psql.Quote("occurred_at").LTE(psql.Arg(*filter.To))))
		}
	}

	rows, err := bob.All(ctx, t.exec, psql.Select(queryMods...), scan.StructMapper[transactionRow]())
	if err != nil {
		return nil, err
	}

	result := make([]ledger.Transaction, len(rows))
	for i, row := range rows {
		result[i] = rowToTransaction(row)
	}
	return result, nil
}

// UpdateStatus resolves a Pending transaction. A row that is missing or no longer
// Pending is left untouched and reported through ErrNotFound or ErrNotPending.
func (t *TransactionsTable) UpdateStatus(ctx context.Context, id uuid.UUID, status ledger.Status, resolvedAt time.Time) error {
	query := psql.Update(
		um.Table(transactionsTableName),
		um.SetCol("status").ToArg(string(status)),
		um.SetCol("resolved_at").ToArg(resolvedAt),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
		um.Where(psql.Quote("status").EQ(psql.Arg(string(ledger.StatusPending)))),
	)
	res, err := bob.Exec(ctx, t.exec, query)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 1 {
		return nil
	}

	if _, err := t.FindByID(ctx, id); err != nil {
		return err
	}
	return ErrNotPending
}

// Delete removes the transaction. Deleting a missing row returns ErrNotFound.
func (t *TransactionsTable) Delete(ctx context.Context, id uuid.UUID) error {
	query := psql.Delete(
		dm.From(transactionsTableName),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	res, err := bob.Exec(ctx, t.exec, query)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func columnExpressions(columns []string) []any {
	exprs := make([]any, len(columns))
	for i, c := range columns {
		exprs[i] = psql.Quote(c)
	}
	return exprs
}
