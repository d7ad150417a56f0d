package storage

import (
	"github.com/stephenafamo/bob"

	"github.com/carson-networks/franchise-ledger/internal/storage/sqlconfig"
)

// Reader groups the tables bound to one executor.
type Reader struct {
	Transactions sqlconfig.ITransactionTable
	Franchisees  sqlconfig.IFranchiseeTable
	Events       sqlconfig.IEventTable
}

func NewReader(exec bob.Executor) *Reader {
	return &Reader{
		Transactions: sqlconfig.NewTransactionsTable(exec),
		Franchisees:  sqlconfig.NewFranchiseesTable(exec),
		Events:       sqlconfig.NewEventsTable(exec),
	}
}
