package storage

import (
	"context"

	"github.com/stephenafamo/bob"
)

// TxCommitter ends a database transaction.
type TxCommitter interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// Writer exposes the tables bound to one open database transaction.
type Writer struct {
	tx TxCommitter
	Reader
}

func NewWriter(tx bob.Tx) *Writer {
	return &Writer{
		tx:     tx,
		Reader: *NewReader(tx),
	}
}

// NewWriterWithTables builds a Writer over arbitrary tables, for callers that
// supply their own transaction handling.
func NewWriterWithTables(tx TxCommitter, tables Reader) *Writer {
	return &Writer{
		tx:     tx,
		Reader: tables,
	}
}

func (w *Writer) Commit(ctx context.Context) error {
	return w.tx.Commit(ctx)
}

func (w *Writer) Rollback(ctx context.Context) error {
	return w.tx.Rollback(ctx)
}
