package storage

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	"github.com/stephenafamo/bob"

	"github.com/carson-networks/franchise-ledger/internal/config"
)

type Storage struct {
	DB *sql.DB
	*Reader

	exec bob.DB
}

// NewStorage opens the Postgres pool described by cfg. The pool connects lazily;
// use Ping to check reachability.
func NewStorage(cfg *config.Config) (*Storage, error) {
	db, err := sql.Open("postgres", cfg.Postgres.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("storage: open: %w", err)
	}

	return NewStorageFromDB(db), nil
}

// NewStorageFromDB wraps an already open pool.
func NewStorageFromDB(db *sql.DB) *Storage {
	exec := bob.NewDB(db)
	return &Storage{
		DB:     db,
		Reader: NewReader(exec),
		exec:   exec,
	}
}

// Write opens a database transaction and returns the tables bound to it.
// The caller must Commit or Rollback the returned Writer.
func (s *Storage) Write(ctx context.Context) (*Writer, error) {
	tx, err := s.exec.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("storage: begin: %w", err)
	}
	return NewWriter(tx), nil
}

func (s *Storage) Ping(ctx context.Context) error {
	return s.DB.PingContext(ctx)
}

func (s *Storage) Close() error {
	return s.DB.Close()
}
