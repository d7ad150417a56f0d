package sqlconfig

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/franchise-ledger/internal/ledger"
)

const franchiseesTableName = "franchisees"

// IFranchiseeTable defines the interface for franchisee profile storage operations.
//
//go:generate mockery --name IFranchiseeTable --output mock_tables.go
type IFranchiseeTable interface {
	Lookup(ctx context.Context, branchID string) (*ledger.Profile, error)
	Upsert(ctx context.Context, profile ledger.Profile) error
}

type franchiseeRow struct {
	Branch          string          `db:"branch"`
	Name            string          `db:"name"`
	SharePercentage decimal.Decimal `db:"share_percentage"`
	UpdatedAt       time.Time       `db:"updated_at"`
}

func rowToProfile(row franchiseeRow) *ledger.Profile {
	return &ledger.Profile{
		BranchID:        row.Branch,
		Name:            row.Name,
		SharePercentage: row.SharePercentage,
	}
}
