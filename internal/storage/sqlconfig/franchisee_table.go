package sqlconfig

import (
	"context"
	"database/sql"
	"errors"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"

	"github.com/carson-networks/franchise-ledger/internal/ledger"
)

// FranchiseesTable provides access to the franchisees table.
type FranchiseesTable struct {
	exec bob.Executor
}

// Ensure FranchiseesTable implements IFranchiseeTable at compile time.
var _ IFranchiseeTable = (*FranchiseesTable)(nil)

func NewFranchiseesTable(exec bob.Executor) *FranchiseesTable {
	return &FranchiseesTable{exec: exec}
}

// Lookup returns the profile of the branch or ErrNotFound.
func (t *FranchiseesTable) Lookup(ctx context.Context, branchID string) (*ledger.Profile, error) {
	query := psql.Select(
		sm.Columns(psql.Quote("branch"), psql.Quote("name"), psql.Quote("share_percentage"), psql.Quote("updated_at")),
		sm.From(franchiseesTableName),
		sm.Where(psql.Quote("branch").EQ(psql.Arg(branchID))),
	)

	row, err := bob.One(ctx, t.exec, query, scan.StructMapper[franchiseeRow]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return rowToProfile(row), nil
}

// Upsert creates the branch profile or replaces its name and share percentage.
func (t *FranchiseesTable) Upsert(ctx context.Context, profile ledger.Profile) error {
	query := psql.Insert(
		im.Into(franchiseesTableName, "branch", "name", "share_percentage", "updated_at"),
		im.Values(
			psql.Arg(profile.BranchID),
			psql.Arg(profile.Name),
			psql.Arg(profile.SharePercentage),
			psql.Raw("now()"),
		),
		im.OnConflict("branch").DoUpdate(
			im.SetExcluded("name", "share_percentage", "updated_at"),
		),
	)
	_, err := bob.Exec(ctx, t.exec, query)
	return err
}
