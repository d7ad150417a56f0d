package actions

import (
	"context"

	"github.com/carson-networks/franchise-ledger/internal/ledger"
	"github.com/carson-networks/franchise-ledger/internal/storage"
)

type UpsertFranchisee struct {
	Profile ledger.Profile
}

func (u *UpsertFranchisee) Perform(ctx context.Context, writer *storage.Writer) error {
	return writer.Franchisees.Upsert(ctx, u.Profile)
}
