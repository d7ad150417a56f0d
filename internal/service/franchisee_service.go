package service

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/franchise-ledger/internal/ledger"
	"github.com/carson-networks/franchise-ledger/internal/operator/actions"
)

// FranchiseeService reads and maintains branch profiles.
type FranchiseeService struct {
	*base
}

func (s *FranchiseeService) GetProfile(ctx context.Context, p ledger.Principal, branchID string) (ledger.Profile, error) {
	if err := p.RequireAccess(branchID, "view profile"); err != nil {
		return ledger.Profile{}, err
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	return s.profile(ctx, branchID)
}

// UpsertProfile creates or replaces a branch profile. Only Administration maintains
// profiles; later summaries use the new share percentage.
func (s *FranchiseeService) UpsertProfile(ctx context.Context, p ledger.Principal, profile ledger.Profile) (ledger.Profile, error) {
	if p.Role != ledger.RoleAdministration {
		return ledger.Profile{}, &ledger.AuthorizationError{
			Role:   p.Role,
			Action: "update profile",
			Reason: "only Administration maintains franchisee profiles",
		}
	}
	if err := profile.Validate(); err != nil {
		return ledger.Profile{}, err
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	if err := s.processor.Process(ctx, &actions.UpsertFranchisee{Profile: profile}); err != nil {
		return ledger.Profile{}, s.translate("upsert profile", err, nil)
	}
	s.directory.Invalidate(ctx, profile.BranchID)

	s.log.WithFields(logrus.Fields{
		"branch":           profile.BranchID,
		"share_percentage": profile.SharePercentage.String(),
	}).Info("Franchisee profile updated")

	return profile, nil
}
