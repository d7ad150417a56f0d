package service

import (
	"context"
	"errors"

	"github.com/carson-networks/franchise-ledger/internal/ledger"
)

// ReportService computes the dashboard summary and the export report of a branch.
type ReportService struct {
	*base
}

// BranchSummary is the dashboard view of one branch for a period.
type BranchSummary struct {
	Profile ledger.Profile
	Period  ledger.Period
	ledger.Summary
}

// GetSummary aggregates the Approved transactions of the period with the
// branch's current share percentage.
func (s *ReportService) GetSummary(ctx context.Context, p ledger.Principal, branchID string, period ledger.Period) (BranchSummary, error) {
	if err := p.RequireAccess(branchID, "view summary"); err != nil {
		return BranchSummary{}, err
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	profile, err := s.profile(ctx, branchID)
	if err != nil {
		return BranchSummary{}, err
	}

	txns, err := s.listBranch(ctx, branchID, nil)
	if err != nil {
		return BranchSummary{}, err
	}

	return BranchSummary{
		Profile: profile,
		Period:  period,
		Summary: ledger.Summarize(ledger.ByPeriod(txns, period), profile.SharePercentage),
	}, nil
}

// GetExportReport builds the per-row split report of the Approved and Pending
// transactions in r.
func (s *ReportService) GetExportReport(ctx context.Context, p ledger.Principal, branchID string, r ledger.DateRange) (ledger.Report, error) {
	if err := p.RequireAccess(branchID, "export report"); err != nil {
		return ledger.Report{}, err
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	profile, err := s.profile(ctx, branchID)
	if err != nil {
		return ledger.Report{}, err
	}

	txns, err := s.listBranch(ctx, branchID, &r)
	if err != nil {
		return ledger.Report{}, err
	}

	report, err := ledger.BuildReport(ctx, ledger.ByStatusView(txns, ledger.ViewDefault), profile.SharePercentage, r)
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return ledger.Report{}, err
	}
	if err != nil {
		return ledger.Report{}, s.translate("report", err, nil)
	}

	report.BranchID = profile.BranchID
	report.BranchName = profile.Name
	report.GeneratedAt = s.now()
	return report, nil
}
