package report

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/franchise-ledger/internal/handlers/v1/apiutil"
	"github.com/carson-networks/franchise-ledger/internal/ledger"
	"github.com/carson-networks/franchise-ledger/internal/service"
)

type GetSummaryInput struct {
	BranchID string `path:"branchID" doc:"Branch identifier"`
	Month    string `query:"month" doc:"Month 1-12 or all"`
	Year     string `query:"year" doc:"Year or all"`
}

type GetSummaryOutput struct {
	Body Summary
}

type summaryGetter interface {
	GetSummary(ctx context.Context, p ledger.Principal, branchID string, period ledger.Period) (service.BranchSummary, error)
}

// GetSummaryHandler handles GET /v1/branches/{branchID}/summary.
type GetSummaryHandler struct {
	ReportService summaryGetter
}

func NewGetSummaryHandler(svc summaryGetter) *GetSummaryHandler {
	return &GetSummaryHandler{ReportService: svc}
}

func (h *GetSummaryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-summary",
		Method:      http.MethodGet,
		Path:        "/v1/branches/{branchID}/summary",
		Summary:     "Branch summary",
		Description: "Totals of the Approved transactions of a period and the profit split between the parties.",
		Tags:        []string{"Reports"},
	}, h.handle)
}

func (h *GetSummaryHandler) handle(ctx context.Context, input *GetSummaryInput) (*GetSummaryOutput, error) {
	principal, err := apiutil.Principal(ctx)
	if err != nil {
		return nil, err
	}

	period, err := ledger.ParsePeriod(input.Month, input.Year)
	if err != nil {
		return nil, apiutil.FromDomain(err)
	}

	s, err := h.ReportService.GetSummary(ctx, principal, input.BranchID, period)
	if err != nil {
		return nil, apiutil.FromDomain(err)
	}

	return &GetSummaryOutput{Body: Summary{
		Branch:              s.Profile.BranchID,
		Name:                s.Profile.Name,
		Month:               periodValue(s.Period.Month),
		Year:                periodValue(s.Period.Year),
		SharePercentage:     s.SharePercentage.String(),
		TotalIncome:         s.TotalIncome.StringFixed(2),
		TotalExpense:        s.TotalExpense.StringFixed(2),
		NetProfit:           s.NetProfit.StringFixed(2),
		FranchiseeShare:     s.FranchiseeShare.StringFixed(2),
		AdministrationShare: s.AdministrationShare.StringFixed(2),
		ApprovedCount:       s.ApprovedCount,
	}}, nil
}
