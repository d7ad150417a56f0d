package report

import (
	"strconv"
	"time"

	"github.com/carson-networks/franchise-ledger/internal/ledger"
)

// Summary is the API response model for the branch dashboard.
type Summary struct {
	Branch              string `json:"branch" doc:"Branch identifier"`
	Name                string `json:"name" doc:"Franchisee name"`
	Month               string `json:"month" doc:"Selected month or all"`
	Year                string `json:"year" doc:"Selected year or all"`
	SharePercentage     string `json:"share_percentage" doc:"Franchisee share percentage used"`
	TotalIncome         string `json:"total_income" doc:"Approved income"`
	TotalExpense        string `json:"total_expense" doc:"Approved expense"`
	NetProfit           string `json:"net_profit" doc:"Income minus expense"`
	FranchiseeShare     string `json:"franchisee_share" doc:"Net profit times the share percentage"`
	AdministrationShare string `json:"administration_share" doc:"Net profit minus the franchisee share"`
	ApprovedCount       int    `json:"approved_count" doc:"Approved transactions counted"`
}

// ReportRow is one exported transaction with its per-row split.
type ReportRow struct {
	ID                  string `json:"id"`
	Date                string `json:"date"`
	Type                string `json:"type"`
	Description         string `json:"description"`
	Status              string `json:"status"`
	Amount              string `json:"amount"`
	IsShared            bool   `json:"is_shared"`
	ReceivedBy          string `json:"received_by,omitempty"`
	FranchiseeShare     string `json:"franchisee_share"`
	AdministrationShare string `json:"administration_share"`
}

// Report is the API response model for the export report.
type Report struct {
	Branch                   string      `json:"branch"`
	Name                     string      `json:"name"`
	Start                    string      `json:"start" doc:"First day of the range"`
	End                      string      `json:"end" doc:"Last day of the range"`
	SharePercentage          string      `json:"share_percentage"`
	GeneratedAt              string      `json:"generated_at" doc:"RFC3339 generation time"`
	Rows                     []ReportRow `json:"rows" doc:"Approved and Pending transactions in the range, newest first"`
	FranchiseeShareTotal     string      `json:"franchisee_share_total"`
	AdministrationShareTotal string      `json:"administration_share_total"`
	GrandTotal               string      `json:"grand_total" doc:"Sum of both share totals"`
}

func periodValue(v int) string {
	if v == 0 {
		return "all"
	}
	return strconv.Itoa(v)
}

func reportFromLedger(r ledger.Report) Report {
	out := Report{
		Branch:                   r.BranchID,
		Name:                     r.BranchName,
		Start:                    r.Range.Start.Format(time.DateOnly),
		End:                      r.Range.End.Format(time.DateOnly),
		SharePercentage:          r.SharePercentage.String(),
		GeneratedAt:              r.GeneratedAt.Format(time.RFC3339),
		Rows:                     make([]ReportRow, len(r.Rows)),
		FranchiseeShareTotal:     r.Totals.FranchiseeShareTotal.StringFixed(2),
		AdministrationShareTotal: r.Totals.AdministrationShareTotal.StringFixed(2),
		GrandTotal:               r.Totals.GrandTotal.StringFixed(2),
	}
	for i, row := range r.Rows {
		t := row.Transaction
		out.Rows[i] = ReportRow{
			ID:                  t.ID.String(),
			Date:                t.OccurredAt.Format(time.DateOnly),
			Type:                string(t.Type),
			Description:         t.Description,
			Status:              string(t.Status),
			Amount:              t.Amount.StringFixed(2),
			IsShared:            t.IsShared,
			ReceivedBy:          string(t.ReceivedByRole),
			FranchiseeShare:     row.FranchiseeShare.StringFixed(2),
			AdministrationShare: row.AdministrationShare.StringFixed(2),
		}
	}
	return out
}
