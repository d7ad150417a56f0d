package ledger

import (
	"context"
	"encoding/csv"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const cancelCheckInterval = 256

// ReportRow is one exported transaction with its per-row split.
type ReportRow struct {
	Transaction         Transaction
	FranchiseeShare     decimal.Decimal
	AdministrationShare decimal.Decimal
}

// ReportTotals sums the per-row splits. GrandTotal is the sum of both shares.
type ReportTotals struct {
	FranchiseeShareTotal     decimal.Decimal
	AdministrationShareTotal decimal.Decimal
	GrandTotal               decimal.Decimal
}

// Report is the table handed to a document renderer.
type Report struct {
	BranchID        string
	BranchName      string
	Range           DateRange
	SharePercentage decimal.Decimal
	GeneratedAt     time.Time
	Rows            []ReportRow
	Totals          ReportTotals
}

// BuildReport filters txns to r, splits every row and totals the splits.
// It stops early with ctx.Err() when the context is cancelled.
func BuildReport(ctx context.Context, txns []Transaction, sharePercentage decimal.Decimal, r DateRange) (Report, error) {
	if err := ValidateSharePercentage(sharePercentage); err != nil {
		return Report{}, err
	}

	selected := ByDateRange(txns, r)
	report := Report{
		Range:           r,
		SharePercentage: sharePercentage,
		Rows:            make([]ReportRow, 0, len(selected)),
		Totals: ReportTotals{
			FranchiseeShareTotal:     decimal.Zero,
			AdministrationShareTotal: decimal.Zero,
		},
	}

	for i, t := range selected {
		if i%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return Report{}, err
			}
		}
		split := SplitTransaction(t, sharePercentage)
		report.Rows = append(report.Rows, ReportRow{
			Transaction:         t,
			FranchiseeShare:     split.Franchisee,
			AdministrationShare: split.Administration,
		})
		report.Totals.FranchiseeShareTotal = report.Totals.FranchiseeShareTotal.Add(split.Franchisee)
		report.Totals.AdministrationShareTotal = report.Totals.AdministrationShareTotal.Add(split.Administration)
	}
	report.Totals.GrandTotal = report.Totals.FranchiseeShareTotal.Add(report.Totals.AdministrationShareTotal)

	return report, nil
}

var csvHeader = []string{
	"date", "type", "description", "status", "amount", "shared", "received_by",
	"franchisee_share", "administration_share",
}

// csvText stops spreadsheets from reading free text as a formula.
func csvText(s string) string {
	if s != "" && strings.ContainsRune("=+-@\t\r", rune(s[0])) {
		return "'" + s
	}
	return s
}

// WriteCSV writes the rows followed by a totals line. Amounts use two decimals.
func (r Report) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}

	for _, row := range r.Rows {
		t := row.Transaction
		record := []string{
			t.OccurredAt.Format(time.DateOnly),
			string(t.Type),
			csvText(t.Description),
			string(t.Status),
			t.Amount.StringFixed(2),
			strconv.FormatBool(t.IsShared),
			string(t.ReceivedByRole),
			row.FranchiseeShare.StringFixed(2),
			row.AdministrationShare.StringFixed(2),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	totals := []string{
		"total", "", "", "", r.Totals.GrandTotal.StringFixed(2), "", "",
		r.Totals.FranchiseeShareTotal.StringFixed(2),
		r.Totals.AdministrationShareTotal.StringFixed(2),
	}
	if err := cw.Write(totals); err != nil {
		return err
	}

	cw.Flush()
	return cw.Error()
}
