package report

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/franchise-ledger/internal/handlers/v1/apiutil"
	"github.com/carson-networks/franchise-ledger/internal/ledger"
	"github.com/carson-networks/franchise-ledger/internal/logging"
)

type ExportReportInput struct {
	BranchID string `path:"branchID" doc:"Branch identifier"`
	Start    string `query:"start" required:"true" doc:"First day, YYYY-MM-DD"`
	End      string `query:"end" required:"true" doc:"Last day, YYYY-MM-DD"`
}

type ExportReportOutput struct {
	Body Report
}

type ExportReportCSVOutput struct {
	ContentType        string `header:"Content-Type"`
	ContentDisposition string `header:"Content-Disposition"`
	Body               []byte
}

type reportExporter interface {
	GetExportReport(ctx context.Context, p ledger.Principal, branchID string, r ledger.DateRange) (ledger.Report, error)
}

// ExportReportHandler handles GET /v1/branches/{branchID}/report and report.csv.
type ExportReportHandler struct {
	ReportService reportExporter
}

func NewExportReportHandler(svc reportExporter) *ExportReportHandler {
	return &ExportReportHandler{ReportService: svc}
}

func (h *ExportReportHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "export-report",
		Method:      http.MethodGet,
		Path:        "/v1/branches/{branchID}/report",
		Summary:     "Export report",
		Description: "Per-transaction split of a date range with share totals.",
		Tags:        []string{"Reports"},
	}, h.handleJSON)

	huma.Register(api, huma.Operation{
		OperationID: "export-report-csv",
		Method:      http.MethodGet,
		Path:        "/v1/branches/{branchID}/report.csv",
		Summary:     "Export report as CSV",
		Description: "The export report rendered as CSV with a trailing totals line.",
		Tags:        []string{"Reports"},
		Responses: map[string]*huma.Response{
			"200": {
				Description: "CSV document",
				Content:     map[string]*huma.MediaType{"text/csv": {}},
			},
		},
	}, h.handleCSV)
}

func (h *ExportReportHandler) build(ctx context.Context, input *ExportReportInput) (ledger.Report, error) {
	principal, err := apiutil.Principal(ctx)
	if err != nil {
		return ledger.Report{}, err
	}

	r, err := apiutil.ParseDateRange(input.Start, input.End)
	if err != nil {
		return ledger.Report{}, err
	}

	logData := logging.GetLogData(ctx)
	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("buildReportMs")
	}
	report, err := h.ReportService.GetExportReport(ctx, principal, input.BranchID, r)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return ledger.Report{}, apiutil.FromDomain(err)
	}

	if logData != nil {
		logData.AddData("reportRows", len(report.Rows))
	}
	return report, nil
}

func (h *ExportReportHandler) handleJSON(ctx context.Context, input *ExportReportInput) (*ExportReportOutput, error) {
	report, err := h.build(ctx, input)
	if err != nil {
		return nil, err
	}
	return &ExportReportOutput{Body: reportFromLedger(report)}, nil
}

func (h *ExportReportHandler) handleCSV(ctx context.Context, input *ExportReportInput) (*ExportReportCSVOutput, error) {
	report, err := h.build(ctx, input)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err = report.WriteCSV(&buf); err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to render report", err)
	}

	filename := fmt.Sprintf("%s_%s_%s.csv",
		report.BranchID,
		report.Range.Start.Format(time.DateOnly),
		report.Range.End.Format(time.DateOnly),
	)
	return &ExportReportCSVOutput{
		ContentType:        "text/csv; charset=utf-8",
		ContentDisposition: fmt.Sprintf("attachment; filename=%q", filename),
		Body:               buf.Bytes(),
	}, nil
}
