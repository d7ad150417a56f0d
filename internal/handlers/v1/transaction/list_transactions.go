package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/franchise-ledger/internal/handlers/v1/apiutil"
	"github.com/carson-networks/franchise-ledger/internal/ledger"
	"github.com/carson-networks/franchise-ledger/internal/logging"
)

// ListTransactionsInput is the Huma input for the filtered ledger view.
type ListTransactionsInput struct {
	BranchID string `path:"branchID" doc:"Branch identifier"`
	Month    string `query:"month" doc:"Month 1-12 or all"`
	Year     string `query:"year" doc:"Year or all"`
	View     string `query:"view" doc:"default shows Approved and Pending, pending only Pending, all everything"`
	Start    string `query:"start" doc:"First day of an optional date range, YYYY-MM-DD"`
	End      string `query:"end" doc:"Last day of an optional date range, YYYY-MM-DD"`
}

// ListTransactionsResponseBody is the response body for listing transactions.
type ListTransactionsResponseBody struct {
	Transactions []Transaction `json:"transactions" doc:"Matching transactions, newest first"`
}

// ListTransactionsOutput is the Huma output for listing transactions.
type ListTransactionsOutput struct {
	Body ListTransactionsResponseBody
}

// ledgerLister is the interface for listing a branch ledger.
type ledgerLister interface {
	GetFilteredLedger(ctx context.Context, p ledger.Principal, branchID string, f ledger.Filters) ([]ledger.Transaction, error)
}

// ListTransactionsHandler handles GET /v1/branches/{branchID}/transactions.
type ListTransactionsHandler struct {
	TransactionService ledgerLister
}

// NewListTransactionsHandler creates a new ListTransactionsHandler.
func NewListTransactionsHandler(svc ledgerLister) *ListTransactionsHandler {
	return &ListTransactionsHandler{TransactionService: svc}
}

// Register registers the list transactions endpoint with the Huma API.
func (h *ListTransactionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-transactions",
		Method:      http.MethodGet,
		Path:        "/v1/branches/{branchID}/transactions",
		Summary:     "List transactions",
		Description: "Returns the branch ledger filtered by period, approval view and date range, newest first.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

// parseListTransactionsInput turns the query string into ledger filters.
// Start and end must be given together.
func parseListTransactionsInput(input *ListTransactionsInput) (ledger.Filters, error) {
	period, err := ledger.ParsePeriod(input.Month, input.Year)
	if err != nil {
		return ledger.Filters{}, apiutil.FromDomain(err)
	}

	view, err := ledger.ParseStatusView(input.View)
	if err != nil {
		return ledger.Filters{}, apiutil.FromDomain(err)
	}

	filters := ledger.Filters{Period: period, View: view}
	if input.Start == "" && input.End == "" {
		return filters, nil
	}

	r, err := apiutil.ParseDateRange(input.Start, input.End)
	if err != nil {
		return ledger.Filters{}, err
	}
	filters.Range = &r
	return filters, nil
}

func (h *ListTransactionsHandler) handle(ctx context.Context, input *ListTransactionsInput) (*ListTransactionsOutput, error) {
	logData := logging.GetLogData(ctx)
	principal, err := apiutil.Principal(ctx)
	if err != nil {
		return nil, err
	}

	filters, err := parseListTransactionsInput(input)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("listTransactionsMs")
	}
	transactions, err := h.TransactionService.GetFilteredLedger(ctx, principal, input.BranchID, filters)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, apiutil.FromDomain(err)
	}

	if logData != nil {
		logData.AddData("transactionCount", len(transactions))
	}

	resp := ListTransactionsResponseBody{
		Transactions: make([]Transaction, len(transactions)),
	}
	for i, txn := range transactions {
		resp.Transactions[i] = fromLedger(txn)
	}

	return &ListTransactionsOutput{Body: resp}, nil
}
