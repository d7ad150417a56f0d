package transaction

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/franchise-ledger/internal/handlers/v1/apiutil"
	"github.com/carson-networks/franchise-ledger/internal/ledger"
	"github.com/carson-networks/franchise-ledger/internal/logging"
)

// SubmitTransactionBody is the request body for submitting a transaction.
// The creating role is taken from the bearer token, never from the body.
type SubmitTransactionBody struct {
	Type        string `json:"type" required:"true" enum:"Income,Expense" doc:"Income or Expense"`
	Amount      string `json:"amount" required:"true" doc:"Positive decimal amount"`
	Description string `json:"description" required:"true" minLength:"1" doc:"Free text description"`
	Date        string `json:"date" required:"true" doc:"Occurrence date, YYYY-MM-DD"`
	IsShared    bool   `json:"is_shared,omitempty" doc:"Split the income by the branch share percentage"`
	ReceivedBy  string `json:"received_by,omitempty" doc:"Role that received the income; required for Income"`
}

// SubmitTransactionInput is the Huma input for submitting a transaction.
type SubmitTransactionInput struct {
	BranchID string `path:"branchID" doc:"Branch identifier"`
	Body     SubmitTransactionBody
}

// SubmitTransactionOutput is the Huma output for submitting a transaction.
type SubmitTransactionOutput struct {
	Body Transaction
}

// transactionSubmitter is the interface for submitting transactions.
type transactionSubmitter interface {
	SubmitTransaction(ctx context.Context, p ledger.Principal, d ledger.Draft) (ledger.Transaction, error)
}

// SubmitTransactionHandler handles POST /v1/branches/{branchID}/transactions.
type SubmitTransactionHandler struct {
	TransactionService transactionSubmitter
}

func NewSubmitTransactionHandler(svc transactionSubmitter) *SubmitTransactionHandler {
	return &SubmitTransactionHandler{TransactionService: svc}
}

// Register registers the submit transaction endpoint with the Huma API.
func (h *SubmitTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "submit-transaction",
		Method:        http.MethodPost,
		Path:          "/v1/branches/{branchID}/transactions",
		Summary:       "Submit transaction",
		Description:   "Records a Pending income or expense awaiting approval by the other party.",
		Tags:          []string{"Transactions"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

// parseSubmitTransactionInput parses the values huma cannot validate on its own.
func parseSubmitTransactionInput(input *SubmitTransactionInput) (ledger.Draft, error) {
	amount, err := decimal.NewFromString(input.Body.Amount)
	if err != nil {
		return ledger.Draft{}, huma.NewError(http.StatusBadRequest, "invalid amount", err)
	}

	occurredAt, err := time.Parse(time.DateOnly, input.Body.Date)
	if err != nil {
		return ledger.Draft{}, huma.NewError(http.StatusBadRequest, "invalid date", err)
	}

	typ, err := ledger.ParseTransactionType(input.Body.Type)
	if err != nil {
		return ledger.Draft{}, apiutil.FromDomain(err)
	}

	var receivedBy ledger.Role
	if input.Body.ReceivedBy != "" {
		receivedBy, err = ledger.ParseRole(input.Body.ReceivedBy)
		if err != nil {
			return ledger.Draft{}, apiutil.FromDomain(err)
		}
	}

	return ledger.Draft{
		BranchID:       input.BranchID,
		Type:           typ,
		Amount:         amount,
		Description:    input.Body.Description,
		OccurredAt:     occurredAt,
		IsShared:       input.Body.IsShared,
		ReceivedByRole: receivedBy,
	}, nil
}

func (h *SubmitTransactionHandler) handle(ctx context.Context, input *SubmitTransactionInput) (*SubmitTransactionOutput, error) {
	principal, err := apiutil.Principal(ctx)
	if err != nil {
		return nil, err
	}

	draft, err := parseSubmitTransactionInput(input)
	if err != nil {
		return nil, err
	}

	txn, err := h.TransactionService.SubmitTransaction(ctx, principal, draft)
	if err != nil {
		return nil, apiutil.FromDomain(err)
	}

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("transactionID", txn.ID.String())
	}

	return &SubmitTransactionOutput{Body: fromLedger(txn)}, nil
}
