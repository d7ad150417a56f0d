package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/franchise-ledger/internal/handlers/v1/apiutil"
	"github.com/carson-networks/franchise-ledger/internal/ledger"
)

// TransactionIDInput addresses a single transaction.
type TransactionIDInput struct {
	ID string `path:"id" doc:"Transaction UUID"`
}

// ResolveTransactionOutput is the Huma output for approve and reject.
type ResolveTransactionOutput struct {
	Body Transaction
}

// transactionResolver is the interface for approving and rejecting transactions.
type transactionResolver interface {
	ApproveTransaction(ctx context.Context, p ledger.Principal, id uuid.UUID) (ledger.Transaction, error)
	RejectTransaction(ctx context.Context, p ledger.Principal, id uuid.UUID) (ledger.Transaction, error)
}

// ResolveTransactionHandler handles POST /v1/transactions/{id}/approve and /reject.
type ResolveTransactionHandler struct {
	ApprovalService transactionResolver
}

func NewResolveTransactionHandler(svc transactionResolver) *ResolveTransactionHandler {
	return &ResolveTransactionHandler{ApprovalService: svc}
}

// Register registers the approve and reject endpoints with the Huma API.
func (h *ResolveTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "approve-transaction",
		Method:      http.MethodPost,
		Path:        "/v1/transactions/{id}/approve",
		Summary:     "Approve transaction",
		Description: "Approves a Pending transaction. Only the approver role of the branch may do this.",
		Tags:        []string{"Approvals"},
	}, h.approve)

	huma.Register(api, huma.Operation{
		OperationID: "reject-transaction",
		Method:      http.MethodPost,
		Path:        "/v1/transactions/{id}/reject",
		Summary:     "Reject transaction",
		Description: "Rejects a Pending transaction. Only the approver role of the branch may do this.",
		Tags:        []string{"Approvals"},
	}, h.reject)
}

func (h *ResolveTransactionHandler) approve(ctx context.Context, input *TransactionIDInput) (*ResolveTransactionOutput, error) {
	return h.resolve(ctx, input, h.ApprovalService.ApproveTransaction)
}

func (h *ResolveTransactionHandler) reject(ctx context.Context, input *TransactionIDInput) (*ResolveTransactionOutput, error) {
	return h.resolve(ctx, input, h.ApprovalService.RejectTransaction)
}

func (h *ResolveTransactionHandler) resolve(
	ctx context.Context,
	input *TransactionIDInput,
	apply func(context.Context, ledger.Principal, uuid.UUID) (ledger.Transaction, error),
) (*ResolveTransactionOutput, error) {
	principal, err := apiutil.Principal(ctx)
	if err != nil {
		return nil, err
	}

	id, err := parseTransactionID(input.ID)
	if err != nil {
		return nil, err
	}

	txn, err := apply(ctx, principal, id)
	if err != nil {
		return nil, apiutil.FromDomain(err)
	}
	return &ResolveTransactionOutput{Body: fromLedger(txn)}, nil
}

func parseTransactionID(raw string) (uuid.UUID, error) {
	id, err := uuid.FromString(raw)
	if err != nil {
		return uuid.Nil, huma.NewError(http.StatusBadRequest, "invalid transaction id", err)
	}
	return id, nil
}
