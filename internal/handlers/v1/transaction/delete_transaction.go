package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/franchise-ledger/internal/handlers/v1/apiutil"
	"github.com/carson-networks/franchise-ledger/internal/ledger"
)

type transactionDeleter interface {
	DeleteTransaction(ctx context.Context, p ledger.Principal, id uuid.UUID) error
}

// DeleteTransactionHandler handles DELETE /v1/transactions/{id}.
type DeleteTransactionHandler struct {
	TransactionService transactionDeleter
}

func NewDeleteTransactionHandler(svc transactionDeleter) *DeleteTransactionHandler {
	return &DeleteTransactionHandler{TransactionService: svc}
}

func (h *DeleteTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "delete-transaction",
		Method:        http.MethodDelete,
		Path:          "/v1/transactions/{id}",
		Summary:       "Delete transaction",
		Description:   "Removes a transaction from the ledger. The removal is kept in the audit trail.",
		Tags:          []string{"Transactions"},
		DefaultStatus: http.StatusNoContent,
	}, h.handle)
}

func (h *DeleteTransactionHandler) handle(ctx context.Context, input *TransactionIDInput) (*struct{}, error) {
	principal, err := apiutil.Principal(ctx)
	if err != nil {
		return nil, err
	}

	id, err := parseTransactionID(input.ID)
	if err != nil {
		return nil, err
	}

	if err = h.TransactionService.DeleteTransaction(ctx, principal, id); err != nil {
		return nil, apiutil.FromDomain(err)
	}
	return nil, nil
}
