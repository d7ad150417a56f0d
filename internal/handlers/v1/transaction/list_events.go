package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/franchise-ledger/internal/handlers/v1/apiutil"
	"github.com/carson-networks/franchise-ledger/internal/ledger"
)

type ListEventsOutput struct {
	Body struct {
		Events []Event `json:"events" doc:"Audit trail, oldest first"`
	}
}

type eventLister interface {
	ListEvents(ctx context.Context, p ledger.Principal, id uuid.UUID) ([]ledger.Event, error)
}

// ListEventsHandler handles GET /v1/transactions/{id}/events.
type ListEventsHandler struct {
	TransactionService eventLister
}

func NewListEventsHandler(svc eventLister) *ListEventsHandler {
	return &ListEventsHandler{TransactionService: svc}
}

func (h *ListEventsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-transaction-events",
		Method:      http.MethodGet,
		Path:        "/v1/transactions/{id}/events",
		Summary:     "Transaction history",
		Description: "Returns who submitted, resolved or deleted a transaction and when. Available after deletion.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *ListEventsHandler) handle(ctx context.Context, input *TransactionIDInput) (*ListEventsOutput, error) {
	principal, err := apiutil.Principal(ctx)
	if err != nil {
		return nil, err
	}

	id, err := parseTransactionID(input.ID)
	if err != nil {
		return nil, err
	}

	events, err := h.TransactionService.ListEvents(ctx, principal, id)
	if err != nil {
		return nil, apiutil.FromDomain(err)
	}

	out := &ListEventsOutput{}
	out.Body.Events = make([]Event, len(events))
	for i, e := range events {
		out.Body.Events[i] = eventFromLedger(e)
	}
	return out, nil
}
