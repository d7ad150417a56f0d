package franchisee

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/franchise-ledger/internal/handlers/v1/apiutil"
	"github.com/carson-networks/franchise-ledger/internal/ledger"
)

// PutProfileBody is the request body for creating or replacing a profile.
type PutProfileBody struct {
	Name            string `json:"name" minLength:"1" doc:"Franchisee name"`
	SharePercentage string `json:"share_percentage" doc:"Franchisee share of net profit, 0-100 (e.g. '30' or '33.5')"`
}

// PutProfileInput is the Huma input for creating or replacing a profile.
type PutProfileInput struct {
	BranchID string `path:"branchID" doc:"Branch identifier"`
	Body     PutProfileBody
}

// profileUpserter is the interface for maintaining franchisee profiles.
type profileUpserter interface {
	UpsertProfile(ctx context.Context, p ledger.Principal, profile ledger.Profile) (ledger.Profile, error)
}

// PutProfileHandler handles PUT /v1/branches/{branchID}/profile.
type PutProfileHandler struct {
	FranchiseeService profileUpserter
}

// NewPutProfileHandler creates a new PutProfileHandler.
func NewPutProfileHandler(svc profileUpserter) *PutProfileHandler {
	return &PutProfileHandler{FranchiseeService: svc}
}

// Register registers the put profile endpoint with the Huma API.
func (h *PutProfileHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "put-profile",
		Method:      http.MethodPut,
		Path:        "/v1/branches/{branchID}/profile",
		Summary:     "Set franchisee profile",
		Description: "Creates or replaces the franchisee profile of a branch. Administration only.",
		Tags:        []string{"Franchisees"},
	}, h.handle)
}

// parsePutProfileInput parses and validates the API input.
func parsePutProfileInput(input *PutProfileInput) (ledger.Profile, error) {
	share, err := decimal.NewFromString(input.Body.SharePercentage)
	if err != nil {
		return ledger.Profile{}, huma.NewError(http.StatusBadRequest, "invalid share_percentage", err)
	}
	return ledger.Profile{
		BranchID:        input.BranchID,
		Name:            input.Body.Name,
		SharePercentage: share,
	}, nil
}

func (h *PutProfileHandler) handle(ctx context.Context, input *PutProfileInput) (*ProfileOutput, error) {
	principal, err := apiutil.Principal(ctx)
	if err != nil {
		return nil, err
	}

	profile, err := parsePutProfileInput(input)
	if err != nil {
		return nil, err
	}

	saved, err := h.FranchiseeService.UpsertProfile(ctx, principal, profile)
	if err != nil {
		return nil, apiutil.FromDomain(err)
	}
	return &ProfileOutput{Body: fromLedger(saved)}, nil
}
