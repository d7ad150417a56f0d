package franchisee

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/franchise-ledger/internal/handlers/v1/apiutil"
	"github.com/carson-networks/franchise-ledger/internal/ledger"
)

// GetProfileInput is the Huma input for reading a profile.
type GetProfileInput struct {
	BranchID string `path:"branchID" doc:"Branch identifier"`
}

// ProfileOutput is the Huma output for profile reads and updates.
type ProfileOutput struct {
	Body Profile
}

// profileGetter is the interface for reading franchisee profiles.
type profileGetter interface {
	GetProfile(ctx context.Context, p ledger.Principal, branchID string) (ledger.Profile, error)
}

// GetProfileHandler handles GET /v1/branches/{branchID}/profile.
type GetProfileHandler struct {
	FranchiseeService profileGetter
}

// NewGetProfileHandler creates a new GetProfileHandler.
func NewGetProfileHandler(svc profileGetter) *GetProfileHandler {
	return &GetProfileHandler{FranchiseeService: svc}
}

// Register registers the get profile endpoint with the Huma API.
func (h *GetProfileHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-profile",
		Method:      http.MethodGet,
		Path:        "/v1/branches/{branchID}/profile",
		Summary:     "Get franchisee profile",
		Description: "Returns the franchisee name and share percentage of a branch.",
		Tags:        []string{"Franchisees"},
	}, h.handle)
}

func (h *GetProfileHandler) handle(ctx context.Context, input *GetProfileInput) (*ProfileOutput, error) {
	principal, err := apiutil.Principal(ctx)
	if err != nil {
		return nil, err
	}

	profile, err := h.FranchiseeService.GetProfile(ctx, principal, input.BranchID)
	if err != nil {
		return nil, apiutil.FromDomain(err)
	}
	return &ProfileOutput{Body: fromLedger(profile)}, nil
}
