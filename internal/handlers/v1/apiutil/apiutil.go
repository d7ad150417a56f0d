// Package apiutil holds the request helpers shared by the v1 handlers.
package apiutil

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/franchise-ledger/internal/auth"
	"github.com/carson-networks/franchise-ledger/internal/ledger"
)

// FromDomain converts a service error into the huma error carrying its HTTP status.
func FromDomain(err error) error {
	if err == nil {
		return nil
	}

	var (
		validation *ledger.ValidationError
		authz      *ledger.AuthorizationError
		state      *ledger.InvalidStateError
		notFound   *ledger.NotFoundError
		store      *ledger.StoreError
	)
	switch {
	case errors.As(err, &validation):
		return huma.NewError(http.StatusUnprocessableEntity, validation.Error(), &huma.ErrorDetail{
			Location: validation.Field,
			Message:  validation.Message,
		})
	case errors.As(err, &authz):
		return huma.NewError(http.StatusForbidden, authz.Error())
	case errors.As(err, &state):
		return huma.NewError(http.StatusConflict, state.Error())
	case errors.As(err, &notFound):
		return huma.NewError(http.StatusNotFound, notFound.Error())
	case errors.As(err, &store):
		return huma.NewError(http.StatusServiceUnavailable, "ledger store unavailable, retry later", err)
	default:
		return huma.NewError(http.StatusInternalServerError, "internal error", err)
	}
}

// Principal returns the authenticated principal or a 401.
func Principal(ctx context.Context) (ledger.Principal, error) {
	p, ok := auth.PrincipalFrom(ctx)
	if !ok {
		return ledger.Principal{}, huma.Error401Unauthorized("authentication required")
	}
	return p, nil
}

// ParseDateRange reads an inclusive YYYY-MM-DD range from query values.
func ParseDateRange(start, end string) (ledger.DateRange, error) {
	from, err := time.Parse(time.DateOnly, start)
	if err != nil {
		return ledger.DateRange{}, huma.NewError(http.StatusBadRequest, "invalid start date", err)
	}
	to, err := time.Parse(time.DateOnly, end)
	if err != nil {
		return ledger.DateRange{}, huma.NewError(http.StatusBadRequest, "invalid end date", err)
	}

	r, err := ledger.NewDateRange(from, to)
	if err != nil {
		return ledger.DateRange{}, FromDomain(err)
	}
	return r, nil
}
