package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/franchise-ledger/internal/ledger"
	"github.com/carson-networks/franchise-ledger/internal/logging"
)

type principalKey struct{}

// WithPrincipal stores p in ctx.
func WithPrincipal(ctx context.Context, p ledger.Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// PrincipalFrom returns the authenticated principal of the request.
func PrincipalFrom(ctx context.Context) (ledger.Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(ledger.Principal)
	return p, ok
}

// Middleware authenticates every huma operation from its Authorization header.
// Requests without a valid bearer token never reach the handler.
func Middleware(api huma.API, m *JWTManager) func(ctx huma.Context, next func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		principal, err := authenticate(m, ctx.Header("Authorization"))
		if err != nil {
			_ = huma.WriteErr(api, ctx, http.StatusUnauthorized, "unauthorized", err)
			return
		}

		if logData := logging.GetLogData(ctx.Context()); logData != nil {
			logData.AddData("userID", principal.UserID)
			logData.AddData("role", string(principal.Role))
		}

		next(huma.WithValue(ctx, principalKey{}, principal))
	}
}

func authenticate(m *JWTManager, header string) (ledger.Principal, error) {
	token, found := strings.CutPrefix(header, "Bearer ")
	if !found || strings.TrimSpace(token) == "" {
		return ledger.Principal{}, ErrMissingToken
	}

	claims, err := m.Validate(strings.TrimSpace(token))
	if err != nil {
		return ledger.Principal{}, err
	}
	return claims.Principal()
}
