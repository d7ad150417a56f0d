package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/franchise-ledger/internal/ledger"
)

const testSecret = "test-secret"

func TestJWTManager_RoundTrip(t *testing.T) {
	m := NewJWTManager(testSecret, "franchise-ledger", time.Hour)
	in := ledger.Principal{UserID: "u-1", Role: ledger.RoleFranchisee, BranchID: "Coimbatore"}

	token, err := m.Generate(in)
	require.NoError(t, err)

	claims, err := m.Validate(token)
	require.NoError(t, err)

	out, err := claims.Principal()
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestJWTManager_RejectsOtherSecret(t *testing.T) {
	token, err := NewJWTManager("another-secret", "franchise-ledger", time.Hour).Generate(
		ledger.Principal{UserID: "u-1", Role: ledger.RoleAdministration},
	)
	require.NoError(t, err)

	_, err = NewJWTManager(testSecret, "franchise-ledger", time.Hour).Validate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTManager_RejectsOtherIssuer(t *testing.T) {
	token, err := NewJWTManager(testSecret, "someone-else", time.Hour).Generate(
		ledger.Principal{UserID: "u-1", Role: ledger.RoleAdministration},
	)
	require.NoError(t, err)

	_, err = NewJWTManager(testSecret, "franchise-ledger", time.Hour).Validate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTManager_RejectsExpired(t *testing.T) {
	m := NewJWTManager(testSecret, "franchise-ledger", -time.Minute)
	token, err := m.Generate(ledger.Principal{UserID: "u-1", Role: ledger.RoleAdministration})
	require.NoError(t, err)

	_, err = m.Validate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTManager_RejectsUnsignedToken(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{
		Role: "Administration",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "u-1",
			Issuer:    "franchise-ledger",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = NewJWTManager(testSecret, "franchise-ledger", time.Hour).Validate(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestClaims_Principal(t *testing.T) {
	tests := []struct {
		name    string
		claims  Claims
		wantErr bool
	}{
		{
			name:   "administration without branch",
			claims: Claims{Role: "Administration", RegisteredClaims: jwt.RegisteredClaims{Subject: "u-1"}},
		},
		{
			name:    "franchisee without branch",
			claims:  Claims{Role: "Franchisee", RegisteredClaims: jwt.RegisteredClaims{Subject: "u-1"}},
			wantErr: true,
		},
		{
			name:    "unknown role",
			claims:  Claims{Role: "Auditor", RegisteredClaims: jwt.RegisteredClaims{Subject: "u-1"}},
			wantErr: true,
		},
		{
			name:    "missing subject",
			claims:  Claims{Role: "Administration"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.claims.Principal()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidToken)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
