// Package auth resolves the acting Principal from a signed bearer token.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/carson-networks/franchise-ledger/internal/ledger"
)

var (
	ErrInvalidToken = errors.New("invalid or expired token")
	ErrMissingToken = errors.New("authorization token required")
)

// JWTManager handles JWT token generation and validation.
type JWTManager struct {
	secretKey     []byte
	issuer        string
	tokenDuration time.Duration
}

// Claims are the ledger-specific JWT claims. The subject is the user id.
type Claims struct {
	Role     string `json:"role"`
	BranchID string `json:"branch,omitempty"`
	jwt.RegisteredClaims
}

func NewJWTManager(secretKey, issuer string, tokenDuration time.Duration) *JWTManager {
	return &JWTManager{
		secretKey:     []byte(secretKey),
		issuer:        issuer,
		tokenDuration: tokenDuration,
	}
}

// Generate signs a token for the principal.
func (m *JWTManager) Generate(p ledger.Principal) (string, error) {
	now := time.Now()
	claims := &Claims{
		Role:     string(p.Role),
		BranchID: p.BranchID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   p.UserID,
			Issuer:    m.issuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(m.tokenDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(m.secretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// Validate parses and validates a JWT token, returning the claims if valid.
func (m *JWTManager) Validate(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(
		tokenString,
		&Claims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return m.secretKey, nil
		},
		jwt.WithIssuer(m.issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// Principal converts validated claims into the acting principal. Franchisee
// tokens must name their branch.
func (c *Claims) Principal() (ledger.Principal, error) {
	role, err := ledger.ParseRole(c.Role)
	if err != nil {
		return ledger.Principal{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if c.Subject == "" {
		return ledger.Principal{}, fmt.Errorf("%w: missing subject", ErrInvalidToken)
	}
	if role == ledger.RoleFranchisee && c.BranchID == "" {
		return ledger.Principal{}, fmt.Errorf("%w: franchisee token without branch", ErrInvalidToken)
	}

	return ledger.Principal{
		UserID:   c.Subject,
		Role:     role,
		BranchID: c.BranchID,
	}, nil
}
