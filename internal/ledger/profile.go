package ledger

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Profile is a branch's franchisee record as held by the franchisee directory.
type Profile struct {
	BranchID        string
	Name            string
	SharePercentage decimal.Decimal
}

func (p Profile) Validate() error {
	if strings.TrimSpace(p.BranchID) == "" {
		return &ValidationError{Field: "branch", Message: "branch is required"}
	}
	if strings.TrimSpace(p.Name) == "" {
		return &ValidationError{Field: "name", Message: "name is required"}
	}
	return ValidateSharePercentage(p.SharePercentage)
}
