package ledger

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// ValidateSharePercentage checks that p lies in [0, 100] with at most two decimals.
func ValidateSharePercentage(p decimal.Decimal) error {
	if p.IsNegative() || p.GreaterThan(hundred) {
		return &ValidationError{Field: "share_percentage", Message: "share percentage must be between 0 and 100"}
	}
	if !HasMoneyScale(p) {
		return &ValidationError{Field: "share_percentage", Message: "share percentage must have at most two decimal places"}
	}
	return nil
}

// Split is the division of one amount between the two parties.
type Split struct {
	Franchisee     decimal.Decimal
	Administration decimal.Decimal
}

// SplitTransaction computes the per-row split used in export reports:
//
//	shared income:   franchisee = amount * p/100, administration = the rest
//	unshared income: franchisee = amount
//	expense:         administration = amount
//
// These figures are export detail only. Dashboards use Summarize, and the two are
// never summed against each other.
func SplitTransaction(t Transaction, sharePercentage decimal.Decimal) Split {
	switch {
	case t.Type == TypeExpense:
		return Split{Franchisee: decimal.Zero, Administration: t.Amount}
	case t.IsShared:
		franchisee := t.Amount.Mul(sharePercentage).Div(hundred)
		return Split{Franchisee: franchisee, Administration: t.Amount.Sub(franchisee)}
	default:
		return Split{Franchisee: t.Amount, Administration: decimal.Zero}
	}
}

// Summary is the dashboard view of a branch over a set of transactions.
type Summary struct {
	SharePercentage     decimal.Decimal
	TotalIncome         decimal.Decimal
	TotalExpense        decimal.Decimal
	NetProfit           decimal.Decimal
	FranchiseeShare     decimal.Decimal
	AdministrationShare decimal.Decimal
	ApprovedCount       int
}

// Summarize applies the aggregate net split over the Approved transactions in txns.
// FranchiseeShare + AdministrationShare always equals NetProfit exactly.
func Summarize(txns []Transaction, sharePercentage decimal.Decimal) Summary {
	s := Summary{
		SharePercentage: sharePercentage,
		TotalIncome:     decimal.Zero,
		TotalExpense:    decimal.Zero,
	}
	for _, t := range txns {
		if t.Status != StatusApproved {
			continue
		}
		s.ApprovedCount++
		switch t.Type {
		case TypeIncome:
			s.TotalIncome = s.TotalIncome.Add(t.Amount)
		case TypeExpense:
			s.TotalExpense = s.TotalExpense.Add(t.Amount)
		}
	}

	s.NetProfit = s.TotalIncome.Sub(s.TotalExpense)
	s.FranchiseeShare = s.NetProfit.Mul(sharePercentage).Div(hundred)
	s.AdministrationShare = s.NetProfit.Sub(s.FranchiseeShare)
	return s
}
