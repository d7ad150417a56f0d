package franchisee

import "github.com/carson-networks/franchise-ledger/internal/ledger"

// Profile is the API response model for a franchisee profile.
type Profile struct {
	Branch          string `json:"branch" doc:"Branch identifier"`
	Name            string `json:"name" doc:"Franchisee name"`
	SharePercentage string `json:"share_percentage" doc:"Franchisee share of net profit, 0-100"`
}

func fromLedger(p ledger.Profile) Profile {
	return Profile{
		Branch:          p.BranchID,
		Name:            p.Name,
		SharePercentage: p.SharePercentage.String(),
	}
}
