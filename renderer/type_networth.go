package renderer

import (
	"github.com/etnz/fingrow"
)

// NetWorthReport is the view model of the net worth statement.
type NetWorthReport struct {
	Date fingrow.Date `json:"date"`

	TotalAssets      fingrow.Money `json:"totalAssets"`
	TotalLiabilities fingrow.Money `json:"totalLiabilities"`
	NetWorth         fingrow.Money `json:"netWorth"`

	Assets      []HoldingRow `json:"assets"`
	Liabilities []HoldingRow `json:"liabilities"`

	AssetCategories     []CategoryRow `json:"assetCategories"`
	LiabilityCategories []CategoryRow `json:"liabilityCategories"`
}

// HoldingRow is one asset or liability of a net worth table.
type HoldingRow struct {
	ID          string        `json:"id"`
	Description string        `json:"description"`
	Category    string        `json:"category"`
	Date        fingrow.Date  `json:"date"`
	Amount      fingrow.Money `json:"amount"`
}

// NewNetWorthReport creates a NetWorthReport view from the asset and liability
// collections, newest first.
func NewNetWorthReport(assets, liabilities []fingrow.Holding, currency string, asOf fingrow.Date) *NetWorthReport {
	w := fingrow.NetWorth(assets, liabilities)
	r := &NetWorthReport{
		Date:             asOf,
		TotalAssets:      fingrow.M(w.Assets, currency),
		TotalLiabilities: fingrow.M(w.Liabilities, currency),
		NetWorth:         fingrow.M(w.Net, currency),
	}
	for _, a := range assets {
		r.Assets = append(r.Assets, newHoldingRow(a, currency))
	}
	for _, l := range liabilities {
		r.Liabilities = append(r.Liabilities, newHoldingRow(l, currency))
	}
	for _, c := range fingrow.HoldingsByCategory(assets) {
		r.AssetCategories = append(r.AssetCategories, CategoryRow{Category: c.Category, Total: fingrow.M(c.Total, currency)})
	}
	for _, c := range fingrow.HoldingsByCategory(liabilities) {
		r.LiabilityCategories = append(r.LiabilityCategories, CategoryRow{Category: c.Category, Total: fingrow.M(c.Total, currency)})
	}
	return r
}

func newHoldingRow(h fingrow.Holding, currency string) HoldingRow {
	return HoldingRow{
		ID:          h.ID,
		Description: h.Description,
		Category:    h.Category,
		Date:        h.Date,
		Amount:      fingrow.M(h.Amount, currency),
	}
}
