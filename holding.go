package fingrow

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Holding is a dated valuation entry in the net-worth statement. Whether it is
// an asset or a liability is implied by the collection it lives in, not by the
// entry itself.
type Holding struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Date        Date            `json:"date"`
}

func (h Holding) ident() string     { return h.ID }
func (h Holding) moment() time.Time { return h.Date.time() }

// Validate checks a holding before it reaches the store.
func (h *Holding) Validate() error {
	if strings.TrimSpace(h.Description) == "" {
		return fmt.Errorf("description is missing")
	}
	if h.Amount.IsNegative() {
		return fmt.Errorf("amount must not be negative, got %s", h.Amount)
	}
	if strings.TrimSpace(h.Category) == "" {
		return fmt.Errorf("category is missing")
	}
	if h.Date.IsZero() {
		h.Date = Today()
	}
	return nil
}
