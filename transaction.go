package fingrow

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType classifies a transaction as money in or money out.
type TransactionType string

const (
	Income  TransactionType = "income"
	Expense TransactionType = "expense"
)

// ParseTransactionType parses a transaction type name.
func ParseTransactionType(s string) (TransactionType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "income", "in":
		return Income, nil
	case "expense", "out":
		return Expense, nil
	default:
		return "", fmt.Errorf("unknown transaction type %q (want income or expense)", s)
	}
}

// Transaction is a single dated income or expense entry.
type Transaction struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Type        TransactionType `json:"type"`
	Category    string          `json:"category"`
	Date        Date            `json:"date"`
}

func (t Transaction) ident() string     { return t.ID }
func (t Transaction) moment() time.Time { return t.Date.time() }

// Validate checks a transaction before it reaches the store. Zero dates are
// quick-fixed to today, everything else is rejected with an error.
func (t *Transaction) Validate() error {
	if strings.TrimSpace(t.Description) == "" {
		return fmt.Errorf("transaction description is missing")
	}
	if t.Amount.IsNegative() {
		return fmt.Errorf("transaction amount must not be negative, got %s", t.Amount)
	}
	if t.Type != Income && t.Type != Expense {
		return fmt.Errorf("unknown transaction type %q", t.Type)
	}
	if strings.TrimSpace(t.Category) == "" {
		return fmt.Errorf("transaction category is missing")
	}
	if t.Date.IsZero() {
		t.Date = Today()
	}
	return nil
}
