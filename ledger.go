package fingrow

import (
	"fmt"
	"iter"
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

// DefaultCurrency is the display currency installed at first run.
const DefaultCurrency = "NGN"

// DefaultFinancialGoal is the target monthly savings amount installed at first run.
var DefaultFinancialGoal = decimal.NewFromInt(500)

// Ledger owns the canonical copy of every collection and setting. All reads
// hand out copies; every mutation is routed back through the ledger, which
// rewrites the affected collection through its store.
type Ledger struct {
	store *Store

	transactions []Transaction
	records      []Record
	assets       []Holding
	liabilities  []Holding
	budgets      []Budget
	currency     string
	goal         decimal.Decimal

	now func() time.Time // record timestamps, swappable in tests
}

// OpenLedger loads all collections from the store, installing documented
// defaults for anything absent or unreadable.
func OpenLedger(store *Store) *Ledger {
	l := &Ledger{
		store: store,
		now:   time.Now,
	}
	l.transactions = Get(store, keyTransactions, []Transaction{})
	l.records = Get(store, keyRecords, []Record{})
	l.assets = Get(store, keyAssets, []Holding{})
	l.liabilities = Get(store, keyLiabilities, []Holding{})
	l.budgets = Get(store, keyBudgets, DefaultBudgets())
	l.currency = Get(store, keyCurrency, DefaultCurrency)
	l.goal = Get(store, keyFinancialGoal, DefaultFinancialGoal)

	// Stored collections are expected sorted already; re-sorting is cheap
	// insurance only against hand-edited files.
	sortByDateDesc(l.transactions)
	sortByDateDesc(l.records)
	sortByDateDesc(l.assets)
	sortByDateDesc(l.liabilities)
	return l
}

// Transactions returns a copy of the transaction collection, newest first.
func (l *Ledger) Transactions() []Transaction { return slices.Clone(l.transactions) }

// Records returns a copy of the record collection, newest first.
func (l *Ledger) Records() []Record { return slices.Clone(l.records) }

// Assets returns a copy of the asset collection, newest first.
func (l *Ledger) Assets() []Holding { return slices.Clone(l.assets) }

// Liabilities returns a copy of the liability collection, newest first.
func (l *Ledger) Liabilities() []Holding { return slices.Clone(l.liabilities) }

// Budgets returns a copy of the budget collection.
func (l *Ledger) Budgets() []Budget { return slices.Clone(l.budgets) }

// Currency returns the display currency code.
func (l *Ledger) Currency() string { return l.currency }

// FinancialGoal returns the target monthly savings amount.
func (l *Ledger) FinancialGoal() decimal.Decimal { return l.goal }

// Money labels an amount with the ledger's display currency.
func (l *Ledger) Money(amount decimal.Decimal) Money { return M(amount, l.currency) }

// AllTransactions iterates over transactions accepted by all filters, newest first.
func (l *Ledger) AllTransactions(filters ...func(Transaction) bool) iter.Seq[Transaction] {
	return func(yield func(Transaction) bool) {
		for _, tx := range l.transactions {
			accept := true
			for _, filter := range filters {
				if !filter(tx) {
					accept = false
					break
				}
			}
			if accept && !yield(tx) {
				return
			}
		}
	}
}

// ByType returns a predicate that filters transactions by type.
func ByType(t TransactionType) func(Transaction) bool {
	return func(tx Transaction) bool { return tx.Type == t }
}

// AddTransaction validates tx, assigns it a fresh id and inserts it. The
// collection stays sorted descending by date and is rewritten to the store.
func (l *Ledger) AddTransaction(tx Transaction) (Transaction, error) {
	if err := tx.Validate(); err != nil {
		return Transaction{}, err
	}
	tx.ID = newID()
	l.transactions = insert(l.transactions, tx)
	return tx, Set(l.store, keyTransactions, l.transactions)
}

// UpdateTransaction replaces the transaction whose id matches. An unmatched
// id leaves the collection unchanged; that is not an error.
func (l *Ledger) UpdateTransaction(tx Transaction) error {
	if err := tx.Validate(); err != nil {
		return err
	}
	l.transactions = replace(l.transactions, tx)
	return Set(l.store, keyTransactions, l.transactions)
}

// DeleteTransaction removes the transaction whose id matches, if any.
func (l *Ledger) DeleteTransaction(id string) error {
	l.transactions = remove(l.transactions, id)
	return Set(l.store, keyTransactions, l.transactions)
}

// AddAsset validates h, assigns it a fresh id and inserts it into the assets.
func (l *Ledger) AddAsset(h Holding) (Holding, error) {
	if err := h.Validate(); err != nil {
		return Holding{}, err
	}
	h.ID = newID()
	l.assets = insert(l.assets, h)
	return h, Set(l.store, keyAssets, l.assets)
}

// UpdateAsset replaces the asset whose id matches, silently ignoring unmatched ids.
func (l *Ledger) UpdateAsset(h Holding) error {
	if err := h.Validate(); err != nil {
		return err
	}
	l.assets = replace(l.assets, h)
	return Set(l.store, keyAssets, l.assets)
}

// DeleteAsset removes the asset whose id matches, if any.
func (l *Ledger) DeleteAsset(id string) error {
	l.assets = remove(l.assets, id)
	return Set(l.store, keyAssets, l.assets)
}

// AddLiability validates h, assigns it a fresh id and inserts it into the liabilities.
func (l *Ledger) AddLiability(h Holding) (Holding, error) {
	if err := h.Validate(); err != nil {
		return Holding{}, err
	}
	h.ID = newID()
	l.liabilities = insert(l.liabilities, h)
	return h, Set(l.store, keyLiabilities, l.liabilities)
}

// UpdateLiability replaces the liability whose id matches, silently ignoring unmatched ids.
func (l *Ledger) UpdateLiability(h Holding) error {
	if err := h.Validate(); err != nil {
		return err
	}
	l.liabilities = replace(l.liabilities, h)
	return Set(l.store, keyLiabilities, l.liabilities)
}

// DeleteLiability removes the liability whose id matches, if any.
func (l *Ledger) DeleteLiability(id string) error {
	l.liabilities = remove(l.liabilities, id)
	return Set(l.store, keyLiabilities, l.liabilities)
}

// AddRecord validates r, assigns it a fresh id and stamps it with the current
// time. Any caller-supplied date is overridden, content cannot be back-dated.
func (l *Ledger) AddRecord(r Record) (Record, error) {
	if err := r.Validate(); err != nil {
		return Record{}, err
	}
	r.ID = newID()
	r.Date = l.now()
	l.records = insert(l.records, r)
	return r, Set(l.store, keyRecords, l.records)
}

// UpdateRecord replaces the record whose id matches and re-stamps its date
// with the current time, overriding any caller-supplied value.
func (l *Ledger) UpdateRecord(r Record) error {
	if err := r.Validate(); err != nil {
		return err
	}
	r.Date = l.now()
	l.records = replace(l.records, r)
	return Set(l.store, keyRecords, l.records)
}

// DeleteRecord removes the record whose id matches, if any.
func (l *Ledger) DeleteRecord(id string) error {
	l.records = remove(l.records, id)
	return Set(l.store, keyRecords, l.records)
}

// UpdateBudgetLimit replaces the limit of the matching category. A negative
// limit or an unknown category is a guarded no-op, not an error: the original
// behavior never surfaces these to the user.
func (l *Ledger) UpdateBudgetLimit(category string, limit decimal.Decimal) error {
	if limit.IsNegative() {
		return nil
	}
	for i := range l.budgets {
		if l.budgets[i].Category == category {
			l.budgets[i].Limit = limit
			return Set(l.store, keyBudgets, l.budgets)
		}
	}
	return nil
}

// UpdateFinancialGoal replaces the target monthly savings amount. A negative
// goal is a guarded no-op.
func (l *Ledger) UpdateFinancialGoal(goal decimal.Decimal) error {
	if goal.IsNegative() {
		return nil
	}
	l.goal = goal
	return Set(l.store, keyFinancialGoal, l.goal)
}

// SetCurrency replaces the display currency code. Amounts are not converted,
// only re-labeled.
func (l *Ledger) SetCurrency(code string) error {
	if code == "" {
		return fmt.Errorf("currency code is missing")
	}
	l.currency = code
	return Set(l.store, keyCurrency, l.currency)
}
