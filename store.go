package fingrow

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// Store persists typed values under logical keys, one JSON file per key, in a
// single data directory.
//
// Reads fall back to a caller-supplied default when the key is absent or its
// content cannot be parsed; the default is persisted immediately so the next
// read finds it. Writes always serialize the whole value and overwrite the
// previous one, there are no partial or merge writes. The store assumes a
// single process; concurrent writers silently clobber each other's last write.
type Store struct {
	dir string
}

// OpenStore opens (creating if needed) a store rooted at dir.
func OpenStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("could not create data directory %q: %w", dir, err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the store's data directory.
func (s *Store) Dir() string { return s.dir }

func (s *Store) path(key string) string { return filepath.Join(s.dir, key+".json") }

// Get reads the value persisted under key. An absent or unreadable value is
// replaced by def, which is persisted and returned; a read never fails.
func Get[T any](s *Store, key string, def T) T {
	content, err := os.ReadFile(s.path(key))
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("warning: cannot read %q, falling back to default: %v", key, err)
		}
		installDefault(s, key, def)
		return def
	}
	var v T
	if err := json.Unmarshal(content, &v); err != nil {
		log.Printf("warning: corrupt data for %q, falling back to default: %v", key, err)
		installDefault(s, key, def)
		return def
	}
	return v
}

func installDefault[T any](s *Store, key string, def T) {
	if err := Set(s, key, def); err != nil {
		log.Printf("warning: cannot persist default for %q: %v", key, err)
	}
}

// Set serializes v and overwrites the value persisted under key.
func Set[T any](s *Store, key string, v T) error {
	content, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("could not serialize %q: %w", key, err)
	}
	if err := os.WriteFile(s.path(key), append(content, '\n'), 0644); err != nil {
		return fmt.Errorf("could not persist %q: %w", key, err)
	}
	return nil
}

// Logical keys of the persisted collections and settings.
const (
	keyTransactions  = "transactions"
	keyRecords       = "records"
	keyAssets        = "assets"
	keyLiabilities   = "liabilities"
	keyBudgets       = "budgets"
	keyCurrency      = "currency"
	keyFinancialGoal = "financialGoal"
)
