package fingrow

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
)

func TestGetInstallsDefault(t *testing.T) {
	store, err := OpenStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	got := Get(store, "currency", "NGN")
	if got != "NGN" {
		t.Errorf("Get() = %q, want default %q", got, "NGN")
	}

	// The default must have been persisted so the next read finds it.
	if _, err := os.Stat(filepath.Join(store.Dir(), "currency.json")); err != nil {
		t.Errorf("default was not persisted: %v", err)
	}
}

func TestGetCorruptFallsBack(t *testing.T) {
	store, err := OpenStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(store.Dir(), "transactions.json"), []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	got := Get(store, "transactions", []Transaction{})
	if len(got) != 0 {
		t.Errorf("Get() over corrupt data = %v, want the default", got)
	}

	// The corrupt file has been replaced by the default.
	content, err := os.ReadFile(filepath.Join(store.Dir(), "transactions.json"))
	if err != nil {
		t.Fatal(err)
	}
	if string(content) == "{not json" {
		t.Error("corrupt file was not replaced by the default")
	}
}

func TestSetGetRoundTrip(t *testing.T) {
	store, err := OpenStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	want := []Budget{{Category: "Food", Limit: decimal.NewFromInt(650)}}
	if err := Set(store, "budgets", want); err != nil {
		t.Fatal(err)
	}

	got := Get(store, "budgets", []Budget{})
	if len(got) != 1 || got[0].Category != "Food" || !got[0].Limit.Equal(want[0].Limit) {
		t.Errorf("round trip = %v, want %v", got, want)
	}
}

// TestAmountsAreJSONNumbers checks that decimals serialize as plain numbers,
// not quoted strings.
func TestAmountsAreJSONNumbers(t *testing.T) {
	store, err := OpenStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	if err := Set(store, "financialGoal", decimal.NewFromInt(500)); err != nil {
		t.Fatal(err)
	}
	content, err := os.ReadFile(filepath.Join(store.Dir(), "financialGoal.json"))
	if err != nil {
		t.Fatal(err)
	}
	if string(content) != "500\n" {
		t.Errorf("financialGoal.json = %q, want %q", content, "500\n")
	}
}
