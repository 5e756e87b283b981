package fingrow

import (
	"fmt"
	"strings"
	"time"
)

// Record is a free-text note. Its Date is a last-modified timestamp, assigned
// by the ledger on every add or update; it can never be back-dated.
type Record struct {
	ID      string    `json:"id"`
	Title   string    `json:"title"`
	Content string    `json:"content"`
	Date    time.Time `json:"date"`
}

func (r Record) ident() string     { return r.ID }
func (r Record) moment() time.Time { return r.Date }

// Validate checks a record before it reaches the store.
func (r *Record) Validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return fmt.Errorf("record title is missing")
	}
	return nil
}
