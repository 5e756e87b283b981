package renderer

import (
	"time"

	"github.com/etnz/fingrow"
)

// TransactionTable is the view model of a plain transaction listing.
type TransactionTable struct {
	Title        string           `json:"title"`
	Transactions []TransactionRow `json:"transactions"`
}

// NewTransactionTable creates a listing view of the given transactions.
func NewTransactionTable(title string, txs []fingrow.Transaction, currency string) *TransactionTable {
	t := &TransactionTable{Title: title}
	for _, tx := range txs {
		t.Transactions = append(t.Transactions, newTransactionRow(tx, currency))
	}
	return t
}

// RecordList is the view model of the record listing.
type RecordList struct {
	Records []RecordView `json:"records"`
}

// RecordView is one record of the listing.
type RecordView struct {
	ID      string    `json:"id"`
	Title   string    `json:"title"`
	Content string    `json:"content"`
	Date    time.Time `json:"date"`
}

// When renders the record's last-modified timestamp.
func (r RecordView) When() string { return r.Date.Format("2006-01-02 15:04") }

// NewRecordList creates a listing view of the given records, newest first.
func NewRecordList(records []fingrow.Record) *RecordList {
	l := &RecordList{}
	for _, rec := range records {
		l.Records = append(l.Records, RecordView{ID: rec.ID, Title: rec.Title, Content: rec.Content, Date: rec.Date})
	}
	return l
}
