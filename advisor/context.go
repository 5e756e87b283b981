package advisor

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/etnz/fingrow"
)

// contextLimit caps the number of transactions serialized into the chat
// context, keeping the prompt size bounded.
const contextLimit = 50

// TransactionsContext serializes the most recent transactions into the
// context string prepended to every advisor question. Transactions are
// expected newest first; at most contextLimit of them are included.
func TransactionsContext(txs []fingrow.Transaction) string {
	if len(txs) == 0 {
		return "The user has not added any transactions yet."
	}
	if len(txs) > contextLimit {
		txs = txs[:contextLimit]
	}
	content, err := json.Marshal(txs)
	if err != nil {
		// Transactions always serialize; a failure here is a programming error.
		log.Printf("warning: cannot serialize transactions for the advisor: %v", err)
		return "The user's transactions could not be loaded."
	}
	return fmt.Sprintf("Here is a summary of the user's recent transactions in JSON format: %s", content)
}
