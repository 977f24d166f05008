package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction : Transaction Model
// Append-only ledger entry. Rows are never updated or deleted except by the
// cascade when the owning account goes away.
type Transaction struct {
	ID              int64           `bun:",pk,autoincrement" json:"id"`
	AccountID       int64           `bun:",notnull" json:"account_id"`
	Account         *Account        `bun:"rel:belongs-to,join:account_id=id" json:"-"`
	Amount          decimal.Decimal `bun:",notnull,type:decimal(10,2)" json:"amount"`
	TransactionType string          `bun:",notnull" json:"transaction_type"`
	CreatedAt       time.Time       `bun:",nullzero,notnull,default:current_timestamp" json:"created_at"`
}
