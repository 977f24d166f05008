package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account : Account Model
// One account per user, created together with the user row.
type Account struct {
	ID          int64           `bun:",pk,autoincrement" json:"id"`
	UserID      int64           `bun:",notnull" json:"user_id"`
	User        *User           `bun:"rel:belongs-to,join:user_id=id" json:"-"`
	AccountType string          `bun:",notnull" json:"account_type"`
	Balance     decimal.Decimal `bun:",notnull,type:decimal(10,2)" json:"balance"`
	CreatedAt   time.Time       `bun:",nullzero,notnull,default:current_timestamp" json:"created_at"`
}
