package entity

import "time"

// Wallet balances are stored in minor units (kobo). Exactly one wallet per
// user, enforced by a unique index on user_id.
type Wallet struct {
	ID               string    `db:"id" json:"id"`
	UserID           string    `db:"user_id" json:"userId"`
	AvailableBalance int64     `db:"available_balance" json:"availableBalance"`
	LedgerBalance    int64     `db:"ledger_balance" json:"ledgerBalance"`
	Currency         string    `db:"currency" json:"currency"`
	CreatedAt        time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt        time.Time `db:"updated_at" json:"updatedAt"`
}
