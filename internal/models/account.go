package models

import "time"

// Account represents a ledger account row. Balances are never stored;
// they are folded from the transfers table on demand.
type Account struct {
	AccountID string    `db:"account_id"`
	Kind      string    `db:"kind"`
	OwnerID   string    `db:"owner_id"`
	CreatedAt time.Time `db:"created_at"`
}
