package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transfer represents one row of the append-only transfer log.
type Transfer struct {
	TransferID      string          `db:"transfer_id"`
	Date            time.Time       `db:"date"`
	DebitAccountID  string          `db:"debit_account_id"`
	CreditAccountID string          `db:"credit_account_id"`
	Value           decimal.Decimal `db:"value"`
	Type            string          `db:"type"`
}
