package models

import "time"

// Cooperation represents a cooperation row. Member plans reference the
// cooperation from the plans table.
type Cooperation struct {
	CooperationID string    `db:"cooperation_id"`
	Name          string    `db:"name"`
	Definition    string    `db:"definition"`
	AccountID     string    `db:"account_id"`
	CreationDate  time.Time `db:"creation_date"`
}
