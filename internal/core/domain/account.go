package domain

import "time"

// AccountKind identifies what role an account plays in the economy.
// Companies own one account of each of the four production kinds, members
// own a single member account, cooperations own one cooperation account and
// social accounting owns the fixed system accounts.
type AccountKind string

const (
	KindMeans       AccountKind = "means"
	KindResources   AccountKind = "resources"
	KindLabour      AccountKind = "labour"
	KindProduct     AccountKind = "product"
	KindMember      AccountKind = "member"
	KindCooperation AccountKind = "cooperation"
	KindSocial      AccountKind = "social-accounting"
)

// Account is a ledger account. It carries no balance field: balances are
// always derived from the transfer history (see the ledger service).
type Account struct {
	AccountID string      `json:"accountID"`
	Kind      AccountKind `json:"kind"`
	OwnerID   string      `json:"ownerID"` // company, member, cooperation or social accounting id
	CreatedAt time.Time   `json:"createdAt"`
}
