package dto

import (
	"time"

	"github.com/planwerk/planwerk_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TransferResponse defines the data returned for a ledger transfer.
type TransferResponse struct {
	TransferID      string          `json:"transferID"`
	Date            time.Time       `json:"date"`
	DebitAccountID  string          `json:"debitAccountID"`
	CreditAccountID string          `json:"creditAccountID"`
	Value           decimal.Decimal `json:"value"`
	Type            string          `json:"type"`
}

// AccountBalanceResponse defines the data returned for a balance query.
type AccountBalanceResponse struct {
	AccountID string          `json:"accountID"`
	Balance   decimal.Decimal `json:"balance"`
}

// AccountResponse defines the data returned for a ledger account.
type AccountResponse struct {
	AccountID string             `json:"accountID"`
	Kind      domain.AccountKind `json:"kind"`
	OwnerID   string             `json:"ownerID"`
	CreatedAt time.Time          `json:"createdAt"`
}

// ListTransfersParams defines query parameters for an account statement.
type ListTransfersParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

// ToTransferResponse converts a domain.Transfer to TransferResponse.
func ToTransferResponse(t *domain.Transfer) TransferResponse {
	return TransferResponse{
		TransferID:      t.TransferID,
		Date:            t.Date,
		DebitAccountID:  t.DebitAccountID,
		CreditAccountID: t.CreditAccountID,
		Value:           t.Value,
		Type:            string(t.Type),
	}
}

// ToTransferResponses converts a slice of domain.Transfer to
// []TransferResponse.
func ToTransferResponses(transfers []domain.Transfer) []TransferResponse {
	res := make([]TransferResponse, len(transfers))
	for i, t := range transfers {
		res[i] = ToTransferResponse(&t)
	}
	return res
}

// ToAccountResponse converts a domain.Account to AccountResponse.
func ToAccountResponse(a *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID: a.AccountID,
		Kind:      a.Kind,
		OwnerID:   a.OwnerID,
		CreatedAt: a.CreatedAt,
	}
}
