package mapping

import (
	"github.com/planwerk/planwerk_app/internal/core/domain"
	"github.com/planwerk/planwerk_app/internal/models"
)

// ToModelTransfer converts a domain Transfer to a model Transfer
func ToModelTransfer(d domain.Transfer) models.Transfer {
	return models.Transfer{
		TransferID:      d.TransferID,
		Date:            d.Date,
		DebitAccountID:  d.DebitAccountID,
		CreditAccountID: d.CreditAccountID,
		Value:           d.Value,
		Type:            string(d.Type),
	}
}

// ToDomainTransfer converts a model Transfer to a domain Transfer
func ToDomainTransfer(m models.Transfer) domain.Transfer {
	return domain.Transfer{
		TransferID:      m.TransferID,
		Date:            m.Date,
		DebitAccountID:  m.DebitAccountID,
		CreditAccountID: m.CreditAccountID,
		Value:           m.Value,
		Type:            domain.TransferType(m.Type),
	}
}

// ToDomainTransferSlice converts a slice of model Transfers to a slice of domain Transfers
func ToDomainTransferSlice(ms []models.Transfer) []domain.Transfer {
	ds := make([]domain.Transfer, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransfer(m)
	}
	return ds
}
