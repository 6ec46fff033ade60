package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/planwerk/planwerk_app/internal/core/domain"
)

func TestPairForType(t *testing.T) {
	tests := []struct {
		name         string
		transferType domain.TransferType
		wantDebit    domain.AccountKind
		wantCredit   domain.AccountKind
	}{
		{
			name:         "plan credits debit social accounting",
			transferType: domain.TransferCreditA,
			wantDebit:    domain.KindSocial,
			wantCredit:   domain.KindLabour,
		},
		{
			name:         "public credits mirror regular credits",
			transferType: domain.TransferCreditPublicP,
			wantDebit:    domain.KindSocial,
			wantCredit:   domain.KindMeans,
		},
		{
			name:         "private consumption debits the member",
			transferType: domain.TransferPrivateConsumption,
			wantDebit:    domain.KindMember,
			wantCredit:   domain.KindProduct,
		},
		{
			name:         "compensation for company flows to the cooperation",
			transferType: domain.TransferCompensationForCompany,
			wantDebit:    domain.KindProduct,
			wantCredit:   domain.KindCooperation,
		},
		{
			name:         "work certificates flow labour to member",
			transferType: domain.TransferWorkCertificates,
			wantDebit:    domain.KindLabour,
			wantCredit:   domain.KindMember,
		},
		{
			name:         "taxes flow member to social accounting",
			transferType: domain.TransferTaxes,
			wantDebit:    domain.KindMember,
			wantCredit:   domain.KindSocial,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pair, ok := domain.PairForType(tt.transferType)
			assert.True(t, ok)
			assert.Equal(t, tt.wantDebit, pair.Debit)
			assert.Equal(t, tt.wantCredit, pair.Credit)
		})
	}
}

func TestPairForType_UnknownType(t *testing.T) {
	_, ok := domain.PairForType(domain.TransferType("barter"))

	assert.False(t, ok)
}

func TestLegalTransferPair(t *testing.T) {
	assert.True(t, domain.LegalTransferPair(domain.TransferWorkCertificates, domain.KindLabour, domain.KindMember))
	assert.False(t, domain.LegalTransferPair(domain.TransferWorkCertificates, domain.KindMember, domain.KindLabour))
	assert.False(t, domain.LegalTransferPair(domain.TransferTaxes, domain.KindMember, domain.KindProduct))
}
