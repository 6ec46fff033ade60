package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransferType classifies a ledger transfer. Each type admits exactly one
// legal (debit kind, credit kind) pair, see TransferPair.
type TransferType string

const (
	TransferCreditP                TransferType = "credit_p"
	TransferCreditR                TransferType = "credit_r"
	TransferCreditA                TransferType = "credit_a"
	TransferCreditPublicP          TransferType = "credit_public_p"
	TransferCreditPublicR          TransferType = "credit_public_r"
	TransferCreditPublicA          TransferType = "credit_public_a"
	TransferPrivateConsumption     TransferType = "private_consumption"
	TransferProductiveConsumptionP TransferType = "productive_consumption_p"
	TransferProductiveConsumptionR TransferType = "productive_consumption_r"
	TransferCompensationForCoop    TransferType = "compensation_for_coop"
	TransferCompensationForCompany TransferType = "compensation_for_company"
	TransferWorkCertificates       TransferType = "work_certificates"
	TransferTaxes                  TransferType = "taxes"
)

// TransferPair is the legal (debit, credit) account-kind pair for a type.
type TransferPair struct {
	Debit  AccountKind
	Credit AccountKind
}

// transferPairs is the fixed legality table keyed by transfer type.
var transferPairs = map[TransferType]TransferPair{
	TransferCreditP:                {Debit: KindSocial, Credit: KindMeans},
	TransferCreditR:                {Debit: KindSocial, Credit: KindResources},
	TransferCreditA:                {Debit: KindSocial, Credit: KindLabour},
	TransferCreditPublicP:          {Debit: KindSocial, Credit: KindMeans},
	TransferCreditPublicR:          {Debit: KindSocial, Credit: KindResources},
	TransferCreditPublicA:          {Debit: KindSocial, Credit: KindLabour},
	TransferPrivateConsumption:     {Debit: KindMember, Credit: KindProduct},
	TransferProductiveConsumptionP: {Debit: KindMeans, Credit: KindProduct},
	TransferProductiveConsumptionR: {Debit: KindResources, Credit: KindProduct},
	TransferCompensationForCoop:    {Debit: KindCooperation, Credit: KindProduct},
	TransferCompensationForCompany: {Debit: KindProduct, Credit: KindCooperation},
	TransferWorkCertificates:       {Debit: KindLabour, Credit: KindMember},
	TransferTaxes:                  {Debit: KindMember, Credit: KindSocial},
}

// PairForType returns the legal debit/credit kinds for a transfer type.
// The second return value is false for an unknown type.
func PairForType(t TransferType) (TransferPair, bool) {
	pair, ok := transferPairs[t]
	return pair, ok
}

// LegalTransferPair reports whether debiting debitKind and crediting
// creditKind is allowed for the given transfer type.
func LegalTransferPair(t TransferType, debitKind, creditKind AccountKind) bool {
	pair, ok := transferPairs[t]
	return ok && pair.Debit == debitKind && pair.Credit == creditKind
}

// Transfer is one immutable double-entry posting between two accounts.
// Transfers are only ever created through the ledger service and are never
// updated or deleted.
type Transfer struct {
	TransferID      string          `json:"transferID"`
	Date            time.Time       `json:"date"`
	DebitAccountID  string          `json:"debitAccountID"`
	CreditAccountID string          `json:"creditAccountID"`
	Value           decimal.Decimal `json:"value"`
	Type            TransferType    `json:"type"`
}
