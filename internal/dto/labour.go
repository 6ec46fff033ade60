package dto

import (
	"github.com/shopspring/decimal"
)

// RegisterHoursWorkedRequest records hours a member worked at a company.
type RegisterHoursWorkedRequest struct {
	CompanyID string          `json:"companyID" binding:"required,uuid"`
	MemberID  string          `json:"memberID" binding:"required,uuid"`
	Hours     decimal.Decimal `json:"hours" binding:"required"`
}

// RegisterHoursWorkedResponse reports the two transfers posted for a
// registration: the work certificates to the member and the tax to the
// public sector fund.
type RegisterHoursWorkedResponse struct {
	CertificateTransfer TransferResponse `json:"certificateTransfer"`
	TaxTransfer         TransferResponse `json:"taxTransfer"`
}
