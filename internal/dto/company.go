package dto

import (
	"time"

	"github.com/planwerk/planwerk_app/internal/core/domain"
)

// RegisterCompanyRequest defines the data needed to register a company.
type RegisterCompanyRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
}

// RegisterMemberRequest defines the data needed to register a member.
type RegisterMemberRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
}

// AddWorkerRequest records an employment relation between a company and
// a member.
type AddWorkerRequest struct {
	MemberID string `json:"memberID" binding:"required,uuid"`
}

// CompanyResponse defines the data returned for a company, including its
// four account ids.
type CompanyResponse struct {
	CompanyID          string    `json:"companyID"`
	Name               string    `json:"name"`
	MeansAccountID     string    `json:"meansAccountID"`
	ResourcesAccountID string    `json:"resourcesAccountID"`
	LabourAccountID    string    `json:"labourAccountID"`
	ProductAccountID   string    `json:"productAccountID"`
	RegisteredOn       time.Time `json:"registeredOn"`
}

// MemberResponse defines the data returned for a member.
type MemberResponse struct {
	MemberID     string    `json:"memberID"`
	Name         string    `json:"name"`
	AccountID    string    `json:"accountID"`
	RegisteredOn time.Time `json:"registeredOn"`
}

// ToCompanyResponse converts a domain.Company to CompanyResponse.
func ToCompanyResponse(c *domain.Company) CompanyResponse {
	return CompanyResponse{
		CompanyID:          c.CompanyID,
		Name:               c.Name,
		MeansAccountID:     c.MeansAccountID,
		ResourcesAccountID: c.ResourcesAccountID,
		LabourAccountID:    c.LabourAccountID,
		ProductAccountID:   c.ProductAccountID,
		RegisteredOn:       c.RegisteredOn,
	}
}

// ToMemberResponse converts a domain.Member to MemberResponse.
func ToMemberResponse(m *domain.Member) MemberResponse {
	return MemberResponse{
		MemberID:     m.MemberID,
		Name:         m.Name,
		AccountID:    m.AccountID,
		RegisteredOn: m.RegisteredOn,
	}
}
