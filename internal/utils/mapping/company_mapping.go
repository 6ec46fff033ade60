package mapping

import (
	"github.com/planwerk/planwerk_app/internal/core/domain"
	"github.com/planwerk/planwerk_app/internal/models"
)

// ToModelCompany converts a domain Company to a model Company
func ToModelCompany(d domain.Company) models.Company {
	return models.Company{
		CompanyID:          d.CompanyID,
		Name:               d.Name,
		MeansAccountID:     d.MeansAccountID,
		ResourcesAccountID: d.ResourcesAccountID,
		LabourAccountID:    d.LabourAccountID,
		ProductAccountID:   d.ProductAccountID,
		RegisteredOn:       d.RegisteredOn,
	}
}

// ToDomainCompany converts a model Company to a domain Company
func ToDomainCompany(m models.Company) domain.Company {
	return domain.Company{
		CompanyID:          m.CompanyID,
		Name:               m.Name,
		MeansAccountID:     m.MeansAccountID,
		ResourcesAccountID: m.ResourcesAccountID,
		LabourAccountID:    m.LabourAccountID,
		ProductAccountID:   m.ProductAccountID,
		RegisteredOn:       m.RegisteredOn,
	}
}

// ToModelMember converts a domain Member to a model Member
func ToModelMember(d domain.Member) models.Member {
	return models.Member{
		MemberID:     d.MemberID,
		Name:         d.Name,
		AccountID:    d.AccountID,
		RegisteredOn: d.RegisteredOn,
	}
}

// ToDomainMember converts a model Member to a domain Member
func ToDomainMember(m models.Member) domain.Member {
	return domain.Member{
		MemberID:     m.MemberID,
		Name:         m.Name,
		AccountID:    m.AccountID,
		RegisteredOn: m.RegisteredOn,
	}
}

// ToDomainSocialAccounting converts a model row to a domain SocialAccounting
func ToDomainSocialAccounting(m models.SocialAccounting) domain.SocialAccounting {
	return domain.SocialAccounting{
		ID:           m.ID,
		AccountID:    m.AccountID,
		PSFAccountID: m.PSFAccountID,
	}
}
