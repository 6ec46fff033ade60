package domain

import "time"

// Company is a production unit. It owns one account of each of the four
// production kinds; the accounts are created at registration and never
// deleted.
type Company struct {
	CompanyID          string    `json:"companyID"`
	Name               string    `json:"name"`
	MeansAccountID     string    `json:"meansAccountID"`
	ResourcesAccountID string    `json:"resourcesAccountID"`
	LabourAccountID    string    `json:"labourAccountID"`
	ProductAccountID   string    `json:"productAccountID"`
	RegisteredOn       time.Time `json:"registeredOn"`
}

// AccountIDs lists all four account ids of the company.
func (c *Company) AccountIDs() []string {
	return []string{
		c.MeansAccountID,
		c.ResourcesAccountID,
		c.LabourAccountID,
		c.ProductAccountID,
	}
}

// AccountIDByKind returns the company account of the given kind.
func (c *Company) AccountIDByKind(kind AccountKind) (string, bool) {
	switch kind {
	case KindMeans:
		return c.MeansAccountID, true
	case KindResources:
		return c.ResourcesAccountID, true
	case KindLabour:
		return c.LabourAccountID, true
	case KindProduct:
		return c.ProductAccountID, true
	default:
		return "", false
	}
}

// Member is a worker. Members own a single account holding their labour
// certificates.
type Member struct {
	MemberID     string    `json:"memberID"`
	Name         string    `json:"name"`
	AccountID    string    `json:"accountID"`
	RegisteredOn time.Time `json:"registeredOn"`
}

// SocialAccounting is the singleton accounting authority. It owns the
// credit-issuance account (debited when approved plans are credited) and
// the public-sector-fund account (credited by taxes).
type SocialAccounting struct {
	ID           string `json:"id"`
	AccountID    string `json:"accountID"`
	PSFAccountID string `json:"psfAccountID"`
}
