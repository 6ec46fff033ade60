package models

import "time"

// Company represents a company row with its four account references.
type Company struct {
	CompanyID          string    `db:"company_id"`
	Name               string    `db:"name"`
	MeansAccountID     string    `db:"means_account_id"`
	ResourcesAccountID string    `db:"resources_account_id"`
	LabourAccountID    string    `db:"labour_account_id"`
	ProductAccountID   string    `db:"product_account_id"`
	RegisteredOn       time.Time `db:"registered_on"`
}

// Member represents a member row.
type Member struct {
	MemberID     string    `db:"member_id"`
	Name         string    `db:"name"`
	AccountID    string    `db:"account_id"`
	RegisteredOn time.Time `db:"registered_on"`
}

// SocialAccounting represents the accounting authority singleton row.
type SocialAccounting struct {
	ID           string `db:"id"`
	AccountID    string `db:"account_id"`
	PSFAccountID string `db:"psf_account_id"`
}
