package dto

// RegisterPrivateConsumptionRequest records a member consuming a
// planned product.
type RegisterPrivateConsumptionRequest struct {
	MemberID string `json:"memberID" binding:"required,uuid"`
	PlanID   string `json:"planID" binding:"required,uuid"`
	Amount   int64  `json:"amount" binding:"required,gt=0"`
}

// RegisterProductiveConsumptionRequest records a company consuming a
// planned product as fixed means or raw materials.
type RegisterProductiveConsumptionRequest struct {
	CompanyID string `json:"companyID" binding:"required,uuid"`
	PlanID    string `json:"planID" binding:"required,uuid"`
	Amount    int64  `json:"amount" binding:"required,gt=0"`
	// Purpose selects the debited account: MEANS_OF_PRODUCTION or
	// RAW_MATERIALS.
	Purpose string `json:"purpose" binding:"required,oneof=MEANS_OF_PRODUCTION RAW_MATERIALS"`
}
