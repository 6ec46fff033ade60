package services

import (
	"context"

	"github.com/planwerk/planwerk_app/internal/core/domain"
	"github.com/planwerk/planwerk_app/internal/dto"
)

// LabourSvcFacade records worked hours and the certificates they earn.
type LabourSvcFacade interface {
	// RegisterHoursWorked posts the work certificate transfer to the
	// member and the tax transfer to the public sector fund, scaled by the
	// payout factor.
	RegisterHoursWorked(ctx context.Context, req dto.RegisterHoursWorkedRequest) (*dto.RegisterHoursWorkedResponse, error)

	// ListWorkedHours lists a company's registered hours, newest first.
	ListWorkedHours(ctx context.Context, companyID string, limit, offset int) ([]domain.Transfer, error)
}
