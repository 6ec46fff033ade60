package mapping

import (
	"github.com/planwerk/planwerk_app/internal/core/domain"
	"github.com/planwerk/planwerk_app/internal/models"
)

// ToModelTenure converts a domain CoordinationTenure to a model tenure
func ToModelTenure(d domain.CoordinationTenure) models.CoordinationTenure {
	return models.CoordinationTenure{
		TenureID:      d.TenureID,
		CooperationID: d.CooperationID,
		CoordinatorID: d.CoordinatorID,
		StartDate:     d.StartDate,
		EndDate:       d.EndDate,
	}
}

// ToDomainTenure converts a model tenure to a domain CoordinationTenure
func ToDomainTenure(m models.CoordinationTenure) domain.CoordinationTenure {
	return domain.CoordinationTenure{
		TenureID:      m.TenureID,
		CooperationID: m.CooperationID,
		CoordinatorID: m.CoordinatorID,
		StartDate:     m.StartDate,
		EndDate:       m.EndDate,
	}
}

// ToDomainTenureSlice converts a slice of model tenures to domain tenures
func ToDomainTenureSlice(ms []models.CoordinationTenure) []domain.CoordinationTenure {
	ds := make([]domain.CoordinationTenure, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTenure(m)
	}
	return ds
}

// ToModelTransferRequest converts a domain CoordinationTransferRequest to a model row
func ToModelTransferRequest(d domain.CoordinationTransferRequest) models.CoordinationTransferRequest {
	return models.CoordinationTransferRequest{
		RequestID:    d.RequestID,
		TenureID:     d.TenureID,
		CandidateID:  d.CandidateID,
		CreationDate: d.CreationDate,
		Status:       string(d.Status),
	}
}

// ToDomainTransferRequest converts a model row to a domain CoordinationTransferRequest
func ToDomainTransferRequest(m models.CoordinationTransferRequest) domain.CoordinationTransferRequest {
	return domain.CoordinationTransferRequest{
		RequestID:    m.RequestID,
		TenureID:     m.TenureID,
		CandidateID:  m.CandidateID,
		CreationDate: m.CreationDate,
		Status:       domain.TransferRequestStatus(m.Status),
	}
}
