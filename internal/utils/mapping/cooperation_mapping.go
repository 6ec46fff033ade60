package mapping

import (
	"github.com/planwerk/planwerk_app/internal/core/domain"
	"github.com/planwerk/planwerk_app/internal/models"
)

// ToModelCooperation converts a domain Cooperation to a model Cooperation.
// Member plan ids live on the plans table, not here.
func ToModelCooperation(d domain.Cooperation) models.Cooperation {
	return models.Cooperation{
		CooperationID: d.CooperationID,
		Name:          d.Name,
		Definition:    d.Definition,
		AccountID:     d.AccountID,
		CreationDate:  d.CreationDate,
	}
}

// ToDomainCooperation converts a model Cooperation to a domain Cooperation
// with the member plan ids loaded separately.
func ToDomainCooperation(m models.Cooperation, memberPlanIDs []string) domain.Cooperation {
	if memberPlanIDs == nil {
		memberPlanIDs = []string{}
	}
	return domain.Cooperation{
		CooperationID: m.CooperationID,
		Name:          m.Name,
		Definition:    m.Definition,
		AccountID:     m.AccountID,
		CreationDate:  m.CreationDate,
		MemberPlanIDs: memberPlanIDs,
	}
}
