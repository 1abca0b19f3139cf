package mapping

import (
	"github.com/SscSPs/contabilidad_app/internal/core/domain"
	"github.com/SscSPs/contabilidad_app/internal/models"
)

// ToModelMovement converts a domain Movement to a model Movement
func ToModelMovement(d domain.Movement) models.Movement {
	return models.Movement{
		MovementID:   d.MovementID,
		AccountID:    d.AccountID,
		MovementDate: d.Date,
		Description:  d.Description,
		Debit:        d.Debit,
		Credit:       d.Credit,
		EntryNumber:  d.EntryNumber,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainMovement converts a model Movement to a domain Movement
func ToDomainMovement(m models.Movement) domain.Movement {
	return domain.Movement{
		MovementID:  m.MovementID,
		AccountID:   m.AccountID,
		Date:        m.MovementDate,
		Description: m.Description,
		Debit:       m.Debit,
		Credit:      m.Credit,
		EntryNumber: m.EntryNumber,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainMovementSlice converts a slice of model Movements to a slice of domain Movements
func ToDomainMovementSlice(ms []models.Movement) []domain.Movement {
	ds := make([]domain.Movement, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainMovement(m)
	}
	return ds
}

// ToModelCompany converts a domain Company to a model Company
func ToModelCompany(d domain.Company) models.Company {
	return models.Company{Name: d.Name, AuditFields: ToModelAuditFields(d.AuditFields)}
}

// ToDomainCompany converts a model Company to a domain Company
func ToDomainCompany(m models.Company) domain.Company {
	return domain.Company{Name: m.Name, AuditFields: ToDomainAuditFields(m.AuditFields)}
}
