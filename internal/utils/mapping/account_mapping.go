package mapping

import (
	"github.com/SscSPs/contabilidad_app/internal/core/domain"
	"github.com/SscSPs/contabilidad_app/internal/models"
)

// ToModelAccount converts a domain Account to a model Account
func ToModelAccount(d domain.Account) models.Account {
	return models.Account{
		AccountID:      d.AccountID,
		Name:           d.Name,
		Class:          models.AccountClass(d.Class),
		Type:           string(d.Type),
		CashFlowBucket: string(d.CashFlowBucket),
		FixedAssetKey:  string(d.FixedAssetKey),
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainAccount converts a model Account to a domain Account
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountID:      m.AccountID,
		Name:           m.Name,
		Class:          domain.AccountClass(m.Class),
		Type:           domain.AccountType(m.Type),
		CashFlowBucket: domain.CashFlowBucket(m.CashFlowBucket),
		FixedAssetKey:  domain.FixedAssetKey(m.FixedAssetKey),
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainAccountSlice converts a slice of model Accounts to a slice of domain Accounts
func ToDomainAccountSlice(ms []models.Account) []domain.Account {
	ds := make([]domain.Account, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAccount(m)
	}
	return ds
}
