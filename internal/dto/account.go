package dto

import (
	"time"

	"github.com/SscSPs/contabilidad_app/internal/core/domain"
)

// CreateAccountRequest defines the data needed to add an account to the chart.
type CreateAccountRequest struct {
	Name           string                `json:"name" binding:"required,max=255"`
	Class          domain.AccountClass   `json:"class" binding:"required,oneof=ASSET LIABILITY EQUITY REVENUE COST EXPENSE"`
	Type           domain.AccountType    `json:"type" binding:"omitempty,oneof=CURRENT NON_CURRENT INITIAL_CAPITAL"`
	CashFlowBucket domain.CashFlowBucket `json:"cashFlowBucket" binding:"omitempty,oneof=APPLICATION FINANCING DEPRECIATION CASH_BANK CASH_ON_HAND"`
	FixedAssetKey  domain.FixedAssetKey  `json:"fixedAssetKey" binding:"omitempty,oneof=LAND BUILDINGS ACCUM_DEP_BUILDINGS FURNITURE ACCUM_DEP_FURNITURE COMPUTERS ACCUM_DEP_COMPUTERS"`
}

// AccountResponse defines the data returned for an account.
// Mirrors domain.Account.
type AccountResponse struct {
	AccountID      int64                 `json:"accountID"`
	Name           string                `json:"name"`
	Class          domain.AccountClass   `json:"class"`
	Type           domain.AccountType    `json:"type,omitempty"`
	CashFlowBucket domain.CashFlowBucket `json:"cashFlowBucket,omitempty"`
	FixedAssetKey  domain.FixedAssetKey  `json:"fixedAssetKey,omitempty"`
	CreatedAt      time.Time             `json:"createdAt"`
	CreatedBy      string                `json:"createdBy"`
}

// ListAccountsResponse wraps the chart of accounts.
type ListAccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:      acc.AccountID,
		Name:           acc.Name,
		Class:          acc.Class,
		Type:           acc.Type,
		CashFlowBucket: acc.CashFlowBucket,
		FixedAssetKey:  acc.FixedAssetKey,
		CreatedAt:      acc.CreatedAt,
		CreatedBy:      acc.CreatedBy,
	}
}

// ToListAccountsResponse converts a slice of domain.Account to ListAccountsResponse DTO
func ToListAccountsResponse(accounts []domain.Account) ListAccountsResponse {
	list := make([]AccountResponse, len(accounts))
	for i := range accounts {
		list[i] = ToAccountResponse(&accounts[i])
	}
	return ListAccountsResponse{Accounts: list}
}
