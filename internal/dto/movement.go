package dto

import (
	"time"

	"github.com/SscSPs/contabilidad_app/internal/core/domain"
	"github.com/SscSPs/contabilidad_app/internal/utils"
	"github.com/shopspring/decimal"
)

// EntryLineRequest is one line of a regular entry.
type EntryLineRequest struct {
	AccountID int64            `json:"accountID" binding:"required,gt=0"`
	Amount    decimal.Decimal  `json:"amount" binding:"gt=0"`
	Side      domain.EntrySide `json:"side" binding:"required,oneof=DEBIT CREDIT"`
}

// CreateEntryRequest defines the data needed to post a regular entry.
type CreateEntryRequest struct {
	Date        string             `json:"date" binding:"required,datetime=2006-01-02"`
	Description string             `json:"description" binding:"required,max=255"`
	Lines       []EntryLineRequest `json:"lines" binding:"required,min=2,dive"`
}

// OpeningItemRequest is one account of the opening entry. The side follows the account class.
type OpeningItemRequest struct {
	AccountID int64           `json:"accountID" binding:"required,gt=0"`
	Amount    decimal.Decimal `json:"amount" binding:"gt=0"`
}

// CreateOpeningEntryRequest defines the data needed to post the opening entry.
type CreateOpeningEntryRequest struct {
	CompanyName string               `json:"companyName" binding:"omitempty,max=255"`
	Date        string               `json:"date" binding:"required,datetime=2006-01-02"`
	Items       []OpeningItemRequest `json:"items" binding:"required,min=2,dive"`
}

// ListMovementsParams defines the query parameters for listing movements.
type ListMovementsParams struct {
	Description string `form:"description"`
	FromDate    string `form:"fromDate" binding:"omitempty,datetime=2006-01-02"`
	ToDate      string `form:"toDate" binding:"omitempty,datetime=2006-01-02"`
	AccountID   int64  `form:"accountID" binding:"omitempty,gt=0"`
	Limit       int    `form:"limit" binding:"omitempty,min=1,max=500"`
	NextToken   string `form:"nextToken"`
}

// MovementResponse defines the data returned for a movement.
type MovementResponse struct {
	MovementID  int64           `json:"movementID"`
	AccountID   int64           `json:"accountID"`
	Date        string          `json:"date"`
	Description string          `json:"description"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	EntryNumber int64           `json:"entryNumber"`
	CreatedAt   time.Time       `json:"createdAt"`
	CreatedBy   string          `json:"createdBy"`
}

// ListMovementsResponse is a page of movements.
type ListMovementsResponse struct {
	Movements []MovementResponse `json:"movements"`
	NextToken *string            `json:"nextToken,omitempty"`
}

// EntryResponse is returned after an entry has been posted.
type EntryResponse struct {
	EntryNumber int64              `json:"entryNumber"`
	Movements   []MovementResponse `json:"movements"`
}

// NextEntryNumberResponse reports the number the next regular entry will receive.
type NextEntryNumberResponse struct {
	NextEntryNumber int64 `json:"nextEntryNumber"`
}

// OpeningEntryStatusResponse reports whether the opening entry exists.
type OpeningEntryStatusResponse struct {
	Recorded bool `json:"recorded"`
}

// ToMovementResponse converts a domain.Movement to MovementResponse DTO.
func ToMovementResponse(m *domain.Movement) MovementResponse {
	return MovementResponse{
		MovementID:  m.MovementID,
		AccountID:   m.AccountID,
		Date:        m.Date.Format(domain.DateLayout),
		Description: m.Description,
		Debit:       utils.RoundMoney(m.Debit),
		Credit:      utils.RoundMoney(m.Credit),
		EntryNumber: m.EntryNumber,
		CreatedAt:   m.CreatedAt,
		CreatedBy:   m.CreatedBy,
	}
}

// ToMovementResponses converts a slice of domain.Movement to []MovementResponse.
func ToMovementResponses(movements []domain.Movement) []MovementResponse {
	responses := make([]MovementResponse, len(movements))
	for i := range movements {
		responses[i] = ToMovementResponse(&movements[i])
	}
	return responses
}

// ToEntryResponse converts the stored lines of one entry to EntryResponse DTO.
func ToEntryResponse(movements []domain.Movement) EntryResponse {
	resp := EntryResponse{Movements: ToMovementResponses(movements)}
	if len(movements) > 0 {
		resp.EntryNumber = movements[0].EntryNumber
	}
	return resp
}
