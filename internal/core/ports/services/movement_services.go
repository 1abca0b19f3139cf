package services

import (
	"context"

	"github.com/SscSPs/contabilidad_app/internal/core/domain"
	"github.com/SscSPs/contabilidad_app/internal/dto"
)

// MovementReaderSvc defines read operations for movements
type MovementReaderSvc interface {
	// ListMovements lists movements by description and/or period, paged by token.
	ListMovements(ctx context.Context, params dto.ListMovementsParams) (*dto.ListMovementsResponse, error)

	// NextEntryNumber reports the number the next regular entry would receive.
	NextEntryNumber(ctx context.Context) (int64, error)

	// OpeningEntryRecorded reports whether the ledger already has its opening entry.
	OpeningEntryRecorded(ctx context.Context) (bool, error)
}

// MovementWriterSvc defines write operations for movements
type MovementWriterSvc interface {
	// PostEntry records a balanced regular entry under the next entry number.
	PostEntry(ctx context.Context, req dto.CreateEntryRequest, userID string) ([]domain.Movement, error)

	// PostOpeningEntry records the opening entry. It can succeed at most once per ledger.
	PostOpeningEntry(ctx context.Context, req dto.CreateOpeningEntryRequest, userID string) ([]domain.Movement, error)
}

// MovementSvcFacade combines all movement-related service interfaces
type MovementSvcFacade interface {
	MovementReaderSvc
	MovementWriterSvc
}
