package repositories

import (
	"context"

	"github.com/SscSPs/contabilidad_app/internal/core/domain"
)

// MovementReader defines read operations for movement data
type MovementReader interface {
	// ListMovements returns movements matching the filter ordered by date and movement ID.
	// When filter.Limit is positive the result is paged and the returned token points at the next page.
	ListMovements(ctx context.Context, filter domain.MovementFilter) ([]domain.Movement, *string, error)

	// NextEntryNumber reports the number the next regular entry would receive.
	NextEntryNumber(ctx context.Context) (int64, error)

	// OpeningEntryExists reports whether the opening entry has been recorded.
	OpeningEntryExists(ctx context.Context) (bool, error)
}

// MovementWriter defines write operations for movement data
type MovementWriter interface {
	// AppendEntry stores every line of an entry atomically. The entry number is allocated
	// inside the same database transaction under a ledger-wide lock. With opening set the
	// entry receives domain.OpeningEntryNumber, or apperrors.ErrOpeningEntryExists is
	// returned when one is already stored.
	AppendEntry(ctx context.Context, header domain.EntryHeader, lines []domain.EntryLine, opening bool) ([]domain.Movement, error)
}

// MovementRepositoryFacade combines all movement-related repository interfaces
type MovementRepositoryFacade interface {
	MovementReader
	MovementWriter
}
