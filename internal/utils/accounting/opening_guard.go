package accounting

import (
	"fmt"
	"sync"

	"github.com/SscSPs/contabilidad_app/internal/apperrors"
	"github.com/SscSPs/contabilidad_app/internal/core/domain"
)

// OpeningState is the lifecycle state of a ledger's opening entry.
type OpeningState int

const (
	NoOpeningEntry OpeningState = iota
	OpeningEntryRecorded
)

func (s OpeningState) String() string {
	if s == OpeningEntryRecorded {
		return "opening-entry-recorded"
	}
	return "no-opening-entry"
}

// OpeningEntryGuard admits at most one opening entry per ledger.
// OpeningEntryRecorded is terminal. The guard never writes; callers persist the
// entry and only then call Accept.
type OpeningEntryGuard struct {
	mu    sync.Mutex
	state OpeningState
}

// NewOpeningEntryGuard starts the guard from what the ledger already holds.
func NewOpeningEntryGuard(alreadyRecorded bool) *OpeningEntryGuard {
	g := &OpeningEntryGuard{}
	if alreadyRecorded {
		g.state = OpeningEntryRecorded
	}
	return g
}

// State returns the current state.
func (g *OpeningEntryGuard) State() OpeningState {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

// Check validates a proposed opening entry without changing state.
func (g *OpeningEntryGuard) Check(lines []domain.EntryLine) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.check(lines)
}

// Accept validates the entry and moves the guard to OpeningEntryRecorded.
func (g *OpeningEntryGuard) Accept(lines []domain.EntryLine) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if err := g.check(lines); err != nil {
		return err
	}
	g.state = OpeningEntryRecorded
	return nil
}

func (g *OpeningEntryGuard) check(lines []domain.EntryLine) error {
	if g.state == OpeningEntryRecorded {
		return apperrors.ErrOpeningEntryExists
	}
	if err := ValidateEntry(lines); err != nil {
		return fmt.Errorf("invalid opening entry: %w", err)
	}
	return nil
}
