package repositories

import (
	"context"
	"time"

	"github.com/RogerFilm/accounting/internal/core/domain"
)

// JournalReader defines read operations for journal entries and lines.
type JournalReader interface {
	// FindEntryByID retrieves an entry with its lines, scoped to a company.
	FindEntryByID(ctx context.Context, companyID, entryID string) (*domain.JournalEntry, error)

	// ListEntries retrieves entries (with lines) for a company whose date falls
	// in [from, to] inclusive. status filters by lifecycle state when non-nil.
	ListEntries(ctx context.Context, companyID string, from, to time.Time, status *domain.EntryStatus) ([]domain.JournalEntry, error)
}

// JournalWriter defines write operations for journal entries and lines.
type JournalWriter interface {
	// SaveEntry persists an entry and all of its lines atomically. A partially
	// written entry must never become visible to readers.
	SaveEntry(ctx context.Context, entry domain.JournalEntry) error

	// UpdateEntry replaces a draft entry's fields and lines atomically.
	UpdateEntry(ctx context.Context, entry domain.JournalEntry) error

	// UpdateEntryStatus transitions an entry's lifecycle status.
	UpdateEntryStatus(ctx context.Context, companyID, entryID string, status domain.EntryStatus, updatedAt time.Time) error

	// DeleteEntry removes a draft entry and its lines.
	DeleteEntry(ctx context.Context, companyID, entryID string) error
}

// JournalRepositoryFacade combines all journal repository operations.
type JournalRepositoryFacade interface {
	JournalReader
	JournalWriter
}
