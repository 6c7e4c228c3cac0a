package services

import (
	"context"

	"github.com/medforge/hospital_ledger/internal/core/domain"
	"github.com/medforge/hospital_ledger/internal/dto"
)

// JournalReaderSvc defines read operations for journal data.
type JournalReaderSvc interface {
	// GetEntryByID retrieves a single entry within a hospital.
	GetEntryByID(ctx context.Context, hospitalID string, entryID string) (*domain.Entry, error)

	// GetJournal retrieves every entry of one logical journal.
	GetJournal(ctx context.Context, hospitalID string, refType domain.ReferenceType, refID string) ([]domain.Entry, error)
}

// JournalWriterSvc defines write operations for journal data.
type JournalWriterSvc interface {
	// PostJournal validates and atomically writes a balanced set of entries.
	// All validation happens before any write; a rejected call leaves zero rows.
	PostJournal(ctx context.Context, hospitalID string, req dto.PostJournalRequest, creatorUserID string) ([]domain.Entry, error)

	// ReverseEntry reverses the full journal the entry belongs to, creating a
	// compensating entry for every line. Exactly one of several concurrent
	// reversal attempts for the same journal succeeds.
	ReverseEntry(ctx context.Context, hospitalID string, entryID string, reason string, userID string) ([]domain.Entry, error)
}

// JournalSvcFacade combines all journal-related service interfaces.
type JournalSvcFacade interface {
	JournalReaderSvc
	JournalWriterSvc
}
