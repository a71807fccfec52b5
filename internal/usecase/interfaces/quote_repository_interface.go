package interfaces

import (
	"context"

	"comunikapp/internal/domain/entities"
)

//go:generate mockgen -source=quote_repository_interface.go -destination=mocks/quote_repository_mock.go -package=mock_interfaces

// IQuoteRepository abstracts persistence for quotes and their line items.
//
// Write guarantees the usecase depends on:
//   - CreateWithItems persists the quote and all its line items atomically,
//     and fails if the quote id already exists.
//   - ReplaceWithItems persists a recomputed snapshot and swaps the full
//     line-item set (delete then reinsert) in the same transaction, so no
//     orphaned items can survive an update.
//   - SaveMetadata updates name/description/client fields only, leaving the
//     cost snapshot and line items untouched.
//   - NextSequence atomically increments and returns the per-store,
//     per-month quote counter (upsert on first use).
//
// GetByID returns a zero-value Quote (empty ID) when absent. Ownership
// checks against the caller's store happen in the usecase.
type IQuoteRepository interface {
	CreateWithItems(ctx context.Context, q entities.Quote) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	ListByStore(ctx context.Context, storeID string) ([]entities.Quote, error)
	ReplaceWithItems(ctx context.Context, q entities.Quote) (entities.Quote, error)
	SaveMetadata(ctx context.Context, q entities.Quote) (entities.Quote, error)
	Delete(ctx context.Context, q entities.Quote) error
	NextSequence(ctx context.Context, storeID, yearMonth string) (int, error)
	LastNumberForMonth(ctx context.Context, storeID, yearMonth string) (string, error)
}
