package interfaces

import (
	"context"

	"comunikapp/internal/domain/entities"
)

//go:generate mockgen -source=settings_repository_interface.go -destination=mocks/settings_repository_mock.go -package=mock_interfaces

// ISettingsRepository abstracts persistence for per-store cost parameters.
//
// GetByStoreID returns a zero-value StoreSettings (empty StoreID) when the
// store has no settings record; absence is a domain condition, not an error.
type ISettingsRepository interface {
	GetByStoreID(ctx context.Context, storeID string) (entities.StoreSettings, error)
	Put(ctx context.Context, settings entities.StoreSettings) (entities.StoreSettings, error)
}
