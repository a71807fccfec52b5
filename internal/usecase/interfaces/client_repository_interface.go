package interfaces

import (
	"context"

	"comunikapp/internal/domain/entities"
)

//go:generate mockgen -source=client_repository_interface.go -destination=mocks/client_repository_mock.go -package=mock_interfaces

// IClientRepository abstracts persistence for the store's customer registry.
type IClientRepository interface {
	Create(ctx context.Context, c entities.Client) (entities.Client, error)
	GetByID(ctx context.Context, storeID, id string) (entities.Client, error)
	ListByStore(ctx context.Context, storeID string) ([]entities.Client, error)
	Update(ctx context.Context, c entities.Client) (entities.Client, error)
	Delete(ctx context.Context, storeID, id string) error
}
