package interfaces

import (
	"context"

	"comunikapp/internal/domain/entities"
)

//go:generate mockgen -source=machine_repository_interface.go -destination=mocks/machine_repository_mock.go -package=mock_interfaces

// IMachineRepository abstracts persistence for the store's machine registry.
type IMachineRepository interface {
	Create(ctx context.Context, m entities.Machine) (entities.Machine, error)
	GetByID(ctx context.Context, storeID, id string) (entities.Machine, error)
	GetByIDs(ctx context.Context, storeID string, ids []string) ([]entities.Machine, error)
	ListByStore(ctx context.Context, storeID string) ([]entities.Machine, error)
	Update(ctx context.Context, m entities.Machine) (entities.Machine, error)
	Delete(ctx context.Context, storeID, id string) error
}
