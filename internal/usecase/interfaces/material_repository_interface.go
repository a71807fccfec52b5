package interfaces

import (
	"context"

	"comunikapp/internal/domain/entities"
)

//go:generate mockgen -source=material_repository_interface.go -destination=mocks/material_repository_mock.go -package=mock_interfaces

// IMaterialRepository abstracts persistence for the store's supply catalog.
//
// Every read is scoped by storeID: lookups can only ever resolve materials
// the requesting store owns. GetByIDs is the batch resolution used by the
// pricing engine; callers compare the resolved count against the requested
// distinct count to detect missing or cross-store references.
type IMaterialRepository interface {
	Create(ctx context.Context, m entities.Material) (entities.Material, error)
	GetByID(ctx context.Context, storeID, id string) (entities.Material, error)
	GetByIDs(ctx context.Context, storeID string, ids []string) ([]entities.Material, error)
	ListByStore(ctx context.Context, storeID string) ([]entities.Material, error)
	Update(ctx context.Context, m entities.Material) (entities.Material, error)
	Delete(ctx context.Context, storeID, id string) error
}
