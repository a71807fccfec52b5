package interfaces

import (
	"context"

	"comunikapp/internal/domain/entities"
)

//go:generate mockgen -source=role_repository_interface.go -destination=mocks/role_repository_mock.go -package=mock_interfaces

// IRoleRepository abstracts persistence for labor functions (funções).
type IRoleRepository interface {
	Create(ctx context.Context, r entities.Role) (entities.Role, error)
	GetByID(ctx context.Context, storeID, id string) (entities.Role, error)
	GetByIDs(ctx context.Context, storeID string, ids []string) ([]entities.Role, error)
	ListByStore(ctx context.Context, storeID string) ([]entities.Role, error)
	Update(ctx context.Context, r entities.Role) (entities.Role, error)
	Delete(ctx context.Context, storeID, id string) error
}
