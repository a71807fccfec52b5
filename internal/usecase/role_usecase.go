package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"comunikapp/internal/domain/entities"
	"comunikapp/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrRoleNotFound     = errors.New("role not found")
	ErrInvalidRoleInput = errors.New("invalid role input")
)

type RoleInput struct {
	Name              string
	CostPerHour       float64
	LinkedMachineName string
}

type RoleUpdateInput struct {
	Name              *string
	CostPerHour       *float64
	LinkedMachineName *string
}

type IRoleUseCase interface {
	Create(ctx context.Context, storeID string, in RoleInput) (entities.Role, error)
	GetByID(ctx context.Context, storeID, id string) (entities.Role, error)
	ListByStore(ctx context.Context, storeID string) ([]entities.Role, error)
	Update(ctx context.Context, storeID, id string, in RoleUpdateInput) (entities.Role, error)
	Remove(ctx context.Context, storeID, id string) error
}

type RoleUseCase struct {
	repo interfaces.IRoleRepository
}

var _ IRoleUseCase = (*RoleUseCase)(nil)

func NewRoleUseCase(repo interfaces.IRoleRepository) *RoleUseCase {
	return &RoleUseCase{repo: repo}
}

func (u *RoleUseCase) Create(ctx context.Context, storeID string, in RoleInput) (entities.Role, error) {
	storeID = strings.TrimSpace(storeID)
	if storeID == "" {
		return entities.Role{}, ErrInvalidStoreID
	}
	name := strings.TrimSpace(in.Name)
	if name == "" || in.CostPerHour < 0 {
		return entities.Role{}, ErrInvalidRoleInput
	}

	now := time.Now().UTC()
	return u.repo.Create(ctx, entities.Role{
		ID:                uuid.NewString(),
		StoreID:           storeID,
		Name:              name,
		CostPerHour:       in.CostPerHour,
		LinkedMachineName: strings.TrimSpace(in.LinkedMachineName),
		CreatedAt:         now,
		UpdatedAt:         now,
	})
}

func (u *RoleUseCase) GetByID(ctx context.Context, storeID, id string) (entities.Role, error) {
	r, err := u.repo.GetByID(ctx, strings.TrimSpace(storeID), strings.TrimSpace(id))
	if err != nil {
		return entities.Role{}, err
	}
	if r.ID == "" {
		return entities.Role{}, ErrRoleNotFound
	}
	return r, nil
}

func (u *RoleUseCase) ListByStore(ctx context.Context, storeID string) ([]entities.Role, error) {
	storeID = strings.TrimSpace(storeID)
	if storeID == "" {
		return nil, ErrInvalidStoreID
	}
	return u.repo.ListByStore(ctx, storeID)
}

func (u *RoleUseCase) Update(ctx context.Context, storeID, id string, in RoleUpdateInput) (entities.Role, error) {
	r, err := u.GetByID(ctx, storeID, id)
	if err != nil {
		return entities.Role{}, err
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return entities.Role{}, ErrInvalidRoleInput
		}
		r.Name = name
	}
	if in.CostPerHour != nil {
		if *in.CostPerHour < 0 {
			return entities.Role{}, ErrInvalidRoleInput
		}
		r.CostPerHour = *in.CostPerHour
	}
	if in.LinkedMachineName != nil {
		r.LinkedMachineName = strings.TrimSpace(*in.LinkedMachineName)
	}
	r.UpdatedAt = time.Now().UTC()

	return u.repo.Update(ctx, r)
}

func (u *RoleUseCase) Remove(ctx context.Context, storeID, id string) error {
	if _, err := u.GetByID(ctx, storeID, id); err != nil {
		return err
	}
	return u.repo.Delete(ctx, strings.TrimSpace(storeID), strings.TrimSpace(id))
}
