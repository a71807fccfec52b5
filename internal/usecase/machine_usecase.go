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
	ErrMachineNotFound     = errors.New("machine not found")
	ErrInvalidMachineInput = errors.New("invalid machine input")
)

type MachineInput struct {
	Name        string
	Type        string
	CostPerHour float64
}

type MachineUpdateInput struct {
	Name        *string
	Type        *string
	CostPerHour *float64
}

type IMachineUseCase interface {
	Create(ctx context.Context, storeID string, in MachineInput) (entities.Machine, error)
	GetByID(ctx context.Context, storeID, id string) (entities.Machine, error)
	ListByStore(ctx context.Context, storeID string) ([]entities.Machine, error)
	Update(ctx context.Context, storeID, id string, in MachineUpdateInput) (entities.Machine, error)
	Remove(ctx context.Context, storeID, id string) error
}

type MachineUseCase struct {
	repo interfaces.IMachineRepository
}

var _ IMachineUseCase = (*MachineUseCase)(nil)

func NewMachineUseCase(repo interfaces.IMachineRepository) *MachineUseCase {
	return &MachineUseCase{repo: repo}
}

func (u *MachineUseCase) Create(ctx context.Context, storeID string, in MachineInput) (entities.Machine, error) {
	storeID = strings.TrimSpace(storeID)
	if storeID == "" {
		return entities.Machine{}, ErrInvalidStoreID
	}
	name := strings.TrimSpace(in.Name)
	if name == "" || in.CostPerHour < 0 {
		return entities.Machine{}, ErrInvalidMachineInput
	}

	now := time.Now().UTC()
	return u.repo.Create(ctx, entities.Machine{
		ID:          uuid.NewString(),
		StoreID:     storeID,
		Name:        name,
		Type:        strings.TrimSpace(in.Type),
		CostPerHour: in.CostPerHour,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
}

func (u *MachineUseCase) GetByID(ctx context.Context, storeID, id string) (entities.Machine, error) {
	m, err := u.repo.GetByID(ctx, strings.TrimSpace(storeID), strings.TrimSpace(id))
	if err != nil {
		return entities.Machine{}, err
	}
	if m.ID == "" {
		return entities.Machine{}, ErrMachineNotFound
	}
	return m, nil
}

func (u *MachineUseCase) ListByStore(ctx context.Context, storeID string) ([]entities.Machine, error) {
	storeID = strings.TrimSpace(storeID)
	if storeID == "" {
		return nil, ErrInvalidStoreID
	}
	return u.repo.ListByStore(ctx, storeID)
}

func (u *MachineUseCase) Update(ctx context.Context, storeID, id string, in MachineUpdateInput) (entities.Machine, error) {
	m, err := u.GetByID(ctx, storeID, id)
	if err != nil {
		return entities.Machine{}, err
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return entities.Machine{}, ErrInvalidMachineInput
		}
		m.Name = name
	}
	if in.Type != nil {
		m.Type = strings.TrimSpace(*in.Type)
	}
	if in.CostPerHour != nil {
		if *in.CostPerHour < 0 {
			return entities.Machine{}, ErrInvalidMachineInput
		}
		m.CostPerHour = *in.CostPerHour
	}
	m.UpdatedAt = time.Now().UTC()

	return u.repo.Update(ctx, m)
}

func (u *MachineUseCase) Remove(ctx context.Context, storeID, id string) error {
	if _, err := u.GetByID(ctx, storeID, id); err != nil {
		return err
	}
	return u.repo.Delete(ctx, strings.TrimSpace(storeID), strings.TrimSpace(id))
}
