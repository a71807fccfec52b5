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
	ErrMaterialNotFound     = errors.New("material not found")
	ErrInvalidMaterialInput = errors.New("invalid material input")
)

type MaterialInput struct {
	Name          string
	UnitCost      float64
	UnitOfMeasure string
}

type MaterialUpdateInput struct {
	Name          *string
	UnitCost      *float64
	UnitOfMeasure *string
}

type IMaterialUseCase interface {
	Create(ctx context.Context, storeID string, in MaterialInput) (entities.Material, error)
	GetByID(ctx context.Context, storeID, id string) (entities.Material, error)
	ListByStore(ctx context.Context, storeID string) ([]entities.Material, error)
	Update(ctx context.Context, storeID, id string, in MaterialUpdateInput) (entities.Material, error)
	Remove(ctx context.Context, storeID, id string) error
}

type MaterialUseCase struct {
	repo interfaces.IMaterialRepository
}

var _ IMaterialUseCase = (*MaterialUseCase)(nil)

func NewMaterialUseCase(repo interfaces.IMaterialRepository) *MaterialUseCase {
	return &MaterialUseCase{repo: repo}
}

func (u *MaterialUseCase) Create(ctx context.Context, storeID string, in MaterialInput) (entities.Material, error) {
	storeID = strings.TrimSpace(storeID)
	if storeID == "" {
		return entities.Material{}, ErrInvalidStoreID
	}
	name := strings.TrimSpace(in.Name)
	if name == "" || in.UnitCost < 0 {
		return entities.Material{}, ErrInvalidMaterialInput
	}

	now := time.Now().UTC()
	return u.repo.Create(ctx, entities.Material{
		ID:            uuid.NewString(),
		StoreID:       storeID,
		Name:          name,
		UnitCost:      in.UnitCost,
		UnitOfMeasure: strings.TrimSpace(in.UnitOfMeasure),
		CreatedAt:     now,
		UpdatedAt:     now,
	})
}

func (u *MaterialUseCase) GetByID(ctx context.Context, storeID, id string) (entities.Material, error) {
	m, err := u.repo.GetByID(ctx, strings.TrimSpace(storeID), strings.TrimSpace(id))
	if err != nil {
		return entities.Material{}, err
	}
	if m.ID == "" {
		return entities.Material{}, ErrMaterialNotFound
	}
	return m, nil
}

func (u *MaterialUseCase) ListByStore(ctx context.Context, storeID string) ([]entities.Material, error) {
	storeID = strings.TrimSpace(storeID)
	if storeID == "" {
		return nil, ErrInvalidStoreID
	}
	return u.repo.ListByStore(ctx, storeID)
}

func (u *MaterialUseCase) Update(ctx context.Context, storeID, id string, in MaterialUpdateInput) (entities.Material, error) {
	m, err := u.GetByID(ctx, storeID, id)
	if err != nil {
		return entities.Material{}, err
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return entities.Material{}, ErrInvalidMaterialInput
		}
		m.Name = name
	}
	if in.UnitCost != nil {
		if *in.UnitCost < 0 {
			return entities.Material{}, ErrInvalidMaterialInput
		}
		m.UnitCost = *in.UnitCost
	}
	if in.UnitOfMeasure != nil {
		m.UnitOfMeasure = strings.TrimSpace(*in.UnitOfMeasure)
	}
	m.UpdatedAt = time.Now().UTC()

	return u.repo.Update(ctx, m)
}

func (u *MaterialUseCase) Remove(ctx context.Context, storeID, id string) error {
	if _, err := u.GetByID(ctx, storeID, id); err != nil {
		return err
	}
	return u.repo.Delete(ctx, strings.TrimSpace(storeID), strings.TrimSpace(id))
}
