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
	ErrClientNotFound     = errors.New("client not found")
	ErrInvalidClientInput = errors.New("invalid client input")
)

type ClientInput struct {
	Name     string
	Email    string
	Phone    string
	Document string
}

type ClientUpdateInput struct {
	Name     *string
	Email    *string
	Phone    *string
	Document *string
}

type IClientUseCase interface {
	Create(ctx context.Context, storeID string, in ClientInput) (entities.Client, error)
	GetByID(ctx context.Context, storeID, id string) (entities.Client, error)
	ListByStore(ctx context.Context, storeID string) ([]entities.Client, error)
	Update(ctx context.Context, storeID, id string, in ClientUpdateInput) (entities.Client, error)
	Remove(ctx context.Context, storeID, id string) error
}

type ClientUseCase struct {
	repo interfaces.IClientRepository
}

var _ IClientUseCase = (*ClientUseCase)(nil)

func NewClientUseCase(repo interfaces.IClientRepository) *ClientUseCase {
	return &ClientUseCase{repo: repo}
}

func (u *ClientUseCase) Create(ctx context.Context, storeID string, in ClientInput) (entities.Client, error) {
	storeID = strings.TrimSpace(storeID)
	if storeID == "" {
		return entities.Client{}, ErrInvalidStoreID
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return entities.Client{}, ErrInvalidClientInput
	}

	now := time.Now().UTC()
	return u.repo.Create(ctx, entities.Client{
		ID:        uuid.NewString(),
		StoreID:   storeID,
		Name:      name,
		Email:     strings.TrimSpace(in.Email),
		Phone:     strings.TrimSpace(in.Phone),
		Document:  strings.TrimSpace(in.Document),
		CreatedAt: now,
		UpdatedAt: now,
	})
}

func (u *ClientUseCase) GetByID(ctx context.Context, storeID, id string) (entities.Client, error) {
	c, err := u.repo.GetByID(ctx, strings.TrimSpace(storeID), strings.TrimSpace(id))
	if err != nil {
		return entities.Client{}, err
	}
	if c.ID == "" {
		return entities.Client{}, ErrClientNotFound
	}
	return c, nil
}

func (u *ClientUseCase) ListByStore(ctx context.Context, storeID string) ([]entities.Client, error) {
	storeID = strings.TrimSpace(storeID)
	if storeID == "" {
		return nil, ErrInvalidStoreID
	}
	return u.repo.ListByStore(ctx, storeID)
}

func (u *ClientUseCase) Update(ctx context.Context, storeID, id string, in ClientUpdateInput) (entities.Client, error) {
	c, err := u.GetByID(ctx, storeID, id)
	if err != nil {
		return entities.Client{}, err
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return entities.Client{}, ErrInvalidClientInput
		}
		c.Name = name
	}
	if in.Email != nil {
		c.Email = strings.TrimSpace(*in.Email)
	}
	if in.Phone != nil {
		c.Phone = strings.TrimSpace(*in.Phone)
	}
	if in.Document != nil {
		c.Document = strings.TrimSpace(*in.Document)
	}
	c.UpdatedAt = time.Now().UTC()

	return u.repo.Update(ctx, c)
}

func (u *ClientUseCase) Remove(ctx context.Context, storeID, id string) error {
	if _, err := u.GetByID(ctx, storeID, id); err != nil {
		return err
	}
	return u.repo.Delete(ctx, strings.TrimSpace(storeID), strings.TrimSpace(id))
}
