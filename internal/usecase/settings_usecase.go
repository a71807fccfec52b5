package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"comunikapp/internal/domain/entities"
	"comunikapp/internal/usecase/interfaces"
)

var ErrInvalidSettingsInput = errors.New("invalid settings input")

// SettingsInput is a partial upsert of the store's cost parameters. Absent
// fields keep their stored value; labor and indirect costs stay unset until
// the store provides them, which is what gates quoting.
type SettingsInput struct {
	LaborCostPerHour       *float64
	MachineCostPerHour     *float64
	IndirectMonthlyCosts   *float64
	DefaultMarginPercent   *float64
	DefaultTaxPercent      *float64
	MonthlyProductiveHours *int
}

type ISettingsUseCase interface {
	Get(ctx context.Context, storeID string) (entities.StoreSettings, error)
	Save(ctx context.Context, storeID string, in SettingsInput) (entities.StoreSettings, error)
}

type SettingsUseCase struct {
	repo interfaces.ISettingsRepository
}

var _ ISettingsUseCase = (*SettingsUseCase)(nil)

func NewSettingsUseCase(repo interfaces.ISettingsRepository) *SettingsUseCase {
	return &SettingsUseCase{repo: repo}
}

func (u *SettingsUseCase) Get(ctx context.Context, storeID string) (entities.StoreSettings, error) {
	storeID = strings.TrimSpace(storeID)
	if storeID == "" {
		return entities.StoreSettings{}, ErrInvalidStoreID
	}
	s, err := u.repo.GetByStoreID(ctx, storeID)
	if err != nil {
		return entities.StoreSettings{}, err
	}
	if s.StoreID == "" {
		return entities.StoreSettings{}, ErrStoreNotFound
	}
	return s, nil
}

func (u *SettingsUseCase) Save(ctx context.Context, storeID string, in SettingsInput) (entities.StoreSettings, error) {
	storeID = strings.TrimSpace(storeID)
	if storeID == "" {
		return entities.StoreSettings{}, ErrInvalidStoreID
	}
	if err := validateSettingsInput(in); err != nil {
		return entities.StoreSettings{}, err
	}

	s, err := u.repo.GetByStoreID(ctx, storeID)
	if err != nil {
		return entities.StoreSettings{}, err
	}
	s.StoreID = storeID

	if in.LaborCostPerHour != nil {
		s.LaborCostPerHour = in.LaborCostPerHour
	}
	if in.MachineCostPerHour != nil {
		s.MachineCostPerHour = *in.MachineCostPerHour
	}
	if in.IndirectMonthlyCosts != nil {
		s.IndirectMonthlyCosts = in.IndirectMonthlyCosts
	}
	if in.DefaultMarginPercent != nil {
		s.DefaultMarginPercent = *in.DefaultMarginPercent
	}
	if in.DefaultTaxPercent != nil {
		s.DefaultTaxPercent = *in.DefaultTaxPercent
	}
	if in.MonthlyProductiveHours != nil {
		s.MonthlyProductiveHours = *in.MonthlyProductiveHours
	}
	s.UpdatedAt = time.Now().UTC()

	return u.repo.Put(ctx, s)
}

func validateSettingsInput(in SettingsInput) error {
	for _, v := range []*float64{
		in.LaborCostPerHour,
		in.MachineCostPerHour,
		in.IndirectMonthlyCosts,
		in.DefaultMarginPercent,
		in.DefaultTaxPercent,
	} {
		if v != nil && *v < 0 {
			return ErrInvalidSettingsInput
		}
	}
	if in.MonthlyProductiveHours != nil && *in.MonthlyProductiveHours <= 0 {
		return ErrInvalidSettingsInput
	}
	return nil
}
