package usecase

import (
	"context"
	"errors"
	"testing"

	"comunikapp/internal/domain/entities"
	mock_interfaces "comunikapp/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func intPtr(v int) *int { return &v }

func newSettingsUseCaseWithMocks(t *testing.T) (*SettingsUseCase, *mock_interfaces.MockISettingsRepository) {
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockISettingsRepository(ctrl)
	return NewSettingsUseCase(repo), repo
}

func TestSettingsUseCase_Get(t *testing.T) {
	t.Run("empty store id", func(t *testing.T) {
		uc, _ := newSettingsUseCaseWithMocks(t)
		_, err := uc.Get(context.Background(), " ")
		if !errors.Is(err, ErrInvalidStoreID) {
			t.Fatalf("expected ErrInvalidStoreID, got %v", err)
		}
	})

	t.Run("never configured", func(t *testing.T) {
		uc, repo := newSettingsUseCaseWithMocks(t)
		repo.EXPECT().GetByStoreID(gomock.Any(), testStoreID).Return(entities.StoreSettings{}, nil)

		_, err := uc.Get(context.Background(), testStoreID)
		if !errors.Is(err, ErrStoreNotFound) {
			t.Fatalf("expected ErrStoreNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		uc, repo := newSettingsUseCaseWithMocks(t)
		repo.EXPECT().GetByStoreID(gomock.Any(), testStoreID).Return(readySettings(), nil)

		s, err := uc.Get(context.Background(), testStoreID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.StoreID != testStoreID || *s.LaborCostPerHour != 50 {
			t.Fatalf("unexpected settings: %+v", s)
		}
	})
}

func TestSettingsUseCase_Save(t *testing.T) {
	t.Run("rejects negative values", func(t *testing.T) {
		uc, _ := newSettingsUseCaseWithMocks(t)
		cases := map[string]SettingsInput{
			"labor":    {LaborCostPerHour: floatPtr(-1)},
			"machine":  {MachineCostPerHour: floatPtr(-0.5)},
			"indirect": {IndirectMonthlyCosts: floatPtr(-100)},
			"margin":   {DefaultMarginPercent: floatPtr(-10)},
			"tax":      {DefaultTaxPercent: floatPtr(-1)},
			"hours":    {MonthlyProductiveHours: intPtr(0)},
		}
		for name, in := range cases {
			t.Run(name, func(t *testing.T) {
				if _, err := uc.Save(context.Background(), testStoreID, in); !errors.Is(err, ErrInvalidSettingsInput) {
					t.Fatalf("expected ErrInvalidSettingsInput, got %v", err)
				}
			})
		}
	})

	t.Run("first save creates the record", func(t *testing.T) {
		uc, repo := newSettingsUseCaseWithMocks(t)
		repo.EXPECT().GetByStoreID(gomock.Any(), testStoreID).Return(entities.StoreSettings{}, nil)
		repo.EXPECT().Put(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s entities.StoreSettings) (entities.StoreSettings, error) {
				if s.StoreID != testStoreID {
					t.Fatalf("expected store id to be set, got %+v", s)
				}
				if s.LaborCostPerHour == nil || *s.LaborCostPerHour != 45 {
					t.Fatalf("labor cost not applied: %+v", s)
				}
				if s.IndirectMonthlyCosts != nil {
					t.Fatalf("absent field must stay unset: %+v", s)
				}
				if s.UpdatedAt.IsZero() {
					t.Fatalf("expected UpdatedAt to be stamped")
				}
				return s, nil
			},
		)

		_, err := uc.Save(context.Background(), testStoreID, SettingsInput{LaborCostPerHour: floatPtr(45)})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("partial update keeps stored values", func(t *testing.T) {
		uc, repo := newSettingsUseCaseWithMocks(t)
		repo.EXPECT().GetByStoreID(gomock.Any(), testStoreID).Return(readySettings(), nil)
		repo.EXPECT().Put(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s entities.StoreSettings) (entities.StoreSettings, error) {
				if s.DefaultTaxPercent != 7 {
					t.Fatalf("tax not updated: %+v", s)
				}
				if *s.LaborCostPerHour != 50 || *s.IndirectMonthlyCosts != 3520 || s.DefaultMarginPercent != 100 {
					t.Fatalf("untouched fields must survive: %+v", s)
				}
				return s, nil
			},
		)

		_, err := uc.Save(context.Background(), testStoreID, SettingsInput{DefaultTaxPercent: floatPtr(7)})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("zero is a valid stored value", func(t *testing.T) {
		uc, repo := newSettingsUseCaseWithMocks(t)
		repo.EXPECT().GetByStoreID(gomock.Any(), testStoreID).Return(readySettings(), nil)
		repo.EXPECT().Put(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s entities.StoreSettings) (entities.StoreSettings, error) {
				if s.DefaultMarginPercent != 0 || s.MachineCostPerHour != 0 {
					t.Fatalf("explicit zeros must be stored: %+v", s)
				}
				return s, nil
			},
		)

		_, err := uc.Save(context.Background(), testStoreID, SettingsInput{
			DefaultMarginPercent: floatPtr(0),
			MachineCostPerHour:   floatPtr(0),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
