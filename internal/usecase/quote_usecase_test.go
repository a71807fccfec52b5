package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"
	"testing"
	"time"

	"comunikapp/internal/domain/entities"
	mock_interfaces "comunikapp/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

const testStoreID = "store-1"

func floatPtr(v float64) *float64 { return &v }

func readySettings() entities.StoreSettings {
	return entities.StoreSettings{
		StoreID:                testStoreID,
		LaborCostPerHour:       floatPtr(50),
		MachineCostPerHour:     0,
		IndirectMonthlyCosts:   floatPtr(3520),
		DefaultMarginPercent:   100,
		DefaultTaxPercent:      10,
		MonthlyProductiveHours: 352,
	}
}

type quoteMocks struct {
	quotes    *mock_interfaces.MockIQuoteRepository
	settings  *mock_interfaces.MockISettingsRepository
	materials *mock_interfaces.MockIMaterialRepository
	machines  *mock_interfaces.MockIMachineRepository
	roles     *mock_interfaces.MockIRoleRepository
}

func newQuoteUseCaseWithMocks(t *testing.T) (*QuoteUseCase, quoteMocks) {
	ctrl := gomock.NewController(t)
	m := quoteMocks{
		quotes:    mock_interfaces.NewMockIQuoteRepository(ctrl),
		settings:  mock_interfaces.NewMockISettingsRepository(ctrl),
		materials: mock_interfaces.NewMockIMaterialRepository(ctrl),
		machines:  mock_interfaces.NewMockIMachineRepository(ctrl),
		roles:     mock_interfaces.NewMockIRoleRepository(ctrl),
	}
	return NewQuoteUseCase(m.quotes, m.settings, m.materials, m.machines, m.roles), m
}

func validInput() QuoteInput {
	return QuoteInput{
		ServiceName:     "Placa de fachada",
		ProductionHours: 1,
		Materials:       []MaterialLineInput{{MaterialID: "m-1", Quantity: 3}},
	}
}

func TestQuoteUseCase_Calculate_Validation(t *testing.T) {
	uc, _ := newQuoteUseCaseWithMocks(t)

	t.Run("empty store id", func(t *testing.T) {
		_, err := uc.Calculate(context.Background(), "   ", validInput())
		if !errors.Is(err, ErrInvalidStoreID) {
			t.Fatalf("expected ErrInvalidStoreID, got %v", err)
		}
	})

	cases := []struct {
		name string
		mut  func(in *QuoteInput)
	}{
		{"empty service name", func(in *QuoteInput) { in.ServiceName = "  " }},
		{"zero production hours", func(in *QuoteInput) { in.ProductionHours = 0 }},
		{"negative production hours", func(in *QuoteInput) { in.ProductionHours = -1 }},
		{"negative product quantity", func(in *QuoteInput) { in.ProductQuantity = -2 }},
		{"material line without id", func(in *QuoteInput) { in.Materials = []MaterialLineInput{{MaterialID: " ", Quantity: 1}} }},
		{"material line zero quantity", func(in *QuoteInput) { in.Materials = []MaterialLineInput{{MaterialID: "m-1", Quantity: 0}} }},
		{"machine line zero hours", func(in *QuoteInput) { in.Machines = []MachineLineInput{{MachineID: "mq-1", HoursUsed: 0}} }},
		{"labor line zero hours", func(in *QuoteInput) { in.Labor = []LaborLineInput{{RoleID: "f-1", HoursWorked: 0}} }},
		{"negative margin override", func(in *QuoteInput) { in.MarginPercent = floatPtr(-5) }},
		{"negative tax override", func(in *QuoteInput) { in.TaxPercent = floatPtr(-1) }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validInput()
			tc.mut(&in)
			_, err := uc.Calculate(context.Background(), testStoreID, in)
			if !errors.Is(err, ErrInvalidQuoteInput) {
				t.Fatalf("expected ErrInvalidQuoteInput, got %v", err)
			}
		})
	}
}

func TestQuoteUseCase_Calculate_Configuration(t *testing.T) {
	t.Run("settings repo error", func(t *testing.T) {
		uc, m := newQuoteUseCaseWithMocks(t)
		m.settings.EXPECT().GetByStoreID(gomock.Any(), testStoreID).Return(entities.StoreSettings{}, errors.New("db"))

		_, err := uc.Calculate(context.Background(), testStoreID, validInput())
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("store without settings record", func(t *testing.T) {
		uc, m := newQuoteUseCaseWithMocks(t)
		m.settings.EXPECT().GetByStoreID(gomock.Any(), testStoreID).Return(entities.StoreSettings{}, nil)

		_, err := uc.Calculate(context.Background(), testStoreID, validInput())
		if !errors.Is(err, ErrStoreNotFound) {
			t.Fatalf("expected ErrStoreNotFound, got %v", err)
		}
	})

	t.Run("labor cost unset", func(t *testing.T) {
		uc, m := newQuoteUseCaseWithMocks(t)
		s := readySettings()
		s.LaborCostPerHour = nil
		m.settings.EXPECT().GetByStoreID(gomock.Any(), testStoreID).Return(s, nil)

		_, err := uc.Calculate(context.Background(), testStoreID, validInput())
		if !errors.Is(err, ErrSettingsIncomplete) {
			t.Fatalf("expected ErrSettingsIncomplete, got %v", err)
		}
	})

	t.Run("indirect costs unset", func(t *testing.T) {
		uc, m := newQuoteUseCaseWithMocks(t)
		s := readySettings()
		s.IndirectMonthlyCosts = nil
		m.settings.EXPECT().GetByStoreID(gomock.Any(), testStoreID).Return(s, nil)

		_, err := uc.Calculate(context.Background(), testStoreID, validInput())
		if !errors.Is(err, ErrSettingsIncomplete) {
			t.Fatalf("expected ErrSettingsIncomplete, got %v", err)
		}
	})

	t.Run("mandatory fields set but zero is accepted", func(t *testing.T) {
		uc, m := newQuoteUseCaseWithMocks(t)
		s := readySettings()
		s.LaborCostPerHour = floatPtr(0)
		s.IndirectMonthlyCosts = floatPtr(0)
		m.settings.EXPECT().GetByStoreID(gomock.Any(), testStoreID).Return(s, nil)
		m.materials.EXPECT().GetByIDs(gomock.Any(), testStoreID, []string{"m-1"}).Return([]entities.Material{
			{ID: "m-1", StoreID: testStoreID, Name: "Lona", UnitCost: 5},
		}, nil)

		out, err := uc.Calculate(context.Background(), testStoreID, validInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.LaborCost != 0 || out.IndirectCost != 0 {
			t.Fatalf("explicit zeros must compute as zero, got %v/%v", out.LaborCost, out.IndirectCost)
		}
	})
}

func TestQuoteUseCase_Calculate_MaterialIsolation(t *testing.T) {
	t.Run("material missing or cross-store", func(t *testing.T) {
		uc, m := newQuoteUseCaseWithMocks(t)
		m.settings.EXPECT().GetByStoreID(gomock.Any(), testStoreID).Return(readySettings(), nil)
		// Two distinct references requested, only one resolves within the store.
		m.materials.EXPECT().GetByIDs(gomock.Any(), testStoreID, []string{"m-1", "m-2"}).Return([]entities.Material{
			{ID: "m-1", StoreID: testStoreID, Name: "Lona", UnitCost: 5},
		}, nil)

		in := validInput()
		in.Materials = []MaterialLineInput{
			{MaterialID: "m-1", Quantity: 1},
			{MaterialID: "m-2", Quantity: 2},
		}
		_, err := uc.Calculate(context.Background(), testStoreID, in)
		if !errors.Is(err, ErrUnknownMaterial) {
			t.Fatalf("expected ErrUnknownMaterial, got %v", err)
		}
	})

	t.Run("duplicate ids are resolved once", func(t *testing.T) {
		uc, m := newQuoteUseCaseWithMocks(t)
		m.settings.EXPECT().GetByStoreID(gomock.Any(), testStoreID).Return(readySettings(), nil)
		m.materials.EXPECT().GetByIDs(gomock.Any(), testStoreID, []string{"m-1"}).Return([]entities.Material{
			{ID: "m-1", StoreID: testStoreID, Name: "Lona", UnitCost: 2, UnitOfMeasure: "m2"},
		}, nil)

		in := validInput()
		in.Materials = []MaterialLineInput{
			{MaterialID: "m-1", Quantity: 1},
			{MaterialID: "m-1", Quantity: 2},
		}
		out, err := uc.Calculate(context.Background(), testStoreID, in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Materials) != 2 {
			t.Fatalf("every line must be itemized, got %d", len(out.Materials))
		}
		if out.MaterialCost != 6 {
			t.Fatalf("expected material cost 6, got %v", out.MaterialCost)
		}
	})
}

func TestQuoteUseCase_Calculate_ReferenceChain(t *testing.T) {
	uc, m := newQuoteUseCaseWithMocks(t)
	m.settings.EXPECT().GetByStoreID(gomock.Any(), testStoreID).Return(readySettings(), nil)
	m.materials.EXPECT().GetByIDs(gomock.Any(), testStoreID, []string{"m-1"}).Return([]entities.Material{
		{ID: "m-1", StoreID: testStoreID, Name: "Chapa ACM", UnitCost: 5, UnitOfMeasure: "m2"},
	}, nil)

	out, err := uc.Calculate(context.Background(), testStoreID, validInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// materialCost=15, labor bucket=50, indirect=3520/352x1=10, total=75,
	// margin 100% -> subtotal 150, tax 10% -> final 165.
	if out.MaterialCost != 15 || out.LaborCost != 50 || out.IndirectCost != 10 {
		t.Fatalf("unexpected buckets: %+v", out)
	}
	if out.TotalProductionCost != 75 || out.SubtotalWithMargin != 150 || out.FinalPrice != 165 {
		t.Fatalf("unexpected totals: %+v", out)
	}
	want := out.TotalProductionCost * (1 + out.MarginPercent/100) * (1 + out.TaxPercent/100)
	if math.Abs(out.FinalPrice-want) > 1e-6 {
		t.Fatalf("final price identity broken: %v vs %v", out.FinalPrice, want)
	}
	if out.Parameters.IndirectCostPerHour != 10 || out.Parameters.MonthlyProductiveHours != 352 {
		t.Fatalf("parameter echo wrong: %+v", out.Parameters)
	}
}

func TestQuoteUseCase_Calculate_Overrides(t *testing.T) {
	run := func(t *testing.T, margin, tax *float64) entities.CostBreakdown {
		uc, m := newQuoteUseCaseWithMocks(t)
		m.settings.EXPECT().GetByStoreID(gomock.Any(), testStoreID).Return(readySettings(), nil)

		in := validInput()
		in.Materials = nil
		in.MarginPercent = margin
		in.TaxPercent = tax
		out, err := uc.Calculate(context.Background(), testStoreID, in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		return out
	}

	t.Run("defaults when omitted", func(t *testing.T) {
		out := run(t, nil, nil)
		if out.MarginPercent != 100 || out.TaxPercent != 10 {
			t.Fatalf("expected store defaults, got %v/%v", out.MarginPercent, out.TaxPercent)
		}
	})

	t.Run("explicit zero overrides defaults", func(t *testing.T) {
		out := run(t, floatPtr(0), floatPtr(0))
		if out.MarginPercent != 0 || out.TaxPercent != 0 {
			t.Fatalf("zero overrides ignored: %v/%v", out.MarginPercent, out.TaxPercent)
		}
		if out.FinalPrice != out.TotalProductionCost {
			t.Fatalf("expected final == total with zero margin/tax")
		}
	})
}

func TestQuoteUseCase_Calculate_LenientMachineAndLaborLines(t *testing.T) {
	uc, m := newQuoteUseCaseWithMocks(t)
	m.settings.EXPECT().GetByStoreID(gomock.Any(), testStoreID).Return(readySettings(), nil)
	m.machines.EXPECT().GetByIDs(gomock.Any(), testStoreID, []string{"mq-1", "mq-ghost"}).Return([]entities.Machine{
		{ID: "mq-1", StoreID: testStoreID, Name: "Plotter", Type: "impressao", CostPerHour: 40},
	}, nil)
	m.roles.EXPECT().GetByIDs(gomock.Any(), testStoreID, []string{"f-ghost"}).Return(nil, nil)

	in := validInput()
	in.Materials = nil
	in.Machines = []MachineLineInput{
		{MachineID: "mq-1", HoursUsed: 2},
		{MachineID: "mq-ghost", HoursUsed: 1},
	}
	in.Labor = []LaborLineInput{{RoleID: "f-ghost", HoursWorked: 3}}

	out, err := uc.Calculate(context.Background(), testStoreID, in)
	if err != nil {
		t.Fatalf("unresolved machine/labor lines must not fail the calculation: %v", err)
	}
	if len(out.Machines) != 1 || out.Machines[0].MachineID != "mq-1" || out.Machines[0].LineTotal != 80 {
		t.Fatalf("unexpected machine itemization: %+v", out.Machines)
	}
	if len(out.Labor) != 0 {
		t.Fatalf("unresolved labor line must be dropped, got %+v", out.Labor)
	}
	// Bucket still uses store-level rates only.
	if out.LaborCost != 50 {
		t.Fatalf("machine lines leaked into labor bucket: %v", out.LaborCost)
	}
}

func TestQuoteUseCase_Create(t *testing.T) {
	yearMonth := time.Now().UTC().Format("200601")

	t.Run("success", func(t *testing.T) {
		uc, m := newQuoteUseCaseWithMocks(t)
		m.settings.EXPECT().GetByStoreID(gomock.Any(), testStoreID).Return(readySettings(), nil)
		m.materials.EXPECT().GetByIDs(gomock.Any(), testStoreID, []string{"m-1"}).Return([]entities.Material{
			{ID: "m-1", StoreID: testStoreID, Name: "Chapa ACM", UnitCost: 5, UnitOfMeasure: "m2"},
		}, nil)
		m.quotes.EXPECT().LastNumberForMonth(gomock.Any(), testStoreID, yearMonth).Return("", nil)
		m.quotes.EXPECT().NextSequence(gomock.Any(), testStoreID, yearMonth).Return(1, nil)
		m.quotes.EXPECT().CreateWithItems(gomock.Any(), gomock.AssignableToTypeOf(entities.Quote{})).DoAndReturn(
			func(_ context.Context, q entities.Quote) (entities.Quote, error) {
				if q.ID == "" || q.StoreID != testStoreID {
					t.Fatalf("unexpected quote identity: %+v", q)
				}
				if q.Number != yearMonth+"0001" {
					t.Fatalf("expected number %s0001, got %s", yearMonth, q.Number)
				}
				if q.FinalPrice != 165 || len(q.Items) != 1 {
					t.Fatalf("unexpected snapshot: %+v", q)
				}
				if q.Items[0].Seq != 1 || q.Items[0].MaterialID != "m-1" || q.Items[0].LineTotal != 15 {
					t.Fatalf("unexpected line item: %+v", q.Items[0])
				}
				if q.CreatedAt.IsZero() || q.UpdatedAt.IsZero() {
					t.Fatalf("expected timestamps")
				}
				return q, nil
			},
		)

		q, err := uc.Create(context.Background(), testStoreID, validInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.Number == "" {
			t.Fatalf("expected assigned number")
		}
	})

	t.Run("sequential numbers strictly increase", func(t *testing.T) {
		uc, m := newQuoteUseCaseWithMocks(t)
		in := validInput()
		in.Materials = nil

		m.settings.EXPECT().GetByStoreID(gomock.Any(), testStoreID).Return(readySettings(), nil).Times(2)
		gomock.InOrder(
			m.quotes.EXPECT().LastNumberForMonth(gomock.Any(), testStoreID, yearMonth).Return("", nil),
			m.quotes.EXPECT().NextSequence(gomock.Any(), testStoreID, yearMonth).Return(7, nil),
			m.quotes.EXPECT().CreateWithItems(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, q entities.Quote) (entities.Quote, error) { return q, nil }),
			m.quotes.EXPECT().LastNumberForMonth(gomock.Any(), testStoreID, yearMonth).Return(yearMonth+"0007", nil),
			m.quotes.EXPECT().NextSequence(gomock.Any(), testStoreID, yearMonth).Return(8, nil),
			m.quotes.EXPECT().CreateWithItems(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, q entities.Quote) (entities.Quote, error) { return q, nil }),
		)

		first, err := uc.Create(context.Background(), testStoreID, in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		second, err := uc.Create(context.Background(), testStoreID, in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if first.Number != yearMonth+"0007" || second.Number != yearMonth+"0008" {
			t.Fatalf("expected consecutive numbers, got %s then %s", first.Number, second.Number)
		}
	})

	t.Run("counter stuck behind existing data", func(t *testing.T) {
		uc, m := newQuoteUseCaseWithMocks(t)
		in := validInput()
		in.Materials = nil

		m.settings.EXPECT().GetByStoreID(gomock.Any(), testStoreID).Return(readySettings(), nil)
		m.quotes.EXPECT().LastNumberForMonth(gomock.Any(), testStoreID, yearMonth).Return(yearMonth+"0042", nil)
		m.quotes.EXPECT().NextSequence(gomock.Any(), testStoreID, yearMonth).Return(3, nil).Times(maxNumberAttempts)

		_, err := uc.Create(context.Background(), testStoreID, in)
		if !errors.Is(err, ErrQuoteConflict) {
			t.Fatalf("expected ErrQuoteConflict, got %v", err)
		}
	})

	t.Run("counter catches up past existing data", func(t *testing.T) {
		uc, m := newQuoteUseCaseWithMocks(t)
		in := validInput()
		in.Materials = nil

		m.settings.EXPECT().GetByStoreID(gomock.Any(), testStoreID).Return(readySettings(), nil)
		m.quotes.EXPECT().LastNumberForMonth(gomock.Any(), testStoreID, yearMonth).Return(yearMonth+"0042", nil)
		gomock.InOrder(
			m.quotes.EXPECT().NextSequence(gomock.Any(), testStoreID, yearMonth).Return(42, nil),
			m.quotes.EXPECT().NextSequence(gomock.Any(), testStoreID, yearMonth).Return(43, nil),
		)
		m.quotes.EXPECT().CreateWithItems(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, q entities.Quote) (entities.Quote, error) { return q, nil })

		q, err := uc.Create(context.Background(), testStoreID, in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.Number != yearMonth+"0043" {
			t.Fatalf("expected %s0043, got %s", yearMonth, q.Number)
		}
	})
}

func storedQuote() entities.Quote {
	return entities.Quote{
		ID:                  "q-1",
		StoreID:             testStoreID,
		Number:              "2026090001",
		ServiceName:         "Placa de fachada",
		ProductionHours:     1,
		ProductQuantity:     1,
		MaterialCost:        15,
		LaborCost:           50,
		IndirectCost:        10,
		TotalProductionCost: 75,
		MarginPercent:       100,
		MarginValue:         75,
		SubtotalWithMargin:  150,
		TaxPercent:          10,
		TaxValue:            15,
		FinalPrice:          165,
		Items: []entities.QuoteLineItem{
			{QuoteID: "q-1", Seq: 1, MaterialID: "m-1", Name: "Chapa ACM", Quantity: 3, UnitCost: 5, LineTotal: 15, UnitOfMeasure: "m2"},
		},
		CreatedAt: time.Now().UTC().Add(-time.Hour),
		UpdatedAt: time.Now().UTC().Add(-time.Hour),
	}
}

func TestQuoteUseCase_Update(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		uc, m := newQuoteUseCaseWithMocks(t)
		m.quotes.EXPECT().GetByID(gomock.Any(), "q-missing").Return(entities.Quote{}, nil)

		_, err := uc.Update(context.Background(), testStoreID, "q-missing", QuoteUpdateInput{})
		if !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})

	t.Run("other store's quote looks missing", func(t *testing.T) {
		uc, m := newQuoteUseCaseWithMocks(t)
		q := storedQuote()
		q.StoreID = "store-2"
		m.quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(q, nil)

		_, err := uc.Update(context.Background(), testStoreID, "q-1", QuoteUpdateInput{})
		if !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})

	t.Run("metadata-only patch leaves costs untouched", func(t *testing.T) {
		uc, m := newQuoteUseCaseWithMocks(t)
		stored := storedQuote()
		m.quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(stored, nil)
		m.quotes.EXPECT().SaveMetadata(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, q entities.Quote) (entities.Quote, error) {
				if q.ServiceName != "Fachada revisada" {
					t.Fatalf("expected renamed service, got %q", q.ServiceName)
				}
				if q.FinalPrice != stored.FinalPrice || len(q.Items) != len(stored.Items) {
					t.Fatalf("metadata patch must not touch the snapshot")
				}
				if !q.UpdatedAt.After(stored.UpdatedAt) {
					t.Fatalf("expected refreshed UpdatedAt")
				}
				return q, nil
			},
		)

		name := "Fachada revisada"
		_, err := uc.Update(context.Background(), testStoreID, "q-1", QuoteUpdateInput{ServiceName: &name})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("cost-affecting patch recomputes and replaces items", func(t *testing.T) {
		uc, m := newQuoteUseCaseWithMocks(t)
		m.quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(storedQuote(), nil)
		m.settings.EXPECT().GetByStoreID(gomock.Any(), testStoreID).Return(readySettings(), nil)
		m.materials.EXPECT().GetByIDs(gomock.Any(), testStoreID, []string{"m-2", "m-3"}).Return([]entities.Material{
			{ID: "m-2", StoreID: testStoreID, Name: "Vinil", UnitCost: 10, UnitOfMeasure: "m2"},
			{ID: "m-3", StoreID: testStoreID, Name: "Tinta", UnitCost: 1, UnitOfMeasure: "l"},
		}, nil)
		m.quotes.EXPECT().ReplaceWithItems(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, q entities.Quote) (entities.Quote, error) {
				if len(q.Items) != 2 {
					t.Fatalf("expected full item replacement with 2 items, got %d", len(q.Items))
				}
				if q.Items[0].MaterialID != "m-2" || q.Items[1].MaterialID != "m-3" {
					t.Fatalf("unexpected items: %+v", q.Items)
				}
				// 2x10 + 3x1 = 23 material; 2h x 50 labor; 2h x 10 indirect.
				if q.MaterialCost != 23 || q.LaborCost != 100 || q.IndirectCost != 20 {
					t.Fatalf("snapshot not recomputed: %+v", q)
				}
				if q.Number != "2026090001" {
					t.Fatalf("number must survive updates, got %s", q.Number)
				}
				return q, nil
			},
		)

		hours := 2.0
		_, err := uc.Update(context.Background(), testStoreID, "q-1", QuoteUpdateInput{
			ProductionHours: &hours,
			Materials: []MaterialLineInput{
				{MaterialID: "m-2", Quantity: 2},
				{MaterialID: "m-3", Quantity: 3},
			},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("zero margin override on update is honored", func(t *testing.T) {
		uc, m := newQuoteUseCaseWithMocks(t)
		m.quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(storedQuote(), nil)
		m.settings.EXPECT().GetByStoreID(gomock.Any(), testStoreID).Return(readySettings(), nil)
		m.materials.EXPECT().GetByIDs(gomock.Any(), testStoreID, []string{"m-1"}).Return([]entities.Material{
			{ID: "m-1", StoreID: testStoreID, Name: "Chapa ACM", UnitCost: 5, UnitOfMeasure: "m2"},
		}, nil)
		m.quotes.EXPECT().ReplaceWithItems(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, q entities.Quote) (entities.Quote, error) {
				if q.MarginPercent != 0 || q.MarginValue != 0 {
					t.Fatalf("zero margin override ignored: %+v", q)
				}
				return q, nil
			},
		)

		_, err := uc.Update(context.Background(), testStoreID, "q-1", QuoteUpdateInput{MarginPercent: floatPtr(0)})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestQuoteUseCase_GetListRemove(t *testing.T) {
	t.Run("get enforces ownership", func(t *testing.T) {
		uc, m := newQuoteUseCaseWithMocks(t)
		q := storedQuote()
		q.StoreID = "store-2"
		m.quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(q, nil)

		_, err := uc.GetByID(context.Background(), testStoreID, "q-1")
		if !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})

	t.Run("get success", func(t *testing.T) {
		uc, m := newQuoteUseCaseWithMocks(t)
		m.quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(storedQuote(), nil)

		q, err := uc.GetByID(context.Background(), testStoreID, " q-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.ID != "q-1" {
			t.Fatalf("unexpected quote: %+v", q)
		}
	})

	t.Run("list passthrough", func(t *testing.T) {
		uc, m := newQuoteUseCaseWithMocks(t)
		m.quotes.EXPECT().ListByStore(gomock.Any(), testStoreID).Return([]entities.Quote{storedQuote()}, nil)

		list, err := uc.ListByStore(context.Background(), testStoreID)
		if err != nil || len(list) != 1 {
			t.Fatalf("unexpected result: %v %v", list, err)
		}
	})

	t.Run("remove checks ownership first", func(t *testing.T) {
		uc, m := newQuoteUseCaseWithMocks(t)
		stored := storedQuote()
		m.quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(stored, nil)
		m.quotes.EXPECT().Delete(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, q entities.Quote) error {
				if q.ID != "q-1" {
					t.Fatalf("unexpected quote: %+v", q)
				}
				return nil
			},
		)

		if err := uc.Remove(context.Background(), testStoreID, "q-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("remove of foreign quote", func(t *testing.T) {
		uc, m := newQuoteUseCaseWithMocks(t)
		q := storedQuote()
		q.StoreID = "store-2"
		m.quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(q, nil)

		if err := uc.Remove(context.Background(), testStoreID, "q-1"); !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})
}

func TestParseQuoteSequence(t *testing.T) {
	cases := []struct {
		number string
		want   int
	}{
		{"", 0},
		{"2026090001", 1},
		{"2026090042", 42},
		{"2026099999", 9999},
		{"2025120042", 0},    // other month
		{"202609001", 0},     // malformed length
		{"202609abcd", 0},    // malformed digits
		{"20260900010", 0},   // too long
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("%q", tc.number), func(t *testing.T) {
			if got := parseQuoteSequence(tc.number, "202609"); got != tc.want {
				t.Fatalf("parseQuoteSequence(%q) = %d, want %d", tc.number, got, tc.want)
			}
		})
	}
}
