package pricing

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
)

func dec(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v)
}

func decPtr(v float64) *decimal.Decimal {
	d := decimal.NewFromFloat(v)
	return &d
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func baseParams() Params {
	return Params{
		LaborCostPerHour:       dec(50),
		MachineCostPerHour:     dec(0),
		IndirectMonthlyCosts:   dec(3520),
		DefaultMarginPercent:   dec(100),
		DefaultTaxPercent:      dec(10),
		MonthlyProductiveHours: 352,
	}
}

func TestCalculate_IndirectRate(t *testing.T) {
	// 3520 / 352 = 10/hour; 2 production hours allocate 20.
	out := Calculate(baseParams(), Input{
		ServiceName:     "banner",
		ProductionHours: dec(2),
	})

	if out.Parameters.IndirectCostPerHour != 10 {
		t.Fatalf("expected indirect rate 10, got %v", out.Parameters.IndirectCostPerHour)
	}
	if out.IndirectCost != 20 {
		t.Fatalf("expected allocated indirect 20, got %v", out.IndirectCost)
	}
}

func TestCalculate_DefaultProductiveHours(t *testing.T) {
	params := baseParams()
	params.MonthlyProductiveHours = 0
	params.IndirectMonthlyCosts = dec(704)

	out := Calculate(params, Input{ServiceName: "adesivo", ProductionHours: dec(1)})

	if out.Parameters.MonthlyProductiveHours != 352 {
		t.Fatalf("expected default 352 productive hours, got %d", out.Parameters.MonthlyProductiveHours)
	}
	if out.Parameters.IndirectCostPerHour != 2 {
		t.Fatalf("expected indirect rate 2, got %v", out.Parameters.IndirectCostPerHour)
	}
}

func TestCalculate_ReferenceChain(t *testing.T) {
	// One material line {unitCost 5.00, quantity 3}, productionHours 1,
	// laborCostPerHour 50, machineCostPerHour 0, margin 100%, tax 10%.
	out := Calculate(baseParams(), Input{
		ServiceName:     "placa",
		ProductionHours: dec(1),
		Materials: []MaterialUsage{
			{MaterialID: "m-1", Name: "chapa ACM", UnitCost: dec(5), Quantity: dec(3), UnitOfMeasure: "m2"},
		},
	})

	if out.MaterialCost != 15 {
		t.Fatalf("material cost: expected 15, got %v", out.MaterialCost)
	}
	if out.LaborCost != 50 {
		t.Fatalf("labor bucket: expected 50, got %v", out.LaborCost)
	}
	if out.IndirectCost != 10 {
		t.Fatalf("indirect: expected 10, got %v", out.IndirectCost)
	}
	if out.TotalProductionCost != 75 {
		t.Fatalf("total production: expected 75, got %v", out.TotalProductionCost)
	}
	if out.SubtotalWithMargin != 150 {
		t.Fatalf("subtotal with margin: expected 150, got %v", out.SubtotalWithMargin)
	}
	if out.TaxValue != 15 {
		t.Fatalf("tax value: expected 15, got %v", out.TaxValue)
	}
	if out.FinalPrice != 165 {
		t.Fatalf("final price: expected 165, got %v", out.FinalPrice)
	}

	if len(out.Materials) != 1 {
		t.Fatalf("expected 1 itemized material, got %d", len(out.Materials))
	}
	item := out.Materials[0]
	if item.MaterialID != "m-1" || item.LineTotal != 15 || item.UnitOfMeasure != "m2" {
		t.Fatalf("unexpected material item: %+v", item)
	}
}

func TestCalculate_FinalPriceIdentity(t *testing.T) {
	// finalPrice == total x (1 + margin/100) x (1 + tax/100).
	params := baseParams()
	params.MachineCostPerHour = dec(12.5)
	params.DefaultMarginPercent = dec(37.5)
	params.DefaultTaxPercent = dec(8.25)

	out := Calculate(params, Input{
		ServiceName:     "fachada",
		ProductionHours: dec(3.5),
		Materials: []MaterialUsage{
			{MaterialID: "m-1", UnitCost: dec(19.99), Quantity: dec(2.25)},
			{MaterialID: "m-2", UnitCost: dec(0.07), Quantity: dec(150)},
		},
	})

	want := out.TotalProductionCost * (1 + 37.5/100) * (1 + 8.25/100)
	if !approx(out.FinalPrice, want) {
		t.Fatalf("expected final price ~%v, got %v", want, out.FinalPrice)
	}
}

func TestCalculate_MaterialCostCommutative(t *testing.T) {
	lines := []MaterialUsage{
		{MaterialID: "a", UnitCost: dec(1.1), Quantity: dec(3)},
		{MaterialID: "b", UnitCost: dec(2.37), Quantity: dec(7)},
		{MaterialID: "c", UnitCost: dec(0.05), Quantity: dec(41)},
	}
	reversed := []MaterialUsage{lines[2], lines[1], lines[0]}

	a := Calculate(baseParams(), Input{ServiceName: "s", ProductionHours: dec(1), Materials: lines})
	b := Calculate(baseParams(), Input{ServiceName: "s", ProductionHours: dec(1), Materials: reversed})

	if a.MaterialCost != b.MaterialCost {
		t.Fatalf("material cost depends on line order: %v vs %v", a.MaterialCost, b.MaterialCost)
	}
	// Itemization preserves each request's own order.
	if a.Materials[0].MaterialID != "a" || b.Materials[0].MaterialID != "c" {
		t.Fatalf("itemization order not preserved")
	}
}

func TestCalculate_Overrides(t *testing.T) {
	t.Run("omitted uses store defaults", func(t *testing.T) {
		out := Calculate(baseParams(), Input{ServiceName: "s", ProductionHours: dec(1)})
		if out.MarginPercent != 100 || out.TaxPercent != 10 {
			t.Fatalf("expected defaults 100/10, got %v/%v", out.MarginPercent, out.TaxPercent)
		}
	})

	t.Run("zero override is honored", func(t *testing.T) {
		out := Calculate(baseParams(), Input{
			ServiceName:           "s",
			ProductionHours:       dec(1),
			MarginOverridePercent: decPtr(0),
			TaxOverridePercent:    decPtr(0),
		})
		if out.MarginPercent != 0 || out.TaxPercent != 0 {
			t.Fatalf("zero overrides ignored: %v/%v", out.MarginPercent, out.TaxPercent)
		}
		if out.FinalPrice != out.TotalProductionCost {
			t.Fatalf("with 0 margin and 0 tax, final price must equal total production cost")
		}
		if out.MarginValue != 0 || out.TaxValue != 0 {
			t.Fatalf("expected zero margin/tax values, got %v/%v", out.MarginValue, out.TaxValue)
		}
	})

	t.Run("non-zero override replaces default", func(t *testing.T) {
		out := Calculate(baseParams(), Input{
			ServiceName:           "s",
			ProductionHours:       dec(1),
			MarginOverridePercent: decPtr(20),
			TaxOverridePercent:    decPtr(5),
		})
		if out.MarginPercent != 20 || out.TaxPercent != 5 {
			t.Fatalf("expected 20/5, got %v/%v", out.MarginPercent, out.TaxPercent)
		}
	})
}

func TestCalculate_DisplayOnlyLines(t *testing.T) {
	// Machine and labor line items are itemized but never folded into the
	// top-level buckets: the labor bucket uses store-level rates only.
	params := baseParams()
	params.MachineCostPerHour = dec(30)

	out := Calculate(params, Input{
		ServiceName:     "letra caixa",
		ProductionHours: dec(2),
		Machines: []MachineUsage{
			{MachineID: "mq-1", Name: "Router CNC", Type: "router", CostPerHour: dec(80), HoursUsed: dec(1.5)},
		},
		Labor: []LaborUsage{
			{RoleID: "f-1", Name: "Impressor", CostPerHour: dec(25), HoursWorked: dec(4), LinkedMachineName: "Router CNC"},
		},
	})

	// 2h x (50 labor + 30 store machine rate) = 160, regardless of lines.
	if out.LaborCost != 160 {
		t.Fatalf("expected merged labor bucket 160, got %v", out.LaborCost)
	}
	if len(out.Machines) != 1 || out.Machines[0].LineTotal != 120 {
		t.Fatalf("unexpected machine itemization: %+v", out.Machines)
	}
	if len(out.Labor) != 1 || out.Labor[0].LineTotal != 100 {
		t.Fatalf("unexpected labor itemization: %+v", out.Labor)
	}
	if out.Labor[0].LinkedMachineName != "Router CNC" {
		t.Fatalf("linked machine name lost")
	}
}

func TestCalculate_EmptyMaterialListIsZeroCost(t *testing.T) {
	out := Calculate(baseParams(), Input{ServiceName: "arte digital", ProductionHours: dec(1)})
	if out.MaterialCost != 0 {
		t.Fatalf("expected zero material cost, got %v", out.MaterialCost)
	}
	if len(out.Materials) != 0 {
		t.Fatalf("expected empty itemization")
	}
}

func TestCalculate_NoMidCalculationRounding(t *testing.T) {
	// 1/3-ish quantities must not be rounded before the percentage chain.
	params := baseParams()
	params.DefaultMarginPercent = dec(33.33)
	params.DefaultTaxPercent = dec(7.77)

	out := Calculate(params, Input{
		ServiceName:     "s",
		ProductionHours: dec(0.333333),
		Materials: []MaterialUsage{
			{MaterialID: "m", UnitCost: dec(0.333333), Quantity: dec(3)},
		},
	})

	want := out.TotalProductionCost * 1.3333 * 1.0777
	if !approx(out.FinalPrice, want) {
		t.Fatalf("precision lost mid-calculation: expected ~%v, got %v", want, out.FinalPrice)
	}
}

func TestCalculate_ProductQuantityDefaultsToOne(t *testing.T) {
	out := Calculate(baseParams(), Input{ServiceName: "s", ProductionHours: dec(1)})
	if out.ProductQuantity != 1 {
		t.Fatalf("expected default product quantity 1, got %d", out.ProductQuantity)
	}
}
