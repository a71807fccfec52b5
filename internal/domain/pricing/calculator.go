// Package pricing implements the quote cost-allocation pipeline:
// direct material cost -> labor+machine cost -> allocated indirect overhead
// -> profit margin -> taxes.
//
// The package is pure: no lookups, no clock, no I/O. Resolving materials,
// machines and roles against the store's catalog happens in the quote
// usecase; this package only runs the arithmetic, on decimal values so that
// chained percentage operations never compound binary rounding error.
package pricing

import (
	"comunikapp/internal/domain/entities"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Params are the store-level cost parameters, already validated by the
// caller (labor and indirect costs present).
type Params struct {
	LaborCostPerHour       decimal.Decimal
	MachineCostPerHour     decimal.Decimal
	IndirectMonthlyCosts   decimal.Decimal
	DefaultMarginPercent   decimal.Decimal
	DefaultTaxPercent      decimal.Decimal
	MonthlyProductiveHours int
}

// MaterialUsage is a resolved material line: catalog data plus requested
// quantity.
type MaterialUsage struct {
	MaterialID    string
	Name          string
	UnitOfMeasure string
	UnitCost      decimal.Decimal
	Quantity      decimal.Decimal
}

// MachineUsage is a resolved machine line. Itemized for display only.
type MachineUsage struct {
	MachineID   string
	Name        string
	Type        string
	CostPerHour decimal.Decimal
	HoursUsed   decimal.Decimal
}

// LaborUsage is a resolved labor line. Itemized for display only.
type LaborUsage struct {
	RoleID            string
	Name              string
	LinkedMachineName string
	CostPerHour       decimal.Decimal
	HoursWorked       decimal.Decimal
}

// Input is a fully resolved calculation request.
//
// MarginOverridePercent and TaxOverridePercent are pointers because an
// override of exactly 0 is a valid override, distinct from "use the store
// default".
type Input struct {
	ServiceName           string
	Description           string
	ProductionHours       decimal.Decimal
	ProductQuantity       int
	Materials             []MaterialUsage
	Machines              []MachineUsage
	Labor                 []LaborUsage
	MarginOverridePercent *decimal.Decimal
	TaxOverridePercent    *decimal.Decimal
}

// Calculate runs the pipeline in its fixed order. Later steps consume
// earlier totals, never raw inputs:
//
//  1. indirect rate/hour = indirect monthly costs / productive hours
//  2. material cost = sum(unit cost x quantity), preserving input order
//  3. labor bucket = production hours x labor rate
//     + production hours x store machine rate (merged "custo_mao_obra")
//  4. allocated indirect = production hours x rate from step 1
//  5. total production cost = material + labor bucket + indirect
//  6. margin value = total x margin% / 100
//  7. subtotal = total + margin value
//  8. tax value = subtotal x tax% / 100
//  9. final price = subtotal + tax value
//
// All intermediate values keep full decimal precision; conversion to float64
// happens only at the output boundary.
func Calculate(params Params, in Input) entities.CostBreakdown {
	productiveHours := params.MonthlyProductiveHours
	if productiveHours <= 0 {
		productiveHours = entities.DefaultMonthlyProductiveHours
	}
	indirectRate := params.IndirectMonthlyCosts.Div(decimal.NewFromInt(int64(productiveHours)))

	materialCost := decimal.Zero
	materialItems := make([]entities.MaterialLineItem, 0, len(in.Materials))
	for _, m := range in.Materials {
		lineTotal := m.UnitCost.Mul(m.Quantity)
		materialCost = materialCost.Add(lineTotal)
		materialItems = append(materialItems, entities.MaterialLineItem{
			MaterialID:    m.MaterialID,
			Name:          m.Name,
			Quantity:      m.Quantity.InexactFloat64(),
			UnitCost:      m.UnitCost.InexactFloat64(),
			LineTotal:     lineTotal.InexactFloat64(),
			UnitOfMeasure: m.UnitOfMeasure,
		})
	}

	directLabor := in.ProductionHours.Mul(params.LaborCostPerHour)
	storeMachine := in.ProductionHours.Mul(params.MachineCostPerHour)
	laborBucket := directLabor.Add(storeMachine)

	indirectCost := in.ProductionHours.Mul(indirectRate)

	totalProduction := materialCost.Add(laborBucket).Add(indirectCost)

	margin := params.DefaultMarginPercent
	if in.MarginOverridePercent != nil {
		margin = *in.MarginOverridePercent
	}
	marginValue := totalProduction.Mul(margin).Div(hundred)
	subtotal := totalProduction.Add(marginValue)

	tax := params.DefaultTaxPercent
	if in.TaxOverridePercent != nil {
		tax = *in.TaxOverridePercent
	}
	taxValue := subtotal.Mul(tax).Div(hundred)
	finalPrice := subtotal.Add(taxValue)

	quantity := in.ProductQuantity
	if quantity <= 0 {
		quantity = 1
	}

	return entities.CostBreakdown{
		ServiceName:     in.ServiceName,
		Description:     in.Description,
		ProductionHours: in.ProductionHours.InexactFloat64(),
		ProductQuantity: quantity,

		Materials: materialItems,
		Machines:  machineItems(in.Machines),
		Labor:     laborItems(in.Labor),

		MaterialCost:        materialCost.InexactFloat64(),
		LaborCost:           laborBucket.InexactFloat64(),
		IndirectCost:        indirectCost.InexactFloat64(),
		TotalProductionCost: totalProduction.InexactFloat64(),
		MarginPercent:       margin.InexactFloat64(),
		MarginValue:         marginValue.InexactFloat64(),
		SubtotalWithMargin:  subtotal.InexactFloat64(),
		TaxPercent:          tax.InexactFloat64(),
		TaxValue:            taxValue.InexactFloat64(),
		FinalPrice:          finalPrice.InexactFloat64(),

		Parameters: entities.AppliedParameters{
			LaborCostPerHour:       params.LaborCostPerHour.InexactFloat64(),
			MachineCostPerHour:     params.MachineCostPerHour.InexactFloat64(),
			IndirectCostPerHour:    indirectRate.InexactFloat64(),
			MarginPercent:          margin.InexactFloat64(),
			TaxPercent:             tax.InexactFloat64(),
			MonthlyProductiveHours: productiveHours,
		},
	}
}

func machineItems(usages []MachineUsage) []entities.MachineLineItem {
	if len(usages) == 0 {
		return nil
	}
	items := make([]entities.MachineLineItem, 0, len(usages))
	for _, m := range usages {
		items = append(items, entities.MachineLineItem{
			MachineID:   m.MachineID,
			Name:        m.Name,
			Type:        m.Type,
			HoursUsed:   m.HoursUsed.InexactFloat64(),
			CostPerHour: m.CostPerHour.InexactFloat64(),
			LineTotal:   m.CostPerHour.Mul(m.HoursUsed).InexactFloat64(),
		})
	}
	return items
}

func laborItems(usages []LaborUsage) []entities.LaborLineItem {
	if len(usages) == 0 {
		return nil
	}
	items := make([]entities.LaborLineItem, 0, len(usages))
	for _, l := range usages {
		items = append(items, entities.LaborLineItem{
			RoleID:            l.RoleID,
			Name:              l.Name,
			HoursWorked:       l.HoursWorked.InexactFloat64(),
			CostPerHour:       l.CostPerHour.InexactFloat64(),
			LineTotal:         l.CostPerHour.Mul(l.HoursWorked).InexactFloat64(),
			LinkedMachineName: l.LinkedMachineName,
		})
	}
	return items
}
