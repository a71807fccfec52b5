package entities

import "time"

// DefaultMonthlyProductiveHours is assumed when a store never configured its
// productive capacity (2 shifts x 8h x 22 working days).
const DefaultMonthlyProductiveHours = 352

// StoreSettings holds the per-store (tenant) cost parameters consumed by the
// pricing engine.
//
// LaborCostPerHour and IndirectMonthlyCosts are pointers on purpose: a store
// that has not finished onboarding has them unset, and that is a
// configuration error for quoting — not a zero cost.
type StoreSettings struct {
	StoreID                string    `json:"loja_id"`
	LaborCostPerHour       *float64  `json:"custo_mao_obra_hora"`
	MachineCostPerHour     float64   `json:"custo_maquina_hora"`
	IndirectMonthlyCosts   *float64  `json:"custos_indiretos_mensais"`
	DefaultMarginPercent   float64   `json:"margem_lucro_padrao"`
	DefaultTaxPercent      float64   `json:"impostos_padrao"`
	MonthlyProductiveHours int       `json:"horas_produtivas_mes"`
	UpdatedAt              time.Time `json:"updated_at"`
}

// ProductiveHours returns the configured monthly productive hours, falling
// back to the default when unset.
func (s StoreSettings) ProductiveHours() int {
	if s.MonthlyProductiveHours > 0 {
		return s.MonthlyProductiveHours
	}
	return DefaultMonthlyProductiveHours
}

// ReadyForQuoting reports whether the mandatory cost parameters are present.
func (s StoreSettings) ReadyForQuoting() bool {
	return s.LaborCostPerHour != nil && s.IndirectMonthlyCosts != nil
}
