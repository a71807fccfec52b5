package request

import "comunikapp/internal/usecase"

// SettingsRequest is a partial upsert of the store cost parameters; absent
// fields keep their stored values.
type SettingsRequest struct {
	LaborCostPerHour       *float64 `json:"custo_mao_obra_hora"`
	MachineCostPerHour     *float64 `json:"custo_maquina_hora"`
	IndirectMonthlyCosts   *float64 `json:"custos_indiretos_mensais"`
	DefaultMarginPercent   *float64 `json:"margem_lucro_padrao"`
	DefaultTaxPercent      *float64 `json:"impostos_padrao"`
	MonthlyProductiveHours *int     `json:"horas_produtivas_mes"`
}

func (r SettingsRequest) ToInput() usecase.SettingsInput {
	return usecase.SettingsInput{
		LaborCostPerHour:       r.LaborCostPerHour,
		MachineCostPerHour:     r.MachineCostPerHour,
		IndirectMonthlyCosts:   r.IndirectMonthlyCosts,
		DefaultMarginPercent:   r.DefaultMarginPercent,
		DefaultTaxPercent:      r.DefaultTaxPercent,
		MonthlyProductiveHours: r.MonthlyProductiveHours,
	}
}
