package request

import "comunikapp/internal/usecase"

type RoleRequest struct {
	Name              string  `json:"nome" binding:"required"`
	CostPerHour       float64 `json:"custo_por_hora"`
	LinkedMachineName string  `json:"maquina_vinculada"`
}

func (r RoleRequest) ToInput() usecase.RoleInput {
	return usecase.RoleInput{
		Name:              r.Name,
		CostPerHour:       r.CostPerHour,
		LinkedMachineName: r.LinkedMachineName,
	}
}

type RoleUpdateRequest struct {
	Name              *string  `json:"nome"`
	CostPerHour       *float64 `json:"custo_por_hora"`
	LinkedMachineName *string  `json:"maquina_vinculada"`
}

func (r RoleUpdateRequest) ToUpdateInput() usecase.RoleUpdateInput {
	return usecase.RoleUpdateInput{
		Name:              r.Name,
		CostPerHour:       r.CostPerHour,
		LinkedMachineName: r.LinkedMachineName,
	}
}
