package request

import "comunikapp/internal/usecase"

type MachineRequest struct {
	Name        string  `json:"nome" binding:"required"`
	Type        string  `json:"tipo"`
	CostPerHour float64 `json:"custo_por_hora"`
}

func (r MachineRequest) ToInput() usecase.MachineInput {
	return usecase.MachineInput{
		Name:        r.Name,
		Type:        r.Type,
		CostPerHour: r.CostPerHour,
	}
}

type MachineUpdateRequest struct {
	Name        *string  `json:"nome"`
	Type        *string  `json:"tipo"`
	CostPerHour *float64 `json:"custo_por_hora"`
}

func (r MachineUpdateRequest) ToUpdateInput() usecase.MachineUpdateInput {
	return usecase.MachineUpdateInput{
		Name:        r.Name,
		Type:        r.Type,
		CostPerHour: r.CostPerHour,
	}
}
