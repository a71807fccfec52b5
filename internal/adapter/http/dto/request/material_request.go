package request

import "comunikapp/internal/usecase"

type MaterialRequest struct {
	Name          string  `json:"nome" binding:"required"`
	UnitCost      float64 `json:"custo_unitario"`
	UnitOfMeasure string  `json:"unidade_medida"`
}

func (r MaterialRequest) ToInput() usecase.MaterialInput {
	return usecase.MaterialInput{
		Name:          r.Name,
		UnitCost:      r.UnitCost,
		UnitOfMeasure: r.UnitOfMeasure,
	}
}

type MaterialUpdateRequest struct {
	Name          *string  `json:"nome"`
	UnitCost      *float64 `json:"custo_unitario"`
	UnitOfMeasure *string  `json:"unidade_medida"`
}

func (r MaterialUpdateRequest) ToUpdateInput() usecase.MaterialUpdateInput {
	return usecase.MaterialUpdateInput{
		Name:          r.Name,
		UnitCost:      r.UnitCost,
		UnitOfMeasure: r.UnitOfMeasure,
	}
}
