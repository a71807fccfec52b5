package request

import (
	"strings"

	"comunikapp/internal/usecase"
)

type MaterialLineRequest struct {
	MaterialID string  `json:"insumo_id" binding:"required"`
	Quantity   float64 `json:"quantidade" binding:"required"`
}

type MachineLineRequest struct {
	MachineID string  `json:"maquina_id" binding:"required"`
	HoursUsed float64 `json:"horas_utilizadas" binding:"required"`
}

type LaborLineRequest struct {
	RoleID      string  `json:"funcao_id" binding:"required"`
	HoursWorked float64 `json:"horas_trabalhadas" binding:"required"`
}

// QuoteRequest is the payload for both the dry-run calculation and the quote
// creation endpoints.
//
// margem_lucro and impostos are pointers so that an absent field falls back
// to the store defaults while an explicit 0 is honored as an override.
type QuoteRequest struct {
	ServiceName     string                `json:"nome_servico" binding:"required"`
	Description     string                `json:"descricao"`
	ClientID        string                `json:"cliente_id"`
	ProductionHours float64               `json:"horas_producao" binding:"required"`
	ProductQuantity int                   `json:"quantidade_produto"`
	Materials       []MaterialLineRequest `json:"itens_material"`
	Machines        []MachineLineRequest  `json:"itens_maquina"`
	Labor           []LaborLineRequest    `json:"itens_mao_obra"`
	MarginPercent   *float64              `json:"margem_lucro"`
	TaxPercent      *float64              `json:"impostos"`
}

func (r QuoteRequest) ToInput() usecase.QuoteInput {
	return usecase.QuoteInput{
		ServiceName:     strings.TrimSpace(r.ServiceName),
		Description:     r.Description,
		ClientID:        strings.TrimSpace(r.ClientID),
		ProductionHours: r.ProductionHours,
		ProductQuantity: r.ProductQuantity,
		Materials:       toMaterialLines(r.Materials),
		Machines:        toMachineLines(r.Machines),
		Labor:           toLaborLines(r.Labor),
		MarginPercent:   r.MarginPercent,
		TaxPercent:      r.TaxPercent,
	}
}

// QuoteUpdateRequest is a partial patch. Every field is a pointer (or a
// nilable slice) so the handler can tell "not sent" apart from "sent as
// zero/empty"; only present fields reach the use case.
type QuoteUpdateRequest struct {
	ServiceName     *string               `json:"nome_servico"`
	Description     *string               `json:"descricao"`
	ClientID        *string               `json:"cliente_id"`
	ProductionHours *float64              `json:"horas_producao"`
	ProductQuantity *int                  `json:"quantidade_produto"`
	Materials       []MaterialLineRequest `json:"itens_material"`
	Machines        []MachineLineRequest  `json:"itens_maquina"`
	Labor           []LaborLineRequest    `json:"itens_mao_obra"`
	MarginPercent   *float64              `json:"margem_lucro"`
	TaxPercent      *float64              `json:"impostos"`
}

func (r QuoteUpdateRequest) ToUpdateInput() usecase.QuoteUpdateInput {
	return usecase.QuoteUpdateInput{
		ServiceName:     r.ServiceName,
		Description:     r.Description,
		ClientID:        r.ClientID,
		ProductionHours: r.ProductionHours,
		ProductQuantity: r.ProductQuantity,
		Materials:       toMaterialLines(r.Materials),
		Machines:        toMachineLines(r.Machines),
		Labor:           toLaborLines(r.Labor),
		MarginPercent:   r.MarginPercent,
		TaxPercent:      r.TaxPercent,
	}
}

func toMaterialLines(in []MaterialLineRequest) []usecase.MaterialLineInput {
	if in == nil {
		return nil
	}
	out := make([]usecase.MaterialLineInput, 0, len(in))
	for _, l := range in {
		out = append(out, usecase.MaterialLineInput{
			MaterialID: strings.TrimSpace(l.MaterialID),
			Quantity:   l.Quantity,
		})
	}
	return out
}

func toMachineLines(in []MachineLineRequest) []usecase.MachineLineInput {
	if in == nil {
		return nil
	}
	out := make([]usecase.MachineLineInput, 0, len(in))
	for _, l := range in {
		out = append(out, usecase.MachineLineInput{
			MachineID: strings.TrimSpace(l.MachineID),
			HoursUsed: l.HoursUsed,
		})
	}
	return out
}

func toLaborLines(in []LaborLineRequest) []usecase.LaborLineInput {
	if in == nil {
		return nil
	}
	out := make([]usecase.LaborLineInput, 0, len(in))
	for _, l := range in {
		out = append(out, usecase.LaborLineInput{
			RoleID:      strings.TrimSpace(l.RoleID),
			HoursWorked: l.HoursWorked,
		})
	}
	return out
}
