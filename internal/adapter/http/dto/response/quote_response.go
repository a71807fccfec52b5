package response

import (
	"time"

	"comunikapp/internal/domain/entities"
)

type QuoteItemResponse struct {
	Seq           int     `json:"seq"`
	MaterialID    string  `json:"insumo_id"`
	Name          string  `json:"nome"`
	Quantity      float64 `json:"quantidade"`
	UnitCost      float64 `json:"custo_unitario"`
	LineTotal     float64 `json:"custo_total"`
	UnitOfMeasure string  `json:"unidade_medida,omitempty"`
}

type QuoteResponse struct {
	ID              string  `json:"id"`
	Number          string  `json:"numero"`
	ServiceName     string  `json:"nome_servico"`
	Description     string  `json:"descricao,omitempty"`
	ClientID        string  `json:"cliente_id,omitempty"`
	ProductionHours float64 `json:"horas_producao"`
	ProductQuantity int     `json:"quantidade_produto"`

	MaterialCost        float64 `json:"custo_material"`
	LaborCost           float64 `json:"custo_mao_obra"`
	IndirectCost        float64 `json:"custo_indireto"`
	TotalProductionCost float64 `json:"custo_total_producao"`
	MarginPercent       float64 `json:"margem_lucro"`
	MarginValue         float64 `json:"valor_margem"`
	SubtotalWithMargin  float64 `json:"subtotal_com_margem"`
	TaxPercent          float64 `json:"impostos"`
	TaxValue            float64 `json:"valor_impostos"`
	FinalPrice          float64 `json:"preco_final"`

	Items []QuoteItemResponse `json:"itens"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromQuote(q entities.Quote) QuoteResponse {
	items := make([]QuoteItemResponse, 0, len(q.Items))
	for _, it := range q.Items {
		items = append(items, QuoteItemResponse{
			Seq:           it.Seq,
			MaterialID:    it.MaterialID,
			Name:          it.Name,
			Quantity:      it.Quantity,
			UnitCost:      it.UnitCost,
			LineTotal:     it.LineTotal,
			UnitOfMeasure: it.UnitOfMeasure,
		})
	}
	return QuoteResponse{
		ID:                  q.ID,
		Number:              q.Number,
		ServiceName:         q.ServiceName,
		Description:         q.Description,
		ClientID:            q.ClientID,
		ProductionHours:     q.ProductionHours,
		ProductQuantity:     q.ProductQuantity,
		MaterialCost:        q.MaterialCost,
		LaborCost:           q.LaborCost,
		IndirectCost:        q.IndirectCost,
		TotalProductionCost: q.TotalProductionCost,
		MarginPercent:       q.MarginPercent,
		MarginValue:         q.MarginValue,
		SubtotalWithMargin:  q.SubtotalWithMargin,
		TaxPercent:          q.TaxPercent,
		TaxValue:            q.TaxValue,
		FinalPrice:          q.FinalPrice,
		Items:               items,
		CreatedAt:           q.CreatedAt,
		UpdatedAt:           q.UpdatedAt,
	}
}

func FromQuotes(quotes []entities.Quote) []QuoteResponse {
	out := make([]QuoteResponse, 0, len(quotes))
	for _, q := range quotes {
		out = append(out, FromQuote(q))
	}
	return out
}
