package entities

import "time"

// Quote (orçamento) is a priced proposal persisted with a snapshot of every
// cost component the engine computed for it.
//
// Lifecycle rule: the snapshot and the line items are never patched
// incrementally. Whenever a cost-affecting input changes, the whole
// breakdown is recomputed and all line items are replaced, so the persisted
// figures can never drift from what the engine would produce for the
// current inputs.
type Quote struct {
	ID              string  `json:"id"`
	StoreID         string  `json:"loja_id"`
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

	Items []QuoteLineItem `json:"itens"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// QuoteLineItem mirrors one resolved material line of the quote, with its
// computed per-line cost. Seq preserves the input order.
type QuoteLineItem struct {
	QuoteID       string  `json:"orcamento_id"`
	Seq           int     `json:"seq"`
	MaterialID    string  `json:"insumo_id"`
	Name          string  `json:"nome"`
	Quantity      float64 `json:"quantidade"`
	UnitCost      float64 `json:"custo_unitario"`
	LineTotal     float64 `json:"custo_total"`
	UnitOfMeasure string  `json:"unidade_medida"`
}

// ApplyBreakdown copies the engine output snapshot onto the quote, including
// the mirrored material line items.
func (q *Quote) ApplyBreakdown(b CostBreakdown) {
	q.ServiceName = b.ServiceName
	q.Description = b.Description
	q.ProductionHours = b.ProductionHours
	q.ProductQuantity = b.ProductQuantity
	q.MaterialCost = b.MaterialCost
	q.LaborCost = b.LaborCost
	q.IndirectCost = b.IndirectCost
	q.TotalProductionCost = b.TotalProductionCost
	q.MarginPercent = b.MarginPercent
	q.MarginValue = b.MarginValue
	q.SubtotalWithMargin = b.SubtotalWithMargin
	q.TaxPercent = b.TaxPercent
	q.TaxValue = b.TaxValue
	q.FinalPrice = b.FinalPrice

	items := make([]QuoteLineItem, 0, len(b.Materials))
	for i, m := range b.Materials {
		items = append(items, QuoteLineItem{
			QuoteID:       q.ID,
			Seq:           i + 1,
			MaterialID:    m.MaterialID,
			Name:          m.Name,
			Quantity:      m.Quantity,
			UnitCost:      m.UnitCost,
			LineTotal:     m.LineTotal,
			UnitOfMeasure: m.UnitOfMeasure,
		})
	}
	q.Items = items
}
