package entities

// CostBreakdown is the fully itemized output of the pricing engine. It is
// derived entirely from the calculation request plus the store's cost
// parameters and is immutable once computed.
//
// Bucket semantics (kept exactly as the product defines them):
//   - LaborCost ("custo_mao_obra") merges direct labor
//     (horas_producao x custo_mao_obra_hora) with the store-level machine
//     cost (horas_producao x custo_maquina_hora).
//   - Machine and labor line items are itemized for display only; their
//     totals are NOT folded back into the top-level buckets, since the
//     store-level machine rate is a flat rate independent of which machines
//     were itemized.
//
// Monetary fields carry full precision; rounding to 2 decimals is a
// presentation concern of the consuming client.
type CostBreakdown struct {
	ServiceName     string  `json:"nome_servico"`
	Description     string  `json:"descricao,omitempty"`
	ProductionHours float64 `json:"horas_producao"`
	ProductQuantity int     `json:"quantidade_produto"`

	Materials []MaterialLineItem `json:"itens_material"`
	Machines  []MachineLineItem  `json:"itens_maquina,omitempty"`
	Labor     []LaborLineItem    `json:"itens_mao_obra,omitempty"`

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

	Parameters AppliedParameters `json:"parametros_aplicados"`
}

// AppliedParameters echoes the store parameters the engine actually used, so
// a persisted quote can be audited against the configuration of its time.
type AppliedParameters struct {
	LaborCostPerHour       float64 `json:"custo_mao_obra_hora"`
	MachineCostPerHour     float64 `json:"custo_maquina_hora"`
	IndirectCostPerHour    float64 `json:"custo_indireto_hora"`
	MarginPercent          float64 `json:"margem_lucro"`
	TaxPercent             float64 `json:"impostos"`
	MonthlyProductiveHours int     `json:"horas_produtivas_mes"`
}

// MaterialLineItem is one resolved material line, in request order.
type MaterialLineItem struct {
	MaterialID    string  `json:"insumo_id"`
	Name          string  `json:"nome"`
	Quantity      float64 `json:"quantidade"`
	UnitCost      float64 `json:"custo_unitario"`
	LineTotal     float64 `json:"custo_total"`
	UnitOfMeasure string  `json:"unidade_medida"`
}

// MachineLineItem is one resolved machine-usage line (display only).
type MachineLineItem struct {
	MachineID   string  `json:"maquina_id"`
	Name        string  `json:"nome"`
	Type        string  `json:"tipo"`
	HoursUsed   float64 `json:"horas_utilizadas"`
	CostPerHour float64 `json:"custo_por_hora"`
	LineTotal   float64 `json:"custo_total"`
}

// LaborLineItem is one resolved labor-usage line (display only).
type LaborLineItem struct {
	RoleID            string  `json:"funcao_id"`
	Name              string  `json:"nome"`
	HoursWorked       float64 `json:"horas_trabalhadas"`
	CostPerHour       float64 `json:"custo_por_hora"`
	LineTotal         float64 `json:"custo_total"`
	LinkedMachineName string  `json:"maquina_vinculada,omitempty"`
}
