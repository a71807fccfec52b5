package entities

import "time"

// Material is a supply (insumo) from the store's catalog: vinyl, ink,
// substrate, etc. Unit costs feed the material bucket of the pricing engine.
type Material struct {
	ID            string    `json:"id"`
	StoreID       string    `json:"loja_id"`
	Name          string    `json:"nome"`
	UnitCost      float64   `json:"custo_unitario"`
	UnitOfMeasure string    `json:"unidade_medida"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
