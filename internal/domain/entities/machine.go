package entities

import "time"

// Machine is a production machine (printer, router, plotter) registered by a
// store. Its per-hour cost is used for quote itemization only; the engine's
// machine bucket uses the store-level rate from StoreSettings.
type Machine struct {
	ID          string    `json:"id"`
	StoreID     string    `json:"loja_id"`
	Name        string    `json:"nome"`
	Type        string    `json:"tipo"`
	CostPerHour float64   `json:"custo_por_hora"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
