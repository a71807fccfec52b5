package entities

import "time"

// Role is a labor function (função) with an hourly cost, optionally linked to
// the machine its operator runs. Used for quote itemization.
type Role struct {
	ID                string    `json:"id"`
	StoreID           string    `json:"loja_id"`
	Name              string    `json:"nome"`
	CostPerHour       float64   `json:"custo_por_hora"`
	LinkedMachineName string    `json:"maquina_vinculada,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}
