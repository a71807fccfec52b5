package entities

import "time"

// Client is a customer of the store. Quotes may reference a client.
type Client struct {
	ID        string    `json:"id"`
	StoreID   string    `json:"loja_id"`
	Name      string    `json:"nome"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"telefone,omitempty"`
	Document  string    `json:"documento,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
