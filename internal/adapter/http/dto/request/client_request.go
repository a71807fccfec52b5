package request

import "comunikapp/internal/usecase"

type ClientRequest struct {
	Name     string `json:"nome" binding:"required"`
	Email    string `json:"email"`
	Phone    string `json:"telefone"`
	Document string `json:"documento"`
}

func (r ClientRequest) ToInput() usecase.ClientInput {
	return usecase.ClientInput{
		Name:     r.Name,
		Email:    r.Email,
		Phone:    r.Phone,
		Document: r.Document,
	}
}

type ClientUpdateRequest struct {
	Name     *string `json:"nome"`
	Email    *string `json:"email"`
	Phone    *string `json:"telefone"`
	Document *string `json:"documento"`
}

func (r ClientUpdateRequest) ToUpdateInput() usecase.ClientUpdateInput {
	return usecase.ClientUpdateInput{
		Name:     r.Name,
		Email:    r.Email,
		Phone:    r.Phone,
		Document: r.Document,
	}
}
