package models

import (
	"time"

	"github.com/agendavip/booking-service/internal/domain"
)

// ClientResponse ответ с данными клиента
type ClientResponse struct {
	ID        int64   `json:"id"`
	NegocioID int64   `json:"negocioId"`
	Name      *string `json:"name,omitempty"`
	Phone     string  `json:"phone"`
	Email     *string `json:"email,omitempty"`
	Notes     *string `json:"notes,omitempty"`
	BirthDate *string `json:"birthDate,omitempty"` // "2000-01-31"

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ClientListResponse ответ со списком клиентов
type ClientListResponse struct {
	Clients []ClientResponse `json:"clients"`
}

// FromDomainClient конвертирует domain модель в DTO
func FromDomainClient(c *domain.Client) *ClientResponse {
	if c == nil {
		return nil
	}

	resp := &ClientResponse{
		ID:        c.ID,
		NegocioID: c.NegocioID,
		Name:      c.Name,
		Phone:     c.Phone,
		Email:     c.Email,
		Notes:     c.Notes,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}

	if c.BirthDate != nil {
		birthDate := c.BirthDate.Format(domain.DateFormat)
		resp.BirthDate = &birthDate
	}

	return resp
}

// FromDomainClientList конвертирует список domain моделей в DTO
func FromDomainClientList(clients []*domain.Client) *ClientListResponse {
	if clients == nil {
		return &ClientListResponse{
			Clients: []ClientResponse{},
		}
	}

	resp := &ClientListResponse{
		Clients: make([]ClientResponse, len(clients)),
	}

	for i, client := range clients {
		if clientResp := FromDomainClient(client); clientResp != nil {
			resp.Clients[i] = *clientResp
		}
	}

	return resp
}
