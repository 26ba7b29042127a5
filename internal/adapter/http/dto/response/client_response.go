package response

import (
	"confeccao_os/internal/domain/entities"
	"time"
)

type AddressResponse struct {
	Street     string `json:"street"`
	Number     string `json:"number"`
	Complement string `json:"complement"`
	District   string `json:"district"`
	City       string `json:"city"`
	State      string `json:"state"`
	ZipCode    string `json:"zip_code"`
}

type ClientResponse struct {
	ID          string          `json:"id"`
	Kind        string          `json:"kind"`
	Name        string          `json:"name"`
	CompanyName string          `json:"company_name,omitempty"`
	Email       string          `json:"email,omitempty"`
	Phone       string          `json:"phone,omitempty"`
	CPF         string          `json:"cpf,omitempty"`
	CNPJ        string          `json:"cnpj,omitempty"`
	Address     AddressResponse `json:"address"`
	Notes       string          `json:"notes,omitempty"`
	Active      bool            `json:"active"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

func FromClient(c entities.Client) ClientResponse {
	return mapTo[ClientResponse](c)
}

func FromClients(cs []entities.Client) []ClientResponse {
	return mapAll[ClientResponse](cs)
}
