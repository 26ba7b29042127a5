package request

import (
	"confeccao_os/internal/domain/entities"
	"strings"

	"github.com/jinzhu/copier"
)

type AddressRequest struct {
	Street     string `json:"street"`
	Number     string `json:"number"`
	Complement string `json:"complement"`
	District   string `json:"district"`
	City       string `json:"city"`
	State      string `json:"state"`
	ZipCode    string `json:"zip_code"`
}

// ClientRequest is the create/update payload for a client. Masked documents
// ("123.456.789-09") are accepted and normalized by the use case.
type ClientRequest struct {
	Kind        string         `json:"kind" binding:"required"`
	Name        string         `json:"name" binding:"required"`
	CompanyName string         `json:"company_name"`
	Email       string         `json:"email"`
	Phone       string         `json:"phone"`
	CPF         string         `json:"cpf"`
	CNPJ        string         `json:"cnpj"`
	Address     AddressRequest `json:"address"`
	Notes       string         `json:"notes"`
}

func (r ClientRequest) ToEntity() (entities.Client, error) {
	var c entities.Client
	if err := copier.Copy(&c, &r); err != nil {
		return entities.Client{}, err
	}
	c.Kind = entities.ClientKind(strings.ToLower(strings.TrimSpace(r.Kind)))
	return c, nil
}
