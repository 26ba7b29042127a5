package entities

import (
	"errors"
	"net/mail"
	"strings"
	"time"
	"unicode"
)

var (
	ErrClientNameRequired = errors.New("client name is required")
	ErrInvalidClientKind  = errors.New("invalid client kind")
	ErrInvalidEmail       = errors.New("invalid email")
	ErrInvalidCPF         = errors.New("invalid cpf")
	ErrInvalidCNPJ        = errors.New("invalid cnpj")
)

// ClientKind distinguishes a person (pessoa física) from a company (pessoa jurídica).
type ClientKind string

const (
	ClientKindPF ClientKind = "pf"
	ClientKindPJ ClientKind = "pj"
)

type Address struct {
	Street     string
	Number     string
	Complement string
	District   string
	City       string
	State      string
	ZipCode    string
}

type Client struct {
	ID          string
	Kind        ClientKind
	Name        string
	CompanyName string
	Email       string
	Phone       string
	CPF         string
	CNPJ        string
	Address     Address
	Notes       string
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Normalize trims text fields and strips input masks from document, phone and
// zip code fields.
func (c *Client) Normalize() {
	c.Name = strings.TrimSpace(c.Name)
	c.CompanyName = strings.TrimSpace(c.CompanyName)
	c.Email = strings.ToLower(strings.TrimSpace(c.Email))
	c.Phone = OnlyDigits(c.Phone)
	c.CPF = OnlyDigits(c.CPF)
	c.CNPJ = OnlyDigits(c.CNPJ)
	c.Address.ZipCode = OnlyDigits(c.Address.ZipCode)
	c.Address.State = strings.ToUpper(strings.TrimSpace(c.Address.State))
	if c.Kind == ClientKindPF {
		c.CNPJ = ""
		c.CompanyName = ""
	} else if c.Kind == ClientKindPJ {
		c.CPF = ""
	}
}

// Validate checks the fields required for the client kind.
func (c Client) Validate() error {
	if c.Name == "" {
		return ErrClientNameRequired
	}
	if c.Email != "" && !ValidEmail(c.Email) {
		return ErrInvalidEmail
	}
	switch c.Kind {
	case ClientKindPF:
		if c.CPF != "" && !ValidCPF(c.CPF) {
			return ErrInvalidCPF
		}
	case ClientKindPJ:
		if c.CNPJ != "" && !ValidCNPJ(c.CNPJ) {
			return ErrInvalidCNPJ
		}
	default:
		return ErrInvalidClientKind
	}
	return nil
}

func ValidEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email && strings.Contains(email, ".")
}

func OnlyDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
