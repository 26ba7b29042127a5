package request

import (
	"confeccao_os/internal/domain/entities"
	"strings"
)

type StageRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Order       int    `json:"order"`
	Active      *bool  `json:"active"`
}

// ToEntity defaults Active to true when omitted.
func (r StageRequest) ToEntity() entities.ProductionStage {
	return entities.ProductionStage{
		Name:        r.Name,
		Description: r.Description,
		Order:       r.Order,
		Active:      r.Active == nil || *r.Active,
	}
}

type CatalogItemRequest struct {
	Category    string `json:"category" binding:"required"`
	Value       string `json:"value" binding:"required"`
	Description string `json:"description"`
}

func (r CatalogItemRequest) ToEntity() entities.CatalogItem {
	return entities.CatalogItem{
		Category:    entities.CatalogCategory(strings.TrimSpace(r.Category)),
		Value:       r.Value,
		Description: r.Description,
	}
}

type ColorRequest struct {
	Name   string `json:"name" binding:"required"`
	Hex    string `json:"hex" binding:"required"`
	Active *bool  `json:"active"`
}

func (r ColorRequest) ToEntity() entities.Color {
	return entities.Color{
		Name:   r.Name,
		Hex:    r.Hex,
		Active: r.Active == nil || *r.Active,
	}
}
