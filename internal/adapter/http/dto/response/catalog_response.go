package response

import (
	"confeccao_os/internal/domain/entities"
	"time"
)

type StageResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Order       int       `json:"order"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
}

func FromStages(ss []entities.ProductionStage) []StageResponse {
	return mapAll[StageResponse](ss)
}

func FromStage(s entities.ProductionStage) StageResponse {
	return mapTo[StageResponse](s)
}

type CatalogItemResponse struct {
	ID          string    `json:"id"`
	Category    string    `json:"category"`
	Value       string    `json:"value"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func FromCatalogItem(i entities.CatalogItem) CatalogItemResponse {
	return mapTo[CatalogItemResponse](i)
}

func FromCatalogItems(is []entities.CatalogItem) []CatalogItemResponse {
	return mapAll[CatalogItemResponse](is)
}

type ColorResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Hex       string    `json:"hex"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

func FromColor(c entities.Color) ColorResponse {
	return mapTo[ColorResponse](c)
}

func FromColors(cs []entities.Color) []ColorResponse {
	return mapAll[ColorResponse](cs)
}
