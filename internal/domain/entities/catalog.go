package entities

import (
	"regexp"
	"strings"
	"time"
)

// CatalogCategory groups the free-form configuration lists used by order forms.
type CatalogCategory string

const (
	CatalogFabricQuality CatalogCategory = "qualidade_tecido"
	CatalogSleeveType    CatalogCategory = "tipo_manga"
	CatalogHemType       CatalogCategory = "tipo_barra"
	CatalogCollarType    CatalogCategory = "tipo_gola"
	CatalogFabricType    CatalogCategory = "tipo_tecido"
	CatalogSize          CatalogCategory = "tamanho"
)

var catalogCategories = []CatalogCategory{
	CatalogFabricQuality, CatalogSleeveType, CatalogHemType, CatalogCollarType, CatalogFabricType, CatalogSize,
}

func CatalogCategories() []CatalogCategory {
	out := make([]CatalogCategory, len(catalogCategories))
	copy(out, catalogCategories)
	return out
}

func (c CatalogCategory) Valid() bool {
	for _, known := range catalogCategories {
		if c == known {
			return true
		}
	}
	return false
}

// CatalogItem is one configuration row: a value inside a category.
type CatalogItem struct {
	ID          string
	Category    CatalogCategory
	Value       string
	Description string
	CreatedAt   time.Time
}

var hexColorRe = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

type Color struct {
	ID        string
	Name      string
	Hex       string
	Active    bool
	CreatedAt time.Time
}

func ValidHexColor(hex string) bool {
	return hexColorRe.MatchString(strings.TrimSpace(hex))
}
