package model

import (
	"strings"

	"github.com/shopspring/decimal"
)

// PlateSize selects which disposable plate a takeaway order consumes.
type PlateSize string

const (
	PlateNone  PlateSize = "none"
	PlateSmall PlateSize = "small"
	PlateLarge PlateSize = "large"
)

// Reserved catalog identifiers. These ids are fixed by convention and shared
// with existing operator backups, so they are constants rather than config.
const (
	ByproductProductID = "e_corte"          // "Corte / Yapa" menu entry
	NapkinItemID       = "inv_servilletas"  // deducted 1 per unit sold
	PlateLargeItemID   = "inv_plato_grande" // takeaway, plateSize=large
	PlateSmallItemID   = "inv_plato_chico"  // takeaway, plateSize=small
)

// NapkinPackUnits is the unit-pack expansion applied when napkins are bought
// through an inventory expense: the operator enters packs, stock counts units.
const NapkinPackUnits = 50

// byproductKeywords flag a product name as a byproduct ("corte"/"yapa") when
// the catalog entry predates the structured IsByproduct field.
var byproductKeywords = []string{"corte", "yapa"}

// RecipeItem is one raw-material deduction applied per sold or produced unit.
type RecipeItem struct {
	InventoryID string          `json:"inventoryId"`
	Quantity    decimal.Decimal `json:"quantity"`
}

// ProductVariant is an alternate price/piece-cost pair for a product.
type ProductVariant struct {
	ID        string           `json:"id"`
	Name      string           `json:"name"`
	Price     decimal.Decimal  `json:"price"`
	StockCost *decimal.Decimal `json:"stockCost,omitempty"` // chicken pieces per unit
}

// SideOption is a named alternative recipe (e.g. "Solo Papa"). Sale items
// reference sides by NAME, not id — renaming a side orphans old sales, which
// then skip the side deduction.
type SideOption struct {
	ID     string       `json:"id"`
	Name   string       `json:"name"`
	Recipe []RecipeItem `json:"recipe,omitempty"`
}

// Product is a sellable menu entry. Immutable while a sale is being saved;
// edited only through the catalog endpoints.
type Product struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Price       decimal.Decimal  `json:"price"`
	Category    string           `json:"category"` // Comida | Bebida | Extra
	Subcategory string           `json:"subcategory,omitempty"`
	Variants    []ProductVariant `json:"variants,omitempty"`
	StockCost   *decimal.Decimal `json:"stockCost,omitempty"` // chicken pieces per unit
	Recipe      []RecipeItem     `json:"recipe,omitempty"`
	PlateSize   PlateSize        `json:"plateSize,omitempty"`
	SideOptions []SideOption     `json:"sideOptions,omitempty"`
	// IsByproduct marks "corte/yapa" entries structurally. Detection falls
	// back to the reserved id and name keywords for legacy catalogs.
	IsByproduct bool `json:"isByproduct,omitempty"`
}

// Byproduct reports whether the product sells byproduct units (cortes)
// instead of consuming chicken pieces.
func (p *Product) Byproduct() bool {
	return p.IsByproduct || IsByproductRef(p.ID, p.Name)
}

// FindVariant returns the variant with the given id, or nil.
func (p *Product) FindVariant(id string) *ProductVariant {
	for i := range p.Variants {
		if p.Variants[i].ID == id {
			return &p.Variants[i]
		}
	}
	return nil
}

// FindSideByName resolves a side option by display name.
func (p *Product) FindSideByName(name string) *SideOption {
	for i := range p.SideOptions {
		if p.SideOptions[i].Name == name {
			return &p.SideOptions[i]
		}
	}
	return nil
}

// IsByproductRef applies the legacy detection rule: reserved product id or a
// case-insensitive keyword match on the product name.
func IsByproductRef(productID, productName string) bool {
	if productID == ByproductProductID {
		return true
	}
	lower := strings.ToLower(productName)
	for _, kw := range byproductKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
