package model

import "github.com/shopspring/decimal"

// InventoryItem is a raw-material entry. Quantity never goes below zero:
// every deduction clamps at zero instead of rejecting the operation, so a
// shortage shows up as an exact zero rather than an error.
type InventoryItem struct {
	ID           string           `json:"id"`
	Name         string           `json:"name"`
	Category     string           `json:"category"` // Insumo | Bebida | Desechable | Salsa | Otro
	Quantity     decimal.Decimal  `json:"quantity"`
	Unit         string           `json:"unit"` // unid | kg | lt | gr | ml | paq
	MinThreshold decimal.Decimal  `json:"minThreshold"`
	CostPerUnit  *decimal.Decimal `json:"costPerUnit,omitempty"`
}

// BelowThreshold reports whether the item is at or under its alert level.
func (it *InventoryItem) BelowThreshold() bool {
	return it.Quantity.LessThanOrEqual(it.MinThreshold)
}

// ProductionOutput describes what a kitchen rule yields per production unit:
// either chicken batches destined for the piece ledger (StockLogChicken) or a
// direct inventory replenishment (InventoryID + Quantity).
type ProductionOutput struct {
	StockLogChicken decimal.Decimal `json:"stockLogChicken,omitempty"`
	InventoryID     string          `json:"inventoryId,omitempty"`
	Quantity        decimal.Decimal `json:"quantity,omitempty"`
}

// KitchenProductionRule is static configuration: a fixed raw-input recipe,
// one output kind, and a cooking duration. Rules are not persisted state.
type KitchenProductionRule struct {
	Name               string           `json:"name"`
	Outputs            ProductionOutput `json:"outputs"`
	Inputs             []RecipeItem     `json:"inputs"`
	CookingTimeMinutes int              `json:"cookingTimeMinutes"`
}
