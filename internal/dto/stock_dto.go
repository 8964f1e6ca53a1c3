package dto

import "github.com/shopspring/decimal"

// StockResponse is the derived piece ledger for one business day. Figures
// can be fractional (half-piece costs) and negative (deficit signal).
type StockResponse struct {
	Day             string          `json:"day"` // 2006-01-02
	SellablePieces  decimal.Decimal `json:"sellablePieces"`
	ByproductUnits  decimal.Decimal `json:"byproductUnits"`
	ProducedPieces  decimal.Decimal `json:"producedPieces"`
	ConsumedPieces  decimal.Decimal `json:"consumedPieces"`
	ConvertedPieces decimal.Decimal `json:"convertedPieces"`
}

// AdjustInventoryRequest overwrites an item's quantity after a physical
// recount. This is a correction, not a ledgered purchase.
type AdjustInventoryRequest struct {
	Quantity decimal.Decimal `json:"quantity" validate:"min=0"`
}
