package model

import "github.com/shopspring/decimal"

// CommandType identifies the structured intents the external natural-language
// interpreter can emit. The core never parses text itself.
type CommandType string

const (
	CommandSale       CommandType = "SALE"
	CommandExpense    CommandType = "EXPENSE"
	CommandAddStock   CommandType = "ADD_STOCK"
	CommandConvertCut CommandType = "CONVERT_CUT"
	CommandUnknown    CommandType = "UNKNOWN"
)

// ParsedCommandItem references a catalog product (and optional variant) by id.
type ParsedCommandItem struct {
	ProductID string          `json:"productId"`
	VariantID string          `json:"variantId,omitempty"`
	Quantity  decimal.Decimal `json:"quantity"`
}

// ParsedCommand is the structured intent consumed from the AI boundary.
type ParsedCommand struct {
	Type          CommandType         `json:"type"`
	Items         []ParsedCommandItem `json:"items,omitempty"`
	Discount      *decimal.Decimal    `json:"discount,omitempty"`
	Description   string              `json:"description,omitempty"`
	Amount        *decimal.Decimal    `json:"amount,omitempty"`
	Quantity      *decimal.Decimal    `json:"quantity,omitempty"`
	Delivered     bool                `json:"delivered,omitempty"`
	Paid          bool                `json:"paid,omitempty"`
	PaymentMethod *PaymentMethod      `json:"paymentMethod,omitempty"`
}
