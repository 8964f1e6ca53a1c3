package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod mirrors the values used by the storefront UI.
type PaymentMethod string

const (
	PaymentQR       PaymentMethod = "QR"
	PaymentCash     PaymentMethod = "Efectivo"
	PaymentCard     PaymentMethod = "Tarjeta"
	PaymentDeferred PaymentMethod = "Pendiente"
)

// SaleStatus: a sale is created Pendiente and becomes Pagado on confirmation.
// Pagado is terminal for money status; items and delivery stay editable.
type SaleStatus string

const (
	StatusPendiente SaleStatus = "Pendiente"
	StatusPagado    SaleStatus = "Pagado"
)

// OrderType drives the disposable-plate deduction (takeaway only).
type OrderType string

const (
	OrderDineIn   OrderType = "Mesa"
	OrderTakeaway OrderType = "Para Llevar"
)

// SaleItem snapshots the product at add-time so historical sales stay stable
// when the catalog changes later.
type SaleItem struct {
	ID               string           `json:"id"`
	ProductID        string           `json:"productId"`
	ProductName      string           `json:"productName"`
	VariantName      string           `json:"variantName,omitempty"`
	Quantity         decimal.Decimal  `json:"quantity"`
	UnitPrice        decimal.Decimal  `json:"unitPrice"`
	Total            decimal.Decimal  `json:"total"`
	StockCostPerUnit *decimal.Decimal `json:"stockCostPerUnit,omitempty"`
	SelectedSides    string           `json:"selectedSides,omitempty"` // side option NAME
	Customization    string           `json:"customization,omitempty"`
	IsByproduct      bool             `json:"isByproduct,omitempty"`
}

// Byproduct reports whether this line consumes byproduct units (cortes)
// rather than chicken pieces.
func (it *SaleItem) Byproduct() bool {
	return it.IsByproduct || IsByproductRef(it.ProductID, it.ProductName)
}

// PieceCost returns the snapshotted chicken-piece consumption per unit,
// zero when absent.
func (it *SaleItem) PieceCost() decimal.Decimal {
	if it.StockCostPerUnit == nil {
		return decimal.Zero
	}
	return *it.StockCostPerUnit
}

// Sale is one order, saved into the ledger once it leaves draft state.
type Sale struct {
	ID            string          `json:"id"`
	Timestamp     time.Time       `json:"timestamp"`
	CustomerName  string          `json:"customerName,omitempty"`
	OrderType     OrderType       `json:"orderType"`
	Items         []SaleItem      `json:"items"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	Discount      decimal.Decimal `json:"discount"`
	FinalTotal    decimal.Decimal `json:"finalTotal"` // always max(0, subtotal - discount)
	Status        SaleStatus      `json:"status"`
	PaymentMethod *PaymentMethod  `json:"paymentMethod"`
	Delivered     bool            `json:"delivered"`
}

// SaleDraft is an in-progress sale held outside the Sale collection until
// explicitly saved. Drafts carry the AI-command metadata that decides status
// and cash effects at save time.
type SaleDraft struct {
	Items          []SaleItem       `json:"items"`
	Discount       *decimal.Decimal `json:"discount,omitempty"`
	Delivered      bool             `json:"delivered,omitempty"`
	Paid           bool             `json:"paid,omitempty"`
	PaymentMethod  *PaymentMethod   `json:"paymentMethod,omitempty"`
	CustomerName   string           `json:"customerName,omitempty"`
	OrderType      OrderType        `json:"orderType,omitempty"`
	OriginalSaleID string           `json:"originalSaleId,omitempty"` // set when editing
	Timestamp      int64            `json:"timestamp,omitempty"`      // draft-bubble ordering
}
