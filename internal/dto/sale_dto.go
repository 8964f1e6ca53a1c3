package dto

import (
	"time"

	"github.com/luix3mo90/Deli-Bross-Manager/internal/model"

	"github.com/shopspring/decimal"
)

// SaleMeta carries the draft metadata that decides status and cash effects
// when a sale is first saved. For AI-originated sales the interpreter fills
// in paid/paymentMethod; manual sales leave it empty.
type SaleMeta struct {
	Discount      *decimal.Decimal     `json:"discount,omitempty"`
	Paid          bool                 `json:"paid,omitempty"`
	PaymentMethod *model.PaymentMethod `json:"paymentMethod,omitempty"`
	Delivered     bool                 `json:"delivered,omitempty"`
}

// SaveSaleRequest creates a new sale or edits an existing one in place.
// Zero-item sales are rejected here at the boundary; the service itself does
// not re-validate.
type SaveSaleRequest struct {
	Items          []model.SaleItem `json:"items" validate:"required,min=1"`
	OrderType      model.OrderType  `json:"orderType" validate:"required,oneof=Mesa 'Para Llevar'"`
	CustomerName   string           `json:"customerName"`
	ExistingSaleID string           `json:"existingSaleId,omitempty"`
	Meta           *SaleMeta        `json:"meta,omitempty"`
	CustomDate     *time.Time       `json:"customDate,omitempty"`
	Delivered      bool             `json:"delivered,omitempty"`
}

// ConfirmPaymentRequest finalizes a sale's money status.
type ConfirmPaymentRequest struct {
	Method   model.PaymentMethod `json:"method" validate:"required,oneof=QR Efectivo Tarjeta Pendiente"`
	Discount decimal.Decimal     `json:"discount" validate:"min=0"`
}

// SaleListResponse wraps a day-filtered sale listing.
type SaleListResponse struct {
	Sales []model.Sale `json:"sales"`
	Count int          `json:"count"`
}
