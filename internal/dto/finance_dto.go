package dto

import (
	"github.com/luix3mo90/Deli-Bross-Manager/internal/model"

	"github.com/shopspring/decimal"
)

// InventoryPurchase references the stock item credited by an
// EXPENSE_INVENTORY transaction.
type InventoryPurchase struct {
	InventoryID string          `json:"inventoryId" validate:"required"`
	Quantity    decimal.Decimal `json:"quantity" validate:"required"`
}

// RecordTransactionRequest appends a financial ledger entry.
type RecordTransactionRequest struct {
	Description string                `json:"description" validate:"required"`
	Amount      decimal.Decimal       `json:"amount" validate:"min=0"`
	Type        model.TransactionType `json:"type" validate:"required,oneof=EXPENSE_OPERATIONAL EXPENSE_INVENTORY WITHDRAWAL DEPOSIT"`
	Inventory   *InventoryPurchase    `json:"inventory,omitempty"`
}

// ConvertRequest cuts whole sellable pieces into byproduct units.
type ConvertRequest struct {
	Pieces int `json:"pieces" validate:"required,gt=0"`
}

// FinanceSummaryResponse is the user-facing financial report for one day.
// Internal bookkeeping entries are excluded from every figure.
type FinanceSummaryResponse struct {
	Revenue       decimal.Decimal  `json:"revenue"`       // paid sales only
	TotalExpenses decimal.Decimal  `json:"totalExpenses"` // non-internal
	NetProfit     decimal.Decimal  `json:"netProfit"`
	CashBalance   decimal.Decimal  `json:"cashBalance"`
	SalesCount    int              `json:"salesCount"`
	PendingCount  int              `json:"pendingCount"`
	ByMethod      TreasuryByMethod `json:"byMethod"`
}

// TreasuryByMethod is the all-time accumulated treasury split by payment
// method. Expenses are assumed paid out of the physical cash drawer.
type TreasuryByMethod struct {
	Cash decimal.Decimal `json:"cash"`
	QR   decimal.Decimal `json:"qr"`
	Card decimal.Decimal `json:"card"`
}
