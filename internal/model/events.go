package model

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType classifies a financial ledger entry.
type TransactionType string

const (
	TxOperational TransactionType = "EXPENSE_OPERATIONAL"
	TxInventory   TransactionType = "EXPENSE_INVENTORY"
	TxWithdrawal  TransactionType = "WITHDRAWAL"
	TxDeposit     TransactionType = "DEPOSIT"
)

// InternalPrefix marks zero-value ledger entries that encode non-financial
// events. They are replayed by the stock calculator and MUST be excluded
// from every user-facing financial figure.
const InternalPrefix = "INTERNAL_"

// PiecesPerChicken is the fixed cut of one whole chicken. Not configurable.
const PiecesPerChicken = 8

// CutsPerPiece is the fixed yield when a sellable piece is cut down into
// byproduct units (cortes/yapas).
const CutsPerPiece = 3

// legacyConvertRe parses piece counts out of conversion descriptions written
// before the structured ConvertedPieces field existed.
var legacyConvertRe = regexp.MustCompile(`INTERNAL_CONVERT_(\d+)`)

// Expense is an append-only financial event. Conversion events carry amount
// zero, the INTERNAL_CONVERT description, and a structured piece count.
type Expense struct {
	ID          string          `json:"id"`
	Timestamp   time.Time       `json:"timestamp"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Type        TransactionType `json:"type,omitempty"`
	// ConvertedPieces is set on conversion events. Older backups encode the
	// count only inside Description; see Pieces().
	ConvertedPieces *int `json:"convertedPieces,omitempty"`
}

// Internal reports whether the entry is a bookkeeping-only event that must
// not count toward expenses, profit, or cash reporting.
func (e *Expense) Internal() bool {
	return len(e.Description) >= len(InternalPrefix) && e.Description[:len(InternalPrefix)] == InternalPrefix
}

// Pieces returns the whole sellable units recorded by a conversion event,
// falling back to the legacy description encoding. Zero for non-conversions.
func (e *Expense) Pieces() int {
	if e.ConvertedPieces != nil {
		return *e.ConvertedPieces
	}
	if m := legacyConvertRe.FindStringSubmatch(e.Description); m != nil {
		n, _ := strconv.Atoi(m[1])
		return n
	}
	return 0
}

// ConversionDescription builds the reserved description for a conversion of
// n whole pieces. Kept byte-compatible with existing backups.
func ConversionDescription(pieces int) string {
	return fmt.Sprintf("INTERNAL_CONVERT_%d_PIECES", pieces)
}

// StockLog records one production run. Entries are append-only; totals are
// always derived by replaying them, never stored as a counter.
type StockLog struct {
	ID                   string          `json:"id"`
	Timestamp            time.Time       `json:"timestamp"`
	TargetCompletionTime *time.Time      `json:"targetCompletionTime,omitempty"`
	RuleName             string          `json:"ruleName,omitempty"`
	QuantityChickens     decimal.Decimal `json:"quantityChickens"`
	TotalPieces          decimal.Decimal `json:"totalPieces"` // QuantityChickens × 8
}
