package model

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// Snapshot is the single importable/exportable state blob: the six ledger
// collections plus drafts. It is the only persistence shape the core owns.
type Snapshot struct {
	Sales      []Sale          `json:"sales"`
	Expenses   []Expense       `json:"expenses"`
	Products   []Product       `json:"products"`
	Inventory  []InventoryItem `json:"inventory"`
	StockLogs  []StockLog      `json:"stockLogs"`
	GlobalCash decimal.Decimal `json:"globalCash"`
	Drafts     []SaleDraft     `json:"drafts"`
	Version    string          `json:"version,omitempty"`
	ExportDate *time.Time      `json:"exportDate,omitempty"`
}

// SnapshotVersion is stamped on exports. Imports do not check it — there is
// no migration machinery, matching the original backup format.
const SnapshotVersion = "1.0"

var ErrInvalidSnapshot = errors.New("snapshot: sales and products must be present as lists")

// ValidateSnapshotJSON applies the import gate: only `sales` and `products`
// must be present as list-shaped fields. Everything else defaults to empty.
func ValidateSnapshotJSON(raw []byte) error {
	var probe struct {
		Sales    json.RawMessage `json:"sales"`
		Products json.RawMessage `json:"products"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return err
	}
	if !isJSONArray(probe.Sales) || !isJSONArray(probe.Products) {
		return ErrInvalidSnapshot
	}
	return nil
}

func isJSONArray(raw json.RawMessage) bool {
	for _, b := range raw {
		switch b {
		case ' ', '\t', '\n', '\r':
			continue
		case '[':
			return true
		default:
			return false
		}
	}
	return false
}
