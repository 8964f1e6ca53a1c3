package dto

import "time"

// SnapshotInfoResponse summarizes a persisted or imported snapshot without
// shipping the whole blob.
type SnapshotInfoResponse struct {
	Version    string     `json:"version"`
	ExportDate *time.Time `json:"exportDate,omitempty"`
	Sales      int        `json:"sales"`
	Expenses   int        `json:"expenses"`
	Products   int        `json:"products"`
	Inventory  int        `json:"inventory"`
	StockLogs  int        `json:"stockLogs"`
	Drafts     int        `json:"drafts"`
}
