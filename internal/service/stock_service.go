package service

import (
	"context"
	"time"

	"github.com/luix3mo90/Deli-Bross-Manager/internal/model"
	"github.com/luix3mo90/Deli-Bross-Manager/internal/store"

	"github.com/shopspring/decimal"
)

// DerivedStock is the per-day replay result. There is no persisted counter:
// these figures are a pure function of (sales, stockLogs, expenses) at the
// moment of computation. Negative values are deficit signals and are NOT
// clamped, unlike inventory quantities.
type DerivedStock struct {
	SellablePieces  decimal.Decimal `json:"sellablePieces"`
	ByproductUnits  decimal.Decimal `json:"byproductUnits"`
	ProducedPieces  decimal.Decimal `json:"producedPieces"`
	ConsumedPieces  decimal.Decimal `json:"consumedPieces"`
	ConvertedPieces decimal.Decimal `json:"convertedPieces"`
}

// SameDay reports whether two timestamps fall on the same local calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// ComputeDerivedStock replays the day's events:
//
//	producedPieces  = Σ totalPieces over today's stock logs
//	consumedPieces  = Σ quantity × stockCostPerUnit over today's non-byproduct sale items
//	consumedCuts    = Σ quantity over today's byproduct sale items
//	convertedPieces = Σ pieces over today's conversion events
//	sellable        = produced − consumed − converted
//	byproduct       = converted × 3 − consumedCuts
//
// The day window is an explicit parameter so the reducer is testable on its
// own; callers pass time.Now() for "available today".
func ComputeDerivedStock(sales []model.Sale, logs []model.StockLog, expenses []model.Expense, day time.Time) DerivedStock {
	var ds DerivedStock

	for _, l := range logs {
		if SameDay(l.Timestamp, day) {
			ds.ProducedPieces = ds.ProducedPieces.Add(l.TotalPieces)
		}
	}

	consumedCuts := decimal.Zero
	for _, sale := range sales {
		if !SameDay(sale.Timestamp, day) {
			continue
		}
		for _, item := range sale.Items {
			if item.Byproduct() {
				consumedCuts = consumedCuts.Add(item.Quantity)
			} else {
				ds.ConsumedPieces = ds.ConsumedPieces.Add(item.Quantity.Mul(item.PieceCost()))
			}
		}
	}

	for _, e := range expenses {
		if !SameDay(e.Timestamp, day) {
			continue
		}
		if n := e.Pieces(); n > 0 {
			ds.ConvertedPieces = ds.ConvertedPieces.Add(decimal.NewFromInt(int64(n)))
		}
	}

	producedCuts := ds.ConvertedPieces.Mul(decimal.NewFromInt(model.CutsPerPiece))
	ds.SellablePieces = ds.ProducedPieces.Sub(ds.ConsumedPieces).Sub(ds.ConvertedPieces)
	ds.ByproductUnits = producedCuts.Sub(consumedCuts)
	return ds
}

// derivedFromState recomputes today's stock from a locked state. Shared by
// the stock service and the sale save path (byproduct deficit check).
func derivedFromState(st *store.State, day time.Time) DerivedStock {
	return ComputeDerivedStock(st.Sales, st.StockLogs, st.Expenses, day)
}

// StockService exposes the derived piece/byproduct ledger and the raw
// production log.
type StockService interface {
	Current(ctx context.Context) DerivedStock
	ForDay(ctx context.Context, day time.Time) DerivedStock
	ProductionLog(ctx context.Context) []model.StockLog
	LowInventory(ctx context.Context) []model.InventoryItem
}

type stockService struct {
	store *store.Store
}

func NewStockService(st *store.Store) StockService {
	return &stockService{store: st}
}

func (s *stockService) Current(ctx context.Context) DerivedStock {
	return s.ForDay(ctx, time.Now())
}

func (s *stockService) ForDay(_ context.Context, day time.Time) DerivedStock {
	var ds DerivedStock
	s.store.View(func(st *store.State) {
		ds = derivedFromState(st, day)
	})
	return ds
}

func (s *stockService) ProductionLog(_ context.Context) []model.StockLog {
	var logs []model.StockLog
	s.store.View(func(st *store.State) {
		logs = append([]model.StockLog(nil), st.StockLogs...)
	})
	return logs
}

// LowInventory lists items at or below their alert threshold.
func (s *stockService) LowInventory(_ context.Context) []model.InventoryItem {
	var low []model.InventoryItem
	s.store.View(func(st *store.State) {
		for _, it := range st.Inventory {
			if it.BelowThreshold() {
				low = append(low, it)
			}
		}
	})
	return low
}
