package service

import (
	"context"
	"testing"
	"time"

	"github.com/luix3mo90/Deli-Bross-Manager/internal/model"
	"github.com/luix3mo90/Deli-Bross-Manager/internal/store"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func saleWithItems(ts time.Time, items ...model.SaleItem) model.Sale {
	return model.Sale{
		ID:        "s-" + ts.Format("150405.000"),
		Timestamp: ts,
		OrderType: model.OrderDineIn,
		Items:     items,
		Status:    model.StatusPagado,
	}
}

func TestComputeDerivedStock_ProductionRoundTrip(t *testing.T) {
	now := time.Now()
	logs := []model.StockLog{
		{ID: "l1", Timestamp: now, QuantityChickens: dec(3), TotalPieces: dec(24)},
	}

	ds := ComputeDerivedStock(nil, logs, nil, now)

	assert.True(t, ds.ProducedPieces.Equal(dec(24)), "3 chickens yield 24 pieces")
	assert.True(t, ds.SellablePieces.Equal(dec(24)))
	assert.True(t, ds.ByproductUnits.IsZero())
}

func TestComputeDerivedStock_ConsumptionAndConversion(t *testing.T) {
	now := time.Now()
	logs := []model.StockLog{
		{ID: "l1", Timestamp: now, QuantityChickens: dec(2), TotalPieces: dec(16)},
	}
	sales := []model.Sale{
		// 2 × pollo doble consumes 2 × 2 = 4 pieces
		saleWithItems(now, item("c_pollo_doble", "Pollo Doble", 2, 34, decp(2))),
		// 5 cortes consumed
		saleWithItems(now, item("e_corte", "Corte / Yapa", 5, 0, nil)),
	}
	two := 2
	expenses := []model.Expense{
		{ID: "e1", Timestamp: now, Description: model.ConversionDescription(2), Amount: decimal.Zero, ConvertedPieces: &two},
	}

	ds := ComputeDerivedStock(sales, logs, expenses, now)

	assert.True(t, ds.ConsumedPieces.Equal(dec(4)))
	assert.True(t, ds.ConvertedPieces.Equal(dec(2)))
	// 16 produced − 4 consumed − 2 converted
	assert.True(t, ds.SellablePieces.Equal(dec(10)), "got %s", ds.SellablePieces)
	// 2 × 3 cuts − 5 consumed
	assert.True(t, ds.ByproductUnits.Equal(dec(1)), "got %s", ds.ByproductUnits)
}

func TestComputeDerivedStock_LegacyConversionDescription(t *testing.T) {
	now := time.Now()
	// Old backups carry the count only in the description
	expenses := []model.Expense{
		{ID: "e1", Timestamp: now, Description: "INTERNAL_CONVERT_4_PIECES", Amount: decimal.Zero},
	}

	ds := ComputeDerivedStock(nil, nil, expenses, now)

	assert.True(t, ds.ConvertedPieces.Equal(dec(4)))
	assert.True(t, ds.ByproductUnits.Equal(dec(12)))
}

func TestComputeDerivedStock_DayWindow(t *testing.T) {
	today := time.Now()
	yesterday := today.AddDate(0, 0, -1)
	logs := []model.StockLog{
		{ID: "l1", Timestamp: yesterday, QuantityChickens: dec(5), TotalPieces: dec(40)},
		{ID: "l2", Timestamp: today, QuantityChickens: dec(1), TotalPieces: dec(8)},
	}
	sales := []model.Sale{
		saleWithItems(yesterday, item("c_pollo_simple", "Pollo Simple", 4, 22, decp(1))),
	}

	ds := ComputeDerivedStock(sales, logs, nil, today)

	assert.True(t, ds.ProducedPieces.Equal(dec(8)), "yesterday's production is not today's stock")
	assert.True(t, ds.ConsumedPieces.IsZero())

	dsYesterday := ComputeDerivedStock(sales, logs, nil, yesterday)
	assert.True(t, dsYesterday.SellablePieces.Equal(dec(36)))
}

func TestComputeDerivedStock_NegativeNotClamped(t *testing.T) {
	now := time.Now()
	sales := []model.Sale{
		saleWithItems(now, item("c_pollo_doble", "Pollo Doble", 3, 34, decp(2))),
	}

	ds := ComputeDerivedStock(sales, nil, nil, now)

	assert.True(t, ds.SellablePieces.Equal(dec(-6)), "deficit must stay visible")
}

func TestSameDay(t *testing.T) {
	morning := time.Date(2026, 8, 30, 0, 1, 0, 0, time.Local)
	night := time.Date(2026, 8, 30, 23, 59, 0, 0, time.Local)
	next := time.Date(2026, 8, 31, 0, 0, 1, 0, time.Local)

	assert.True(t, SameDay(morning, night))
	assert.False(t, SameDay(night, next))
}

func TestStockService_LowInventory(t *testing.T) {
	st := newTestStore()
	st.Update(func(s *store.State) {
		require.True(t, s.DeductInventory("inv_sal", dec(999)))
	})

	svc := NewStockService(st)
	low := svc.LowInventory(context.Background())

	require.Len(t, low, 1)
	assert.Equal(t, "inv_sal", low[0].ID)
	assert.True(t, low[0].Quantity.IsZero(), "deduction clamps at zero")
}
