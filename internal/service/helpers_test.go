package service

import (
	"github.com/luix3mo90/Deli-Bross-Manager/internal/model"
	"github.com/luix3mo90/Deli-Bross-Manager/internal/store"

	"github.com/shopspring/decimal"
)

// newTestStore seeds a store with the factory catalog and inventory.
func newTestStore() *store.Store {
	return store.New(model.DefaultSnapshot())
}

func dec(f float64) decimal.Decimal { return decimal.NewFromFloat(f) }

func decp(f float64) *decimal.Decimal {
	v := decimal.NewFromFloat(f)
	return &v
}

// item builds a sale line for a catalog product, snapshotting price fields
// the way BuildItems would.
func item(productID, name string, qty, price float64, pieceCost *decimal.Decimal) model.SaleItem {
	q := dec(qty)
	p := dec(price)
	return model.SaleItem{
		ID:               productID + "-line",
		ProductID:        productID,
		ProductName:      name,
		Quantity:         q,
		UnitPrice:        p,
		Total:            p.Mul(q),
		StockCostPerUnit: pieceCost,
	}
}

func inventoryQty(st *store.Store, id string) decimal.Decimal {
	var out decimal.Decimal
	st.View(func(s *store.State) {
		if it := s.InventoryItem(id); it != nil {
			out = it.Quantity
		}
	})
	return out
}
