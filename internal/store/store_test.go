package store

import (
	"testing"
	"time"

	"github.com/luix3mo90/Deli-Bross-Manager/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(f float64) decimal.Decimal { return decimal.NewFromFloat(f) }

func TestSnapshotIsDeepCopy(t *testing.T) {
	st := New(model.DefaultSnapshot())
	st.Update(func(s *State) {
		s.Sales = []model.Sale{{
			ID:        "s1",
			Timestamp: time.Now(),
			Items:     []model.SaleItem{{ID: "i1", ProductID: "b_personal", Quantity: d(1)}},
		}}
	})

	snap := st.Snapshot()
	snap.Sales[0].Items[0].ProductID = "mutated"
	snap.Inventory[0].Quantity = d(-999)

	st.View(func(s *State) {
		assert.Equal(t, "b_personal", s.Sales[0].Items[0].ProductID)
		assert.True(t, s.Inventory[0].Quantity.GreaterThan(d(0)))
	})
}

func TestRestoreNormalizesNilCollections(t *testing.T) {
	st := New(model.DefaultSnapshot())
	st.Restore(model.Snapshot{})

	st.View(func(s *State) {
		require.NotNil(t, s.Sales)
		require.NotNil(t, s.Expenses)
		require.NotNil(t, s.Products)
		require.NotNil(t, s.Inventory)
		require.NotNil(t, s.StockLogs)
		require.NotNil(t, s.Drafts)
		assert.Empty(t, s.Products, "restore replaces, it never merges")
	})
}

func TestDeductInventoryClampsAtZero(t *testing.T) {
	st := New(model.Snapshot{
		Inventory: []model.InventoryItem{{ID: "inv_x", Quantity: d(3)}},
	})

	st.Update(func(s *State) {
		assert.True(t, s.DeductInventory("inv_x", d(10)))
		assert.True(t, s.InventoryItem("inv_x").Quantity.IsZero())

		assert.False(t, s.DeductInventory("inv_desconocido", d(1)))
	})
}

func TestOnChangeFiresAfterUpdateAndRestore(t *testing.T) {
	st := New(model.Snapshot{})
	var fired int
	st.SetOnChange(func() { fired++ })

	st.Update(func(s *State) { s.GlobalCash = d(10) })
	assert.Equal(t, 1, fired)

	st.Restore(model.DefaultSnapshot())
	assert.Equal(t, 2, fired)

	st.View(func(s *State) {})
	assert.Equal(t, 2, fired, "reads never trigger autosave")
}

func TestOnChangeRunsOutsideTheLock(t *testing.T) {
	st := New(model.Snapshot{})
	var cash decimal.Decimal
	st.SetOnChange(func() {
		// Would deadlock if the hook ran under the write lock.
		cash = st.GlobalCash()
	})

	st.Update(func(s *State) { s.GlobalCash = d(7) })
	assert.True(t, cash.Equal(d(7)))
}
