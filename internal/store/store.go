// Package store owns the in-memory ledger state: the six collections plus
// sale drafts. All components operate through an explicit *Store instead of
// shared globals; mutations run inside Update so that a whole operation
// (inventory deduction + event append + cash movement) is applied atomically
// with respect to other callers.
package store

import (
	"sync"

	"github.com/luix3mo90/Deli-Bross-Manager/internal/model"

	"github.com/shopspring/decimal"
)

// State is the raw collection set. It is only ever touched inside
// Store.View / Store.Update callbacks.
type State struct {
	Sales      []model.Sale
	Expenses   []model.Expense
	Products   []model.Product
	Inventory  []model.InventoryItem
	StockLogs  []model.StockLog
	GlobalCash decimal.Decimal
	Drafts     []model.SaleDraft
}

// Product returns a pointer into the catalog, or nil when the id is unknown.
func (st *State) Product(id string) *model.Product {
	for i := range st.Products {
		if st.Products[i].ID == id {
			return &st.Products[i]
		}
	}
	return nil
}

// Sale returns a pointer into the sale collection, or nil.
func (st *State) Sale(id string) *model.Sale {
	for i := range st.Sales {
		if st.Sales[i].ID == id {
			return &st.Sales[i]
		}
	}
	return nil
}

// InventoryItem returns a pointer into the inventory, or nil.
func (st *State) InventoryItem(id string) *model.InventoryItem {
	for i := range st.Inventory {
		if st.Inventory[i].ID == id {
			return &st.Inventory[i]
		}
	}
	return nil
}

// DeductInventory subtracts qty from an item, clamping at zero. Unknown ids
// are reported as false and deduct nothing — the item is simply not tracked.
func (st *State) DeductInventory(id string, qty decimal.Decimal) bool {
	item := st.InventoryItem(id)
	if item == nil {
		return false
	}
	item.Quantity = item.Quantity.Sub(qty)
	if item.Quantity.IsNegative() {
		item.Quantity = decimal.Zero
	}
	return true
}

// CreditInventory adds qty to an item. Unknown ids are reported as false.
func (st *State) CreditInventory(id string, qty decimal.Decimal) bool {
	item := st.InventoryItem(id)
	if item == nil {
		return false
	}
	item.Quantity = item.Quantity.Add(qty)
	return true
}

// Store guards a State behind a RWMutex. The shop has a single logical
// operator, but the HTTP surface still serializes writers here.
type Store struct {
	mu       sync.RWMutex
	state    State
	onChange func()
}

// New returns a Store seeded with the given snapshot.
func New(snap model.Snapshot) *Store {
	s := &Store{}
	s.state = stateFromSnapshot(snap)
	return s
}

// SetOnChange registers a callback fired after every Update (outside the
// lock). Used by the snapshot service for fire-and-forget autosave.
func (s *Store) SetOnChange(fn func()) {
	s.mu.Lock()
	s.onChange = fn
	s.mu.Unlock()
}

// Update runs fn with exclusive access to the state.
func (s *Store) Update(fn func(st *State)) {
	s.mu.Lock()
	fn(&s.state)
	hook := s.onChange
	s.mu.Unlock()
	if hook != nil {
		hook()
	}
}

// View runs fn with shared read access. fn must not mutate the state.
func (s *Store) View(fn func(st *State)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(&s.state)
}

// Snapshot returns a deep copy of the full state for export/persistence.
func (s *Store) Snapshot() model.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return model.Snapshot{
		Sales:      copySales(s.state.Sales),
		Expenses:   append([]model.Expense(nil), s.state.Expenses...),
		Products:   append([]model.Product(nil), s.state.Products...),
		Inventory:  append([]model.InventoryItem(nil), s.state.Inventory...),
		StockLogs:  append([]model.StockLog(nil), s.state.StockLogs...),
		GlobalCash: s.state.GlobalCash,
		Drafts:     append([]model.SaleDraft(nil), s.state.Drafts...),
		Version:    model.SnapshotVersion,
	}
}

// Restore replaces all collections from a snapshot. Atomic from the caller's
// perspective: readers see either the old state or the new one.
func (s *Store) Restore(snap model.Snapshot) {
	s.mu.Lock()
	s.state = stateFromSnapshot(snap)
	hook := s.onChange
	s.mu.Unlock()
	if hook != nil {
		hook()
	}
}

// GlobalCash returns the current cash balance.
func (s *Store) GlobalCash() decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.GlobalCash
}

func stateFromSnapshot(snap model.Snapshot) State {
	st := State{
		Sales:      copySales(snap.Sales),
		Expenses:   append([]model.Expense(nil), snap.Expenses...),
		Products:   append([]model.Product(nil), snap.Products...),
		Inventory:  append([]model.InventoryItem(nil), snap.Inventory...),
		StockLogs:  append([]model.StockLog(nil), snap.StockLogs...),
		GlobalCash: snap.GlobalCash,
		Drafts:     append([]model.SaleDraft(nil), snap.Drafts...),
	}
	if st.Sales == nil {
		st.Sales = []model.Sale{}
	}
	if st.Expenses == nil {
		st.Expenses = []model.Expense{}
	}
	if st.Products == nil {
		st.Products = []model.Product{}
	}
	if st.Inventory == nil {
		st.Inventory = []model.InventoryItem{}
	}
	if st.StockLogs == nil {
		st.StockLogs = []model.StockLog{}
	}
	if st.Drafts == nil {
		st.Drafts = []model.SaleDraft{}
	}
	return st
}

// copySales deep-copies sales including their item slices, which callers
// routinely append to.
func copySales(in []model.Sale) []model.Sale {
	if in == nil {
		return nil
	}
	out := make([]model.Sale, len(in))
	for i, s := range in {
		s.Items = append([]model.SaleItem(nil), s.Items...)
		out[i] = s
	}
	return out
}
