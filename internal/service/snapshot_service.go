package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/luix3mo90/Deli-Bross-Manager/internal/dto"
	"github.com/luix3mo90/Deli-Bross-Manager/internal/model"
	"github.com/luix3mo90/Deli-Bross-Manager/internal/report"
	"github.com/luix3mo90/Deli-Bross-Manager/internal/storage"
	"github.com/luix3mo90/Deli-Bross-Manager/internal/store"
	"github.com/luix3mo90/Deli-Bross-Manager/internal/worker"

	"github.com/rs/zerolog/log"
)

// SnapshotService owns the persistence boundary: the whole state moves as
// one blob, never per-record. Mutations autosave asynchronously through the
// dispatcher; explicit Persist writes synchronously to every store.
type SnapshotService interface {
	Export(ctx context.Context) model.Snapshot
	ImportJSON(ctx context.Context, raw []byte) (dto.SnapshotInfoResponse, error)
	Persist(ctx context.Context) error
	Load(ctx context.Context) error
	Reset(ctx context.Context) model.Snapshot
	DailyClose(day time.Time) report.DailyClose
}

type snapshotService struct {
	store   *store.Store
	stores  []storage.SnapshotStore
	finance FinanceService
}

func NewSnapshotService(st *store.Store, finance FinanceService, stores ...storage.SnapshotStore) SnapshotService {
	return &snapshotService{store: st, stores: stores, finance: finance}
}

// EnableAutosave hooks every store mutation to a fire-and-forget snapshot
// job. The mutation itself never waits on persistence.
func EnableAutosave(st *store.Store, dispatcher *worker.Dispatcher) {
	st.SetOnChange(func() {
		if err := dispatcher.EnqueueSnapshot(context.Background(), worker.SnapshotJobPayload{Reason: "change"}); err != nil {
			log.Error().Err(err).Msg("autosave: failed to enqueue snapshot")
		}
	})
}

func (s *snapshotService) Export(_ context.Context) model.Snapshot {
	snap := s.store.Snapshot()
	now := time.Now()
	snap.Version = model.SnapshotVersion
	snap.ExportDate = &now
	return snap
}

func (s *snapshotService) ImportJSON(ctx context.Context, raw []byte) (dto.SnapshotInfoResponse, error) {
	if err := model.ValidateSnapshotJSON(raw); err != nil {
		return dto.SnapshotInfoResponse{}, err
	}
	var snap model.Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return dto.SnapshotInfoResponse{}, err
	}
	s.store.Restore(snap)
	log.Info().Int("sales", len(snap.Sales)).Int("products", len(snap.Products)).
		Msg("snapshot imported, state replaced")
	return snapshotInfo(snap), nil
}

// Persist writes the current state to every configured store, synchronously.
func (s *snapshotService) Persist(ctx context.Context) error {
	snap := s.Export(ctx)
	for _, st := range s.stores {
		if err := st.Save(ctx, snap); err != nil {
			return err
		}
	}
	return nil
}

// Load replaces the in-memory state with the first store that has a
// snapshot. ErrNoSnapshot from every store leaves the state untouched.
func (s *snapshotService) Load(ctx context.Context) error {
	var lastErr error = storage.ErrNoSnapshot
	for _, st := range s.stores {
		snap, err := st.Load(ctx)
		if err == nil {
			s.store.Restore(snap)
			return nil
		}
		lastErr = err
	}
	return lastErr
}

// Reset replaces the state with the default catalog, inventory and empty
// ledgers. The previous state is gone unless a snapshot was persisted.
func (s *snapshotService) Reset(_ context.Context) model.Snapshot {
	snap := model.DefaultSnapshot()
	s.store.Restore(snap)
	log.Warn().Msg("state reset to defaults")
	return snap
}

// DailyClose assembles everything the closing report needs for one day.
func (s *snapshotService) DailyClose(day time.Time) report.DailyClose {
	summary := s.finance.Summary(context.Background(), day)

	var sales []model.Sale
	var low []model.InventoryItem
	var derived DerivedStock
	s.store.View(func(st *store.State) {
		for _, sale := range st.Sales {
			if SameDay(sale.Timestamp, day) {
				sales = append(sales, sale)
			}
		}
		for _, it := range st.Inventory {
			if it.BelowThreshold() {
				low = append(low, it)
			}
		}
		derived = derivedFromState(st, day)
	})

	return report.DailyClose{
		Day:            day,
		Summary:        summary,
		Sales:          sales,
		SellablePieces: derived.SellablePieces,
		ByproductUnits: derived.ByproductUnits,
		LowInventory:   low,
	}
}

func snapshotInfo(snap model.Snapshot) dto.SnapshotInfoResponse {
	return dto.SnapshotInfoResponse{
		Version:    snap.Version,
		ExportDate: snap.ExportDate,
		Sales:      len(snap.Sales),
		Expenses:   len(snap.Expenses),
		Products:   len(snap.Products),
		Inventory:  len(snap.Inventory),
		StockLogs:  len(snap.StockLogs),
		Drafts:     len(snap.Drafts),
	}
}
