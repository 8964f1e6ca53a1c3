package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/luix3mo90/Deli-Bross-Manager/internal/dto"
	"github.com/luix3mo90/Deli-Bross-Manager/internal/model"
	"github.com/luix3mo90/Deli-Bross-Manager/internal/storage"
	"github.com/luix3mo90/Deli-Bross-Manager/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memStore is an in-memory SnapshotStore for exercising the persistence
// boundary without Redis or SQLite.
type memStore struct {
	snap    *model.Snapshot
	saveErr error
	saves   int
}

func (m *memStore) Save(_ context.Context, snap model.Snapshot) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saves++
	m.snap = &snap
	return nil
}

func (m *memStore) Load(_ context.Context) (model.Snapshot, error) {
	if m.snap == nil {
		return model.Snapshot{}, storage.ErrNoSnapshot
	}
	return *m.snap, nil
}

func TestSnapshotExport_StampsVersionAndDate(t *testing.T) {
	st := newTestStore()
	svc := NewSnapshotService(st, NewFinanceService(st))

	snap := svc.Export(context.Background())
	assert.Equal(t, model.SnapshotVersion, snap.Version)
	require.NotNil(t, snap.ExportDate)
	assert.Len(t, snap.Products, len(model.DefaultMenu()))
}

func TestSnapshotImportJSON_ReplacesState(t *testing.T) {
	st := newTestStore()
	svc := NewSnapshotService(st, NewFinanceService(st))

	raw := []byte(`{
		"sales": [],
		"products": [{"id": "p_unico", "name": "Único", "price": "10", "category": "Comida"}],
		"globalCash": "55"
	}`)
	info, err := svc.ImportJSON(context.Background(), raw)
	require.NoError(t, err)

	assert.Equal(t, 1, info.Products)
	assert.Equal(t, 0, info.Sales)
	assert.True(t, st.GlobalCash().Equal(dec(55)))
}

func TestSnapshotImportJSON_RejectsBadShape(t *testing.T) {
	st := newTestStore()
	svc := NewSnapshotService(st, NewFinanceService(st))

	_, err := svc.ImportJSON(context.Background(), []byte(`{"sales": {}}`))
	assert.ErrorIs(t, err, model.ErrInvalidSnapshot)

	// A rejected import leaves the state untouched.
	snap := svc.Export(context.Background())
	assert.Len(t, snap.Products, len(model.DefaultMenu()))
}

func TestSnapshotPersist_WritesEveryStore(t *testing.T) {
	st := newTestStore()
	a, b := &memStore{}, &memStore{}
	svc := NewSnapshotService(st, NewFinanceService(st), a, b)

	require.NoError(t, svc.Persist(context.Background()))
	assert.Equal(t, 1, a.saves)
	assert.Equal(t, 1, b.saves)
	require.NotNil(t, a.snap)
	assert.Len(t, a.snap.Inventory, len(model.DefaultInventory()))
}

func TestSnapshotPersist_PropagatesError(t *testing.T) {
	st := newTestStore()
	bad := &memStore{saveErr: errors.New("disco lleno")}
	svc := NewSnapshotService(st, NewFinanceService(st), bad)

	assert.Error(t, svc.Persist(context.Background()))
}

func TestSnapshotLoad_FirstStoreWins(t *testing.T) {
	st := newTestStore()
	withData := &memStore{}
	snap := model.DefaultSnapshot()
	snap.GlobalCash = dec(99)
	withData.snap = &snap

	svc := NewSnapshotService(st, NewFinanceService(st), &memStore{}, withData)
	require.NoError(t, svc.Load(context.Background()))

	assert.True(t, st.GlobalCash().Equal(dec(99)), "empty first store falls through to the second")
}

func TestSnapshotLoad_AllEmpty(t *testing.T) {
	st := newTestStore()
	st.Update(func(s *store.State) { s.GlobalCash = dec(5) })
	svc := NewSnapshotService(st, NewFinanceService(st), &memStore{})

	err := svc.Load(context.Background())
	assert.ErrorIs(t, err, storage.ErrNoSnapshot)
	assert.True(t, st.GlobalCash().Equal(dec(5)), "state untouched when nothing was persisted")
}

func TestSnapshotReset(t *testing.T) {
	st := newTestStore()
	st.Update(func(s *store.State) {
		s.GlobalCash = dec(500)
		s.Sales = []model.Sale{{ID: "s1", Timestamp: time.Now()}}
	})
	svc := NewSnapshotService(st, NewFinanceService(st))

	snap := svc.Reset(context.Background())
	assert.True(t, snap.GlobalCash.IsZero())
	assert.True(t, st.GlobalCash().IsZero())

	var sales int
	st.View(func(s *store.State) { sales = len(s.Sales) })
	assert.Zero(t, sales)
}

func TestDailyClose_CollectsDaySlice(t *testing.T) {
	st := newTestStore()
	sales := NewSaleService(st)
	finance := NewFinanceService(st)
	svc := NewSnapshotService(st, finance)
	ctx := context.Background()

	cash := model.PaymentCash
	_, err := sales.SaveSale(ctx, dto.SaveSaleRequest{
		Items:     []model.SaleItem{item("c_pollo_simple", "Pollo Simple", 1, 22, decp(1))},
		OrderType: model.OrderDineIn,
		Meta:      &dto.SaleMeta{Paid: true, PaymentMethod: &cash},
	})
	require.NoError(t, err)

	yesterday := time.Now().AddDate(0, 0, -1)
	_, err = sales.SaveSale(ctx, dto.SaveSaleRequest{
		Items:      []model.SaleItem{item("b_personal", "Refresco Personal", 1, 3, nil)},
		OrderType:  model.OrderDineIn,
		CustomDate: &yesterday,
	})
	require.NoError(t, err)

	rep := svc.DailyClose(time.Now())
	assert.Len(t, rep.Sales, 1)
	assert.True(t, rep.Summary.Revenue.Equal(dec(22)))
	// One piece consumed, nothing produced today.
	assert.True(t, rep.SellablePieces.Equal(dec(-1)))
}
