package service

import (
	"context"
	"testing"
	"time"

	"github.com/luix3mo90/Deli-Bross-Manager/internal/dto"
	"github.com/luix3mo90/Deli-Bross-Manager/internal/model"
	"github.com/luix3mo90/Deli-Bross-Manager/internal/store"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordTransaction_OperationalDebitsCash(t *testing.T) {
	st := newTestStore()
	svc := NewFinanceService(st)

	entry, err := svc.RecordTransaction(context.Background(), dto.RecordTransactionRequest{
		Description: "Gas para la cocina",
		Amount:      dec(25),
		Type:        model.TxOperational,
	})
	require.NoError(t, err)
	assert.False(t, entry.Internal())
	assert.True(t, st.GlobalCash().Equal(dec(-25)), "cash may go negative, only treasury clamps")
}

func TestRecordTransaction_DepositAndWithdrawal(t *testing.T) {
	st := newTestStore()
	svc := NewFinanceService(st)
	ctx := context.Background()

	_, err := svc.RecordTransaction(ctx, dto.RecordTransactionRequest{
		Description: "Fondo inicial", Amount: dec(200), Type: model.TxDeposit,
	})
	require.NoError(t, err)
	_, err = svc.RecordTransaction(ctx, dto.RecordTransactionRequest{
		Description: "Retiro dueño", Amount: dec(50), Type: model.TxWithdrawal,
	})
	require.NoError(t, err)

	assert.True(t, st.GlobalCash().Equal(dec(150)))
}

func TestRecordTransaction_InventoryPurchaseCreditsStock(t *testing.T) {
	st := newTestStore()
	svc := NewFinanceService(st)

	_, err := svc.RecordTransaction(context.Background(), dto.RecordTransactionRequest{
		Description: "Compra pollo",
		Amount:      dec(180),
		Type:        model.TxInventory,
		Inventory:   &dto.InventoryPurchase{InventoryID: "inv_pollo_crudo", Quantity: dec(10)},
	})
	require.NoError(t, err)

	assert.True(t, st.GlobalCash().Equal(dec(-180)))
	assert.True(t, inventoryQty(st, "inv_pollo_crudo").Equal(dec(30)))
}

func TestRecordTransaction_InventoryWithoutDetailFails(t *testing.T) {
	svc := NewFinanceService(newTestStore())

	_, err := svc.RecordTransaction(context.Background(), dto.RecordTransactionRequest{
		Description: "Compra sin detalle", Amount: dec(10), Type: model.TxInventory,
	})
	assert.Error(t, err)
}

func TestRecordTransaction_NapkinPackExpansion(t *testing.T) {
	st := newTestStore()
	svc := NewFinanceService(st)

	entry, err := svc.RecordTransaction(context.Background(), dto.RecordTransactionRequest{
		Description: "Compra servilletas",
		Amount:      dec(30),
		Type:        model.TxInventory,
		Inventory:   &dto.InventoryPurchase{InventoryID: model.NapkinItemID, Quantity: dec(3)},
	})
	require.NoError(t, err)

	// 3 packs × 50 loose napkins on top of the seeded 500
	assert.True(t, inventoryQty(st, model.NapkinItemID).Equal(dec(650)))
	assert.Equal(t, "Compra servilletas (3 Paquetes)", entry.Description)
}

func TestRecordTransaction_UnknownInventoryStillLedgers(t *testing.T) {
	st := newTestStore()
	svc := NewFinanceService(st)

	_, err := svc.RecordTransaction(context.Background(), dto.RecordTransactionRequest{
		Description: "Compra misteriosa",
		Amount:      dec(12),
		Type:        model.TxInventory,
		Inventory:   &dto.InventoryPurchase{InventoryID: "inv_inexistente", Quantity: dec(4)},
	})
	require.NoError(t, err, "unknown item is a warn, not a failure")

	assert.True(t, st.GlobalCash().Equal(dec(-12)))
	assert.Len(t, svc.Transactions(context.Background(), false), 1)
}

func TestConvertPieces(t *testing.T) {
	st := newTestStore()
	svc := NewFinanceService(st)
	ctx := context.Background()

	entry, err := svc.ConvertPieces(ctx, 2)
	require.NoError(t, err)

	assert.True(t, entry.Internal())
	assert.True(t, entry.Amount.IsZero())
	assert.Equal(t, 2, entry.Pieces())
	assert.Equal(t, "INTERNAL_CONVERT_2_PIECES", entry.Description)
	assert.True(t, st.GlobalCash().IsZero(), "conversions never move money")

	_, err = svc.ConvertPieces(ctx, 0)
	assert.Error(t, err)
	_, err = svc.ConvertPieces(ctx, -3)
	assert.Error(t, err)
}

func TestTransactions_HidesInternalByDefault(t *testing.T) {
	st := newTestStore()
	svc := NewFinanceService(st)
	ctx := context.Background()

	_, err := svc.RecordTransaction(ctx, dto.RecordTransactionRequest{
		Description: "Gas", Amount: dec(25), Type: model.TxOperational,
	})
	require.NoError(t, err)
	_, err = svc.ConvertPieces(ctx, 1)
	require.NoError(t, err)

	assert.Len(t, svc.Transactions(ctx, false), 1)
	assert.Len(t, svc.Transactions(ctx, true), 2)
}

func TestConfirmPayment_RecomputesTotalAndCreditsCash(t *testing.T) {
	st := newTestStore()
	sales := NewSaleService(st)
	finance := NewFinanceService(st)
	ctx := context.Background()

	sale, err := sales.SaveSale(ctx, dto.SaveSaleRequest{
		Items:     []model.SaleItem{item("c_pollo_simple", "Pollo Simple", 1, 22, decp(1))},
		OrderType: model.OrderDineIn,
	})
	require.NoError(t, err)

	paid, err := finance.ConfirmPayment(ctx, sale.ID, model.PaymentQR, dec(2))
	require.NoError(t, err)

	assert.Equal(t, model.StatusPagado, paid.Status)
	require.NotNil(t, paid.PaymentMethod)
	assert.Equal(t, model.PaymentQR, *paid.PaymentMethod)
	assert.True(t, paid.FinalTotal.Equal(dec(20)), "subtotal 22 − discount 2")
	assert.True(t, st.GlobalCash().Equal(dec(20)))
}

func TestConfirmPayment_ReconfirmCreditsAgain(t *testing.T) {
	st := newTestStore()
	sales := NewSaleService(st)
	finance := NewFinanceService(st)
	ctx := context.Background()

	sale, err := sales.SaveSale(ctx, dto.SaveSaleRequest{
		Items:     []model.SaleItem{item("b_personal", "Refresco Personal", 1, 3, nil)},
		OrderType: model.OrderDineIn,
	})
	require.NoError(t, err)

	_, err = finance.ConfirmPayment(ctx, sale.ID, model.PaymentCash, decimal.Zero)
	require.NoError(t, err)
	paid, err := finance.ConfirmPayment(ctx, sale.ID, model.PaymentQR, decimal.Zero)
	require.NoError(t, err)

	// Known double-count: the operator fixes a mis-entered method this way.
	assert.True(t, st.GlobalCash().Equal(dec(6)))
	assert.Equal(t, model.PaymentQR, *paid.PaymentMethod)
}

func TestConfirmPayment_UnknownSale(t *testing.T) {
	finance := NewFinanceService(newTestStore())
	_, err := finance.ConfirmPayment(context.Background(), "nope", model.PaymentCash, decimal.Zero)
	assert.ErrorIs(t, err, ErrSaleNotFound)
}

func TestSummary_DayWindowAndTreasury(t *testing.T) {
	st := newTestStore()
	sales := NewSaleService(st)
	finance := NewFinanceService(st)
	ctx := context.Background()

	qr := model.PaymentQR
	_, err := sales.SaveSale(ctx, dto.SaveSaleRequest{
		Items:     []model.SaleItem{item("c_pollo_simple", "Pollo Simple", 1, 22, decp(1))},
		OrderType: model.OrderDineIn,
		Meta:      &dto.SaleMeta{Paid: true, PaymentMethod: &qr},
	})
	require.NoError(t, err)

	pending, err := sales.SaveSale(ctx, dto.SaveSaleRequest{
		Items:     []model.SaleItem{item("b_personal", "Refresco Personal", 1, 3, nil)},
		OrderType: model.OrderDineIn,
	})
	require.NoError(t, err)

	// Yesterday's paid cash sale counts in treasury but not today's revenue.
	yesterday := time.Now().AddDate(0, 0, -1)
	cash := model.PaymentCash
	_, err = sales.SaveSale(ctx, dto.SaveSaleRequest{
		Items:      []model.SaleItem{item("b_popular", "Refresco Popular", 1, 8, nil)},
		OrderType:  model.OrderDineIn,
		CustomDate: &yesterday,
		Meta:       &dto.SaleMeta{Paid: true, PaymentMethod: &cash},
	})
	require.NoError(t, err)

	_, err = finance.RecordTransaction(ctx, dto.RecordTransactionRequest{
		Description: "Gas", Amount: dec(5), Type: model.TxOperational,
	})
	require.NoError(t, err)
	_, err = finance.ConvertPieces(ctx, 3)
	require.NoError(t, err)

	sum := finance.Summary(ctx, time.Now())

	assert.Equal(t, 2, sum.SalesCount)
	assert.Equal(t, 1, sum.PendingCount)
	assert.True(t, sum.Revenue.Equal(dec(22)), "pending sale %s excluded", pending.ID)
	assert.True(t, sum.TotalExpenses.Equal(dec(5)), "conversion is internal, excluded")
	assert.True(t, sum.NetProfit.Equal(dec(17)))
	assert.True(t, sum.ByMethod.QR.Equal(dec(22)))
	assert.True(t, sum.ByMethod.Cash.Equal(dec(3)), "8 cash all-time − 5 expenses all-time")
	assert.True(t, sum.CashBalance.Equal(dec(25)))
}

func TestSummary_PhysicalCashClampsAtZero(t *testing.T) {
	st := newTestStore()
	finance := NewFinanceService(st)
	ctx := context.Background()

	_, err := finance.RecordTransaction(ctx, dto.RecordTransactionRequest{
		Description: "Alquiler", Amount: dec(900), Type: model.TxOperational,
	})
	require.NoError(t, err)

	sum := finance.Summary(ctx, time.Now())
	assert.True(t, sum.ByMethod.Cash.IsZero(), "drawer never reports negative")
	assert.True(t, sum.CashBalance.Equal(dec(-900)), "the ledger itself stays honest")
}

func TestSummary_InternalEntriesInvisibleEverywhere(t *testing.T) {
	st := newTestStore()
	n := 4
	st.Update(func(s *store.State) {
		s.Expenses = []model.Expense{{
			ID: "e1", Timestamp: time.Now(), Amount: decimal.Zero,
			Description: model.ConversionDescription(4), ConvertedPieces: &n,
		}}
	})
	finance := NewFinanceService(st)

	sum := finance.Summary(context.Background(), time.Now())
	assert.True(t, sum.TotalExpenses.IsZero())
	assert.True(t, sum.NetProfit.IsZero())
	assert.Empty(t, finance.Transactions(context.Background(), false))
}
