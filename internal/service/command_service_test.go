package service

import (
	"context"
	"testing"

	"github.com/luix3mo90/Deli-Bross-Manager/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandExecute_Sale(t *testing.T) {
	st := newTestStore()
	sales := NewSaleService(st)
	svc := NewCommandService(sales, NewFinanceService(st), NewProductionService(st, model.DefaultKitchenRules()))

	cash := model.PaymentCash
	res, err := svc.Execute(context.Background(), model.ParsedCommand{
		Type: model.CommandSale,
		Items: []model.ParsedCommandItem{
			{ProductID: "c_pollo_simple", Quantity: dec(1)},
			{ProductID: "b_personal", Quantity: dec(2)},
		},
		Paid:          true,
		PaymentMethod: &cash,
	})
	require.NoError(t, err)

	assert.Equal(t, model.CommandSale, res.Type)
	require.NotNil(t, res.Sale)
	assert.Equal(t, model.StatusPagado, res.Sale.Status)
	assert.True(t, res.Sale.FinalTotal.Equal(dec(28)), "22 + 2×3")
	assert.Equal(t, "venta registrada por Bs 28.00", res.Message)
	assert.True(t, st.GlobalCash().Equal(dec(28)))
}

func TestCommandExecute_SaleWithOnlyUnknownProducts(t *testing.T) {
	st := newTestStore()
	svc := NewCommandService(NewSaleService(st), NewFinanceService(st), NewProductionService(st, model.DefaultKitchenRules()))

	_, err := svc.Execute(context.Background(), model.ParsedCommand{
		Type:  model.CommandSale,
		Items: []model.ParsedCommandItem{{ProductID: "p_fantasma", Quantity: dec(1)}},
	})
	assert.Error(t, err, "a sale of nothing is rejected, not recorded empty")
}

func TestCommandExecute_Expense(t *testing.T) {
	st := newTestStore()
	svc := NewCommandService(NewSaleService(st), NewFinanceService(st), NewProductionService(st, model.DefaultKitchenRules()))

	amount := dec(35)
	res, err := svc.Execute(context.Background(), model.ParsedCommand{
		Type:        model.CommandExpense,
		Description: "Compra de gas",
		Amount:      &amount,
	})
	require.NoError(t, err)

	require.NotNil(t, res.Expense)
	assert.Equal(t, model.TxOperational, res.Expense.Type)
	assert.True(t, st.GlobalCash().Equal(dec(-35)))

	_, err = svc.Execute(context.Background(), model.ParsedCommand{Type: model.CommandExpense})
	assert.Error(t, err, "description and amount are both required")
}

func TestCommandExecute_AddStock(t *testing.T) {
	st := newTestStore()
	svc := NewCommandService(NewSaleService(st), NewFinanceService(st), NewProductionService(st, model.DefaultKitchenRules()))

	qty := dec(2)
	res, err := svc.Execute(context.Background(), model.ParsedCommand{
		Type:     model.CommandAddStock,
		Quantity: &qty,
	})
	require.NoError(t, err)

	require.NotNil(t, res.StockLog)
	assert.True(t, res.StockLog.TotalPieces.Equal(dec(16)))
	assert.True(t, inventoryQty(st, "inv_pollo_crudo").Equal(dec(18)))
}

func TestCommandExecute_AddStockDefaultsToOne(t *testing.T) {
	st := newTestStore()
	svc := NewCommandService(NewSaleService(st), NewFinanceService(st), NewProductionService(st, model.DefaultKitchenRules()))

	res, err := svc.Execute(context.Background(), model.ParsedCommand{Type: model.CommandAddStock})
	require.NoError(t, err)
	assert.True(t, res.StockLog.TotalPieces.Equal(dec(8)))
}

func TestCommandExecute_ConvertCut(t *testing.T) {
	st := newTestStore()
	svc := NewCommandService(NewSaleService(st), NewFinanceService(st), NewProductionService(st, model.DefaultKitchenRules()))
	ctx := context.Background()

	qty := dec(3)
	res, err := svc.Execute(ctx, model.ParsedCommand{
		Type:     model.CommandConvertCut,
		Quantity: &qty,
	})
	require.NoError(t, err)

	require.NotNil(t, res.Expense)
	assert.Equal(t, 3, res.Expense.Pieces())
	assert.True(t, res.Expense.Internal())

	bad := dec(0)
	_, err = svc.Execute(ctx, model.ParsedCommand{Type: model.CommandConvertCut, Quantity: &bad})
	assert.Error(t, err)
	_, err = svc.Execute(ctx, model.ParsedCommand{Type: model.CommandConvertCut})
	assert.Error(t, err)
}

func TestCommandExecute_Unknown(t *testing.T) {
	st := newTestStore()
	svc := NewCommandService(NewSaleService(st), NewFinanceService(st), NewProductionService(st, model.DefaultKitchenRules()))

	_, err := svc.Execute(context.Background(), model.ParsedCommand{Type: model.CommandUnknown})
	assert.ErrorIs(t, err, ErrUnknownCommand)

	_, err = svc.Execute(context.Background(), model.ParsedCommand{Type: "GIBBERISH"})
	assert.ErrorIs(t, err, ErrUnknownCommand)
}
