package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/luix3mo90/Deli-Bross-Manager/internal/dto"
	"github.com/luix3mo90/Deli-Bross-Manager/internal/model"

	"github.com/shopspring/decimal"
)

var ErrUnknownCommand = errors.New("comando no reconocido")

// CommandService executes structured intents from the interpreter boundary.
// Each command type routes to the same service path a manual request would
// take, so AI-originated operations obey identical rules.
type CommandService interface {
	Execute(ctx context.Context, cmd model.ParsedCommand) (dto.CommandResult, error)
}

type commandService struct {
	sales      SaleService
	finance    FinanceService
	production ProductionService
}

func NewCommandService(sales SaleService, finance FinanceService, production ProductionService) CommandService {
	return &commandService{sales: sales, finance: finance, production: production}
}

func (s *commandService) Execute(ctx context.Context, cmd model.ParsedCommand) (dto.CommandResult, error) {
	switch cmd.Type {
	case model.CommandSale:
		return s.executeSale(ctx, cmd)
	case model.CommandExpense:
		return s.executeExpense(ctx, cmd)
	case model.CommandAddStock:
		return s.executeAddStock(ctx, cmd)
	case model.CommandConvertCut:
		return s.executeConvert(ctx, cmd)
	default:
		return dto.CommandResult{}, fmt.Errorf("%w: %s", ErrUnknownCommand, cmd.Type)
	}
}

func (s *commandService) executeSale(ctx context.Context, cmd model.ParsedCommand) (dto.CommandResult, error) {
	items := s.sales.BuildItems(ctx, cmd.Items)
	if len(items) == 0 {
		return dto.CommandResult{}, errors.New("ningún producto del comando existe en el catálogo")
	}

	req := dto.SaveSaleRequest{
		Items:     items,
		OrderType: model.OrderDineIn,
		Delivered: cmd.Delivered,
		Meta: &dto.SaleMeta{
			Discount:      cmd.Discount,
			Paid:          cmd.Paid,
			PaymentMethod: cmd.PaymentMethod,
			Delivered:     cmd.Delivered,
		},
	}
	sale, err := s.sales.SaveSale(ctx, req)
	if err != nil {
		return dto.CommandResult{}, err
	}
	return dto.CommandResult{
		Type:    model.CommandSale,
		Message: fmt.Sprintf("venta registrada por Bs %s", sale.FinalTotal.StringFixed(2)),
		Sale:    sale,
	}, nil
}

func (s *commandService) executeExpense(ctx context.Context, cmd model.ParsedCommand) (dto.CommandResult, error) {
	if cmd.Description == "" || cmd.Amount == nil {
		return dto.CommandResult{}, errors.New("un gasto necesita descripción y monto")
	}
	expense, err := s.finance.RecordTransaction(ctx, dto.RecordTransactionRequest{
		Description: cmd.Description,
		Amount:      *cmd.Amount,
		Type:        model.TxOperational,
	})
	if err != nil {
		return dto.CommandResult{}, err
	}
	return dto.CommandResult{
		Type:    model.CommandExpense,
		Message: fmt.Sprintf("gasto registrado: %s", expense.Description),
		Expense: expense,
	}, nil
}

// executeAddStock cooks whole chickens through the default production rule.
// The interpreter only reports a quantity; the rule carries the recipe.
func (s *commandService) executeAddStock(ctx context.Context, cmd model.ParsedCommand) (dto.CommandResult, error) {
	qty := decimal.NewFromInt(1)
	if cmd.Quantity != nil {
		qty = *cmd.Quantity
	}
	rules := s.production.Rules(ctx)
	if len(rules) == 0 {
		return dto.CommandResult{}, errors.New("no hay reglas de producción configuradas")
	}
	entry, err := s.production.Apply(ctx, rules[0], qty, nil)
	if err != nil {
		return dto.CommandResult{}, err
	}
	return dto.CommandResult{
		Type:     model.CommandAddStock,
		Message:  fmt.Sprintf("producción aplicada: %s x%s", rules[0].Name, qty.String()),
		StockLog: entry,
	}, nil
}

func (s *commandService) executeConvert(ctx context.Context, cmd model.ParsedCommand) (dto.CommandResult, error) {
	if cmd.Quantity == nil || !cmd.Quantity.IsPositive() {
		return dto.CommandResult{}, errors.New("la conversión necesita una cantidad positiva de presas")
	}
	pieces := int(cmd.Quantity.IntPart())
	if pieces <= 0 {
		return dto.CommandResult{}, errors.New("la conversión necesita al menos una presa entera")
	}
	expense, err := s.finance.ConvertPieces(ctx, pieces)
	if err != nil {
		return dto.CommandResult{}, err
	}
	return dto.CommandResult{
		Type:    model.CommandConvertCut,
		Message: fmt.Sprintf("%d presas convertidas en cortes", pieces),
		Expense: expense,
	}, nil
}
