package service

import (
	"context"
	"fmt"
	"time"

	"github.com/luix3mo90/Deli-Bross-Manager/internal/dto"
	"github.com/luix3mo90/Deli-Bross-Manager/internal/model"
	"github.com/luix3mo90/Deli-Bross-Manager/internal/store"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// FinanceService owns the cash ledger: expense/capital transactions, the
// internal conversion events, payment confirmation, and reporting. Every
// user-facing figure excludes INTERNAL_ entries.
type FinanceService interface {
	RecordTransaction(ctx context.Context, req dto.RecordTransactionRequest) (*model.Expense, error)
	ConvertPieces(ctx context.Context, pieces int) (*model.Expense, error)
	ConfirmPayment(ctx context.Context, saleID string, method model.PaymentMethod, discount decimal.Decimal) (*model.Sale, error)
	CashBalance(ctx context.Context) decimal.Decimal
	Transactions(ctx context.Context, includeInternal bool) []model.Expense
	Summary(ctx context.Context, day time.Time) dto.FinanceSummaryResponse
}

type financeService struct {
	store *store.Store
}

func NewFinanceService(st *store.Store) FinanceService {
	return &financeService{store: st}
}

// ── RecordTransaction ─────────────────────────────────────────────────────────
// Cash effects by type:
//   EXPENSE_OPERATIONAL, WITHDRAWAL  → cash down
//   EXPENSE_INVENTORY                → cash down, inventory up
//   DEPOSIT                          → cash up
// Napkins are bought by the pack: the reserved item expands qty ×50 while the
// stored description is annotated with the pack count the operator typed.

func (s *financeService) RecordTransaction(_ context.Context, req dto.RecordTransactionRequest) (*model.Expense, error) {
	if req.Type == model.TxInventory && req.Inventory == nil {
		return nil, fmt.Errorf("compra de inventario requiere el detalle del ítem")
	}

	entry := model.Expense{
		ID:          uuid.NewString(),
		Timestamp:   time.Now(),
		Description: req.Description,
		Amount:      req.Amount,
		Type:        req.Type,
	}

	qty := decimal.Zero
	invID := ""
	if req.Inventory != nil {
		qty = req.Inventory.Quantity
		invID = req.Inventory.InventoryID
		if invID == model.NapkinItemID {
			entry.Description = fmt.Sprintf("%s (%s Paquetes)", req.Description, qty.String())
			qty = qty.Mul(decimal.NewFromInt(model.NapkinPackUnits))
		}
	}

	s.store.Update(func(st *store.State) {
		st.Expenses = append([]model.Expense{entry}, st.Expenses...)

		switch req.Type {
		case model.TxInventory:
			st.GlobalCash = st.GlobalCash.Sub(req.Amount)
			if !st.CreditInventory(invID, qty) {
				log.Warn().Str("inventory_id", invID).Msg("inventory purchase references unknown item, stock not credited")
			}
		case model.TxOperational, model.TxWithdrawal:
			st.GlobalCash = st.GlobalCash.Sub(req.Amount)
		case model.TxDeposit:
			st.GlobalCash = st.GlobalCash.Add(req.Amount)
		}
	})

	log.Info().Str("type", string(req.Type)).Str("amount", req.Amount.String()).
		Str("description", entry.Description).Msg("transaction recorded")
	return &entry, nil
}

// appendConversion writes the zero-amount internal event that the stock
// calculator replays. It never touches inventory or cash; its whole effect
// is ledger bookkeeping. Shared with the sale save path, which must append
// inside its own Update.
func appendConversion(st *store.State, pieces int, ts time.Time) model.Expense {
	n := pieces
	entry := model.Expense{
		ID:              uuid.NewString(),
		Timestamp:       ts,
		Description:     model.ConversionDescription(pieces),
		Amount:          decimal.Zero,
		Type:            model.TxOperational,
		ConvertedPieces: &n,
	}
	st.Expenses = append([]model.Expense{entry}, st.Expenses...)
	return entry
}

// ConvertPieces records a manual conversion of whole pieces into cuts.
func (s *financeService) ConvertPieces(_ context.Context, pieces int) (*model.Expense, error) {
	if pieces <= 0 {
		return nil, fmt.Errorf("cantidad de piezas inválida: %d", pieces)
	}
	var entry model.Expense
	s.store.Update(func(st *store.State) {
		entry = appendConversion(st, pieces, time.Now())
	})
	log.Info().Int("pieces", pieces).Int("cuts", pieces*model.CutsPerPiece).Msg("pieces converted to cuts")
	return &entry, nil
}

// ── ConfirmPayment ────────────────────────────────────────────────────────────
// Recomputes finalTotal from the sale's subtotal and the discount granted at
// payment time, marks the sale Pagado, and credits cash. Re-confirming an
// already paid sale is permitted and credits cash again — the original
// behaves this way and callers rely on it to correct a mis-entered method;
// it is logged so the operator can spot double counting.

func (s *financeService) ConfirmPayment(_ context.Context, saleID string, method model.PaymentMethod, discount decimal.Decimal) (*model.Sale, error) {
	var (
		out model.Sale
		ok  bool
	)
	s.store.Update(func(st *store.State) {
		sale := st.Sale(saleID)
		if sale == nil {
			return
		}
		if sale.Status == model.StatusPagado {
			log.Warn().Str("sale_id", saleID).Msg("payment re-confirmed on a paid sale; cash credited again")
		}

		final := finalTotalOf(sale.Subtotal, discount)
		sale.Status = model.StatusPagado
		sale.PaymentMethod = &method
		sale.Discount = discount
		sale.FinalTotal = final
		st.GlobalCash = st.GlobalCash.Add(final)
		out, ok = *sale, true
	})
	if !ok {
		return nil, ErrSaleNotFound
	}
	log.Info().Str("sale_id", saleID).Str("method", string(method)).
		Str("total", out.FinalTotal.String()).Msg("payment confirmed")
	return &out, nil
}

// ── Reporting ─────────────────────────────────────────────────────────────────

func (s *financeService) CashBalance(_ context.Context) decimal.Decimal {
	return s.store.GlobalCash()
}

// Transactions lists ledger entries newest-first. Internal bookkeeping
// events are hidden unless explicitly requested.
func (s *financeService) Transactions(_ context.Context, includeInternal bool) []model.Expense {
	var out []model.Expense
	s.store.View(func(st *store.State) {
		for _, e := range st.Expenses {
			if !includeInternal && e.Internal() {
				continue
			}
			out = append(out, e)
		}
	})
	return out
}

// Summary builds the day report: revenue from paid sales, non-internal
// expenses, net profit, plus the all-time treasury split by payment method.
func (s *financeService) Summary(_ context.Context, day time.Time) dto.FinanceSummaryResponse {
	var resp dto.FinanceSummaryResponse
	s.store.View(func(st *store.State) {
		for _, sale := range st.Sales {
			// All-time treasury split, paid sales only.
			if sale.Status == model.StatusPagado && sale.PaymentMethod != nil {
				switch *sale.PaymentMethod {
				case model.PaymentCash:
					resp.ByMethod.Cash = resp.ByMethod.Cash.Add(sale.FinalTotal)
				case model.PaymentQR:
					resp.ByMethod.QR = resp.ByMethod.QR.Add(sale.FinalTotal)
				case model.PaymentCard:
					resp.ByMethod.Card = resp.ByMethod.Card.Add(sale.FinalTotal)
				}
			}

			if !SameDay(sale.Timestamp, day) {
				continue
			}
			resp.SalesCount++
			if sale.Status == model.StatusPagado {
				resp.Revenue = resp.Revenue.Add(sale.FinalTotal)
			} else {
				resp.PendingCount++
			}
		}

		allTimeExpenses := decimal.Zero
		for _, e := range st.Expenses {
			if e.Internal() {
				continue
			}
			allTimeExpenses = allTimeExpenses.Add(e.Amount)
			if SameDay(e.Timestamp, day) {
				resp.TotalExpenses = resp.TotalExpenses.Add(e.Amount)
			}
		}

		// Expenses are assumed paid from the physical drawer.
		resp.ByMethod.Cash = resp.ByMethod.Cash.Sub(allTimeExpenses)
		if resp.ByMethod.Cash.IsNegative() {
			resp.ByMethod.Cash = decimal.Zero
		}

		resp.NetProfit = resp.Revenue.Sub(resp.TotalExpenses)
		resp.CashBalance = st.GlobalCash
	})
	return resp
}
