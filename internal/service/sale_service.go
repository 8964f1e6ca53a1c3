package service

import (
	"context"
	"errors"
	"time"

	"github.com/luix3mo90/Deli-Bross-Manager/internal/dto"
	"github.com/luix3mo90/Deli-Bross-Manager/internal/model"
	"github.com/luix3mo90/Deli-Bross-Manager/internal/store"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

var ErrSaleNotFound = errors.New("venta no encontrada")

// SaleService owns the sale lifecycle: draft → Pendiente → Pagado, with
// edit-in-place. Saving performs the recipe-based inventory deduction and,
// when needed, the automatic byproduct conversion.
type SaleService interface {
	SaveSale(ctx context.Context, req dto.SaveSaleRequest) (*model.Sale, error)
	ToggleDelivered(ctx context.Context, saleID string) (*model.Sale, error)
	ListSales(ctx context.Context, day *time.Time) []model.Sale
	BuildItems(ctx context.Context, items []model.ParsedCommandItem) []model.SaleItem
	StashDraft(ctx context.Context, draft model.SaleDraft)
	Drafts(ctx context.Context) []model.SaleDraft
	ResumeDraft(ctx context.Context, index int) (*model.SaleDraft, error)
}

type saleService struct {
	store *store.Store
}

func NewSaleService(st *store.Store) SaleService {
	return &saleService{store: st}
}

// ── SaveSale ──────────────────────────────────────────────────────────────────
// One atomic pass over the state, in this fixed order:
//  1. byproduct deficit check (may append a conversion event)
//  2. inventory deduction per item: base recipe, selected side, napkin, plate
//  3. sale create/overwrite with finalTotal = max(0, subtotal − discount)
//  4. cash credit when a new sale arrives already paid
//
// Unknown product, inventory, or side references skip silently; deductions
// clamp at zero. Editing never touches payment status or method.

func (s *saleService) SaveSale(_ context.Context, req dto.SaveSaleRequest) (*model.Sale, error) {
	now := time.Now()
	var (
		saved   model.Sale
		editErr error
	)

	s.store.Update(func(st *store.State) {
		var existing *model.Sale
		if req.ExistingSaleID != "" {
			existing = st.Sale(req.ExistingSaleID)
			if existing == nil {
				editErr = ErrSaleNotFound
				return
			}
		}

		s.convertForDeficit(st, req.Items, now)
		s.deductForItems(st, req.Items, req.OrderType)

		subtotal := decimal.Zero
		for _, it := range req.Items {
			subtotal = subtotal.Add(it.Total)
		}

		discount := decimal.Zero
		switch {
		case req.Meta != nil && req.Meta.Discount != nil:
			discount = *req.Meta.Discount
		case existing != nil:
			discount = existing.Discount
		}
		finalTotal := finalTotalOf(subtotal, discount)

		if existing != nil {
			// Overwrite in place; payment status and method are preserved.
			if req.CustomDate != nil {
				existing.Timestamp = *req.CustomDate
			}
			existing.CustomerName = req.CustomerName
			existing.OrderType = req.OrderType
			existing.Items = append([]model.SaleItem(nil), req.Items...)
			existing.Subtotal = subtotal
			existing.Discount = discount
			existing.FinalTotal = finalTotal
			existing.Delivered = req.Delivered
			if existing.Status == model.StatusPagado {
				log.Warn().Str("sale_id", existing.ID).
					Msg("items edited after payment; inventory re-deducted without compensation")
			}
			saved = *existing
			return
		}

		sale := model.Sale{
			ID:           uuid.NewString(),
			Timestamp:    now,
			CustomerName: req.CustomerName,
			OrderType:    req.OrderType,
			Items:        append([]model.SaleItem(nil), req.Items...),
			Subtotal:     subtotal,
			Discount:     discount,
			FinalTotal:   finalTotal,
			Status:       model.StatusPendiente,
			Delivered:    req.Delivered,
		}
		if req.CustomDate != nil {
			sale.Timestamp = *req.CustomDate
		}
		if req.Meta != nil {
			if req.Meta.Paid {
				sale.Status = model.StatusPagado
			}
			sale.PaymentMethod = req.Meta.PaymentMethod
			sale.Delivered = req.Delivered || req.Meta.Delivered
		}
		st.Sales = append([]model.Sale{sale}, st.Sales...)

		// The only path that credits cash at creation time; the normal flow
		// goes through payment confirmation instead.
		if req.Meta != nil && req.Meta.Paid && req.Meta.PaymentMethod != nil {
			st.GlobalCash = st.GlobalCash.Add(finalTotal)
		}
		saved = sale
	})

	if editErr != nil {
		return nil, editErr
	}
	log.Info().Str("sale_id", saved.ID).Str("status", string(saved.Status)).
		Str("total", saved.FinalTotal.String()).Int("items", len(saved.Items)).
		Msg("sale saved")
	return &saved, nil
}

// convertForDeficit auto-converts whole pieces into cuts when the sale needs
// more byproduct units than today's replay shows available. ceil(deficit/3)
// whole pieces, three cuts each.
func (s *saleService) convertForDeficit(st *store.State, items []model.SaleItem, now time.Time) {
	required := decimal.Zero
	for _, it := range items {
		if it.Byproduct() {
			required = required.Add(it.Quantity)
		}
	}
	if !required.IsPositive() {
		return
	}

	available := derivedFromState(st, now).ByproductUnits
	if available.GreaterThanOrEqual(required) {
		return
	}

	deficit := required.Sub(available)
	pieces := int(deficit.Div(decimal.NewFromInt(model.CutsPerPiece)).Ceil().IntPart())
	appendConversion(st, pieces, now)
	log.Info().Str("deficit", deficit.String()).Int("pieces_cut", pieces).
		Msg("auto-converted pieces to cover byproduct deficit")
}

// deductForItems applies the fixed deduction order for every sold item.
// Items referencing an unknown product deduct nothing at all.
func (s *saleService) deductForItems(st *store.State, items []model.SaleItem, orderType model.OrderType) {
	takeaway := orderType == model.OrderTakeaway

	for _, item := range items {
		product := st.Product(item.ProductID)
		if product == nil {
			log.Warn().Str("product_id", item.ProductID).Msg("sale item references unknown product, skipping deduction")
			continue
		}

		for _, ing := range product.Recipe {
			st.DeductInventory(ing.InventoryID, ing.Quantity.Mul(item.Quantity))
		}

		if item.SelectedSides != "" {
			if side := product.FindSideByName(item.SelectedSides); side != nil {
				for _, ing := range side.Recipe {
					st.DeductInventory(ing.InventoryID, ing.Quantity.Mul(item.Quantity))
				}
			} else {
				log.Warn().Str("side", item.SelectedSides).Str("product_id", product.ID).
					Msg("selected side no longer exists, skipping side deduction")
			}
		}

		// One napkin per unit sold, regardless of product or order type.
		st.DeductInventory(model.NapkinItemID, item.Quantity)

		if takeaway && product.PlateSize != "" && product.PlateSize != model.PlateNone {
			plateID := model.PlateSmallItemID
			if product.PlateSize == model.PlateLarge {
				plateID = model.PlateLargeItemID
			}
			st.DeductInventory(plateID, item.Quantity)
		}
	}
}

func finalTotalOf(subtotal, discount decimal.Decimal) decimal.Decimal {
	total := subtotal.Sub(discount)
	if total.IsNegative() {
		return decimal.Zero
	}
	return total
}

// ── Queries and small mutations ───────────────────────────────────────────────

func (s *saleService) ToggleDelivered(_ context.Context, saleID string) (*model.Sale, error) {
	var (
		out model.Sale
		ok  bool
	)
	s.store.Update(func(st *store.State) {
		if sale := st.Sale(saleID); sale != nil {
			sale.Delivered = !sale.Delivered
			out, ok = *sale, true
		}
	})
	if !ok {
		return nil, ErrSaleNotFound
	}
	return &out, nil
}

// ListSales returns sales newest-first, optionally filtered to one calendar
// day.
func (s *saleService) ListSales(_ context.Context, day *time.Time) []model.Sale {
	var out []model.Sale
	s.store.View(func(st *store.State) {
		for _, sale := range st.Sales {
			if day == nil || SameDay(sale.Timestamp, *day) {
				sale.Items = append([]model.SaleItem(nil), sale.Items...)
				out = append(out, sale)
			}
		}
	})
	return out
}

// BuildItems resolves structured command items against the catalog,
// snapshotting name, price, piece cost, and byproduct flag at add-time.
// Unknown product ids are dropped.
func (s *saleService) BuildItems(_ context.Context, items []model.ParsedCommandItem) []model.SaleItem {
	var out []model.SaleItem
	s.store.View(func(st *store.State) {
		for _, ci := range items {
			product := st.Product(ci.ProductID)
			if product == nil {
				log.Warn().Str("product_id", ci.ProductID).Msg("command item references unknown product, dropped")
				continue
			}

			price := product.Price
			stockCost := product.StockCost
			variantName := ""
			if ci.VariantID != "" {
				if v := product.FindVariant(ci.VariantID); v != nil {
					price = v.Price
					variantName = v.Name
					if v.StockCost != nil {
						stockCost = v.StockCost
					}
				}
			}

			out = append(out, model.SaleItem{
				ID:               uuid.NewString(),
				ProductID:        product.ID,
				ProductName:      product.Name,
				VariantName:      variantName,
				Quantity:         ci.Quantity,
				UnitPrice:        price,
				Total:            price.Mul(ci.Quantity),
				StockCostPerUnit: stockCost,
				IsByproduct:      product.Byproduct(),
			})
		}
	})
	return out
}

// ── Drafts ────────────────────────────────────────────────────────────────────
// Drafts live outside the Sale collection until explicitly saved; they ride
// along in the snapshot so a minimized order survives a restart.

func (s *saleService) StashDraft(_ context.Context, draft model.SaleDraft) {
	if draft.Timestamp == 0 {
		draft.Timestamp = time.Now().UnixMilli()
	}
	s.store.Update(func(st *store.State) {
		st.Drafts = append(st.Drafts, draft)
	})
}

func (s *saleService) Drafts(_ context.Context) []model.SaleDraft {
	var out []model.SaleDraft
	s.store.View(func(st *store.State) {
		out = append([]model.SaleDraft(nil), st.Drafts...)
	})
	return out
}

var ErrDraftNotFound = errors.New("borrador no encontrado")

// ResumeDraft removes and returns the draft at index.
func (s *saleService) ResumeDraft(_ context.Context, index int) (*model.SaleDraft, error) {
	var (
		out model.SaleDraft
		ok  bool
	)
	s.store.Update(func(st *store.State) {
		if index < 0 || index >= len(st.Drafts) {
			return
		}
		out, ok = st.Drafts[index], true
		st.Drafts = append(st.Drafts[:index], st.Drafts[index+1:]...)
	})
	if !ok {
		return nil, ErrDraftNotFound
	}
	return &out, nil
}
