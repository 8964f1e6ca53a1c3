package service

import (
	"context"
	"fmt"
	"time"

	"github.com/luix3mo90/Deli-Bross-Manager/internal/model"
	"github.com/luix3mo90/Deli-Bross-Manager/internal/store"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// ProductionService applies kitchen production rules: deduct the raw-input
// recipe, credit the output, and log a StockLog for the piece ledger.
type ProductionService interface {
	Rules(ctx context.Context) []model.KitchenProductionRule
	Apply(ctx context.Context, rule model.KitchenProductionRule, multiplier decimal.Decimal, startAt *time.Time) (*model.StockLog, error)
	ApplyByName(ctx context.Context, ruleName string, multiplier decimal.Decimal, startAt *time.Time) (*model.StockLog, error)
}

type productionService struct {
	store *store.Store
	rules []model.KitchenProductionRule
}

func NewProductionService(st *store.Store, rules []model.KitchenProductionRule) ProductionService {
	return &productionService{store: st, rules: rules}
}

func (s *productionService) Rules(_ context.Context) []model.KitchenProductionRule {
	return append([]model.KitchenProductionRule(nil), s.rules...)
}

func (s *productionService) ApplyByName(ctx context.Context, ruleName string, multiplier decimal.Decimal, startAt *time.Time) (*model.StockLog, error) {
	for _, r := range s.rules {
		if r.Name == ruleName {
			return s.Apply(ctx, r, multiplier, startAt)
		}
	}
	return nil, fmt.Errorf("regla de producción %q no existe", ruleName)
}

// Apply runs one production batch. Multiplier may be fractional (partial
// batch) but must be positive. Missing inventory ids deduct nothing: the
// ingredient is treated as untracked, not as a failure.
//
// startAt is a wall-clock hint, not a date: only its time-of-day survives,
// re-anchored on the current calendar day. Batches always land in today's
// piece ledger; the hint just says when the fryer actually started.
func (s *productionService) Apply(_ context.Context, rule model.KitchenProductionRule, multiplier decimal.Decimal, startAt *time.Time) (*model.StockLog, error) {
	if !multiplier.IsPositive() {
		return nil, fmt.Errorf("multiplicador inválido: %s", multiplier)
	}

	start := time.Now()
	if startAt != nil {
		start = clockOnToday(*startAt)
	}
	target := start.Add(time.Duration(rule.CookingTimeMinutes) * time.Minute)

	var logged *model.StockLog
	s.store.Update(func(st *store.State) {
		for _, input := range rule.Inputs {
			if !st.DeductInventory(input.InventoryID, input.Quantity.Mul(multiplier)) {
				log.Warn().Str("inventory_id", input.InventoryID).Str("rule", rule.Name).
					Msg("production input not tracked in inventory, skipping")
			}
		}

		if rule.Outputs.InventoryID != "" {
			if !st.CreditInventory(rule.Outputs.InventoryID, rule.Outputs.Quantity.Mul(multiplier)) {
				log.Warn().Str("inventory_id", rule.Outputs.InventoryID).Str("rule", rule.Name).
					Msg("production output not tracked in inventory, skipping")
			}
		}

		chickens := rule.Outputs.StockLogChicken.Mul(multiplier)
		if rule.Outputs.StockLogChicken.IsPositive() || rule.CookingTimeMinutes > 0 {
			entry := model.StockLog{
				ID:                   uuid.NewString(),
				Timestamp:            start,
				TargetCompletionTime: &target,
				RuleName:             rule.Name,
				QuantityChickens:     chickens,
				TotalPieces:          chickens.Mul(decimal.NewFromInt(model.PiecesPerChicken)),
			}
			st.StockLogs = append([]model.StockLog{entry}, st.StockLogs...)
			logged = &entry
		}
	})

	if logged != nil {
		log.Info().Str("rule", rule.Name).Str("multiplier", multiplier.String()).
			Str("pieces", logged.TotalPieces.String()).Time("ready_at", target).
			Msg("production batch logged")
	}
	return logged, nil
}

// clockOnToday keeps t's time-of-day but re-anchors it on the current
// calendar date. Kitchen stock replay is day-windowed, so a batch stamped on
// any other date would never show up in today's derived stock.
func clockOnToday(t time.Time) time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.Local)
}

// StartOfDayClock parses an "HH:MM" wall-clock string as a timestamp on
// today's calendar date, matching how the kitchen backdates a batch that was
// already in the fryer when it got logged.
func StartOfDayClock(clock string) (time.Time, error) {
	t, err := time.ParseInLocation("15:04", clock, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("hora inválida %q: %w", clock, err)
	}
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), t.Hour(), t.Minute(), 0, 0, time.Local), nil
}
