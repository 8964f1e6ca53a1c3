package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ApplyProductionRequest runs one kitchen production rule. Multiplier may be
// fractional for partial batches. StartClock ("HH:MM") is the simple form for
// backdating a batch within the day; StartAt accepts a full timestamp, of
// which only the time-of-day is kept.
type ApplyProductionRequest struct {
	RuleName   string          `json:"ruleName" validate:"required"`
	Multiplier decimal.Decimal `json:"multiplier" validate:"required"`
	StartClock string          `json:"horaInicio,omitempty"`
	StartAt    *time.Time      `json:"startAt,omitempty"`
}
