package dto

import (
	"github.com/luix3mo90/Deli-Bross-Manager/internal/model"
)

// ExecuteCommandRequest carries one structured intent produced by the
// external interpreter. The backend trusts the structure, not the text.
type ExecuteCommandRequest struct {
	Command model.ParsedCommand `json:"command" validate:"required"`
}

// CommandResult reports what a command execution produced. Only the field
// matching the command type is set.
type CommandResult struct {
	Type     model.CommandType `json:"type"`
	Message  string            `json:"message"`
	Sale     *model.Sale       `json:"sale,omitempty"`
	Expense  *model.Expense    `json:"expense,omitempty"`
	StockLog *model.StockLog   `json:"stockLog,omitempty"`
}
