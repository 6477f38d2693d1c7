package models

import (
	"github.com/google/uuid"
	"github.com/pennywise/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// History is the monthly rollup of a user's total spend, independent of the
// category breakdown.
//
// A history row only exists while its total is positive: months without
// activity are pruned instead of being kept as empty records. The ledger
// package deletes the row when its total drops to zero.
type History struct {
	DefaultModel
	UserID        uuid.UUID       `json:"userId" gorm:"uniqueIndex:history_user_month" example:"52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"`
	User          User            `json:"-"`
	Name          string          `json:"name" example:"March"` // Human readable month label
	Month         types.Month     `json:"month" gorm:"uniqueIndex:history_user_month" example:"2024-03-01T00:00:00.000000Z"`
	TotalExpenses decimal.Decimal `json:"totalExpenses" gorm:"type:DECIMAL(20,2)" example:"1133.70" default:"0"`
}

func (h *History) BeforeSave(_ *gorm.DB) error {
	if h.Name == "" {
		h.Name = h.Month.Name()
	}
	return nil
}
