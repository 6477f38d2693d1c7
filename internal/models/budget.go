package models

import (
	"github.com/google/uuid"
	"github.com/pennywise/backend/internal/types"
	"github.com/shopspring/decimal"
)

// Budget represents the income and expense totals of a user for one month.
type Budget struct {
	DefaultModel
	UserID        uuid.UUID       `json:"userId" gorm:"uniqueIndex:budget_user_month" example:"52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"`
	User          User            `json:"-"`
	Month         types.Month     `json:"month" gorm:"uniqueIndex:budget_user_month" example:"2024-03-01T00:00:00.000000Z"`
	TotalIncome   decimal.Decimal `json:"totalIncome" gorm:"type:DECIMAL(20,2)" example:"2317.34" default:"0"`
	TotalExpenses decimal.Decimal `json:"totalExpenses" gorm:"type:DECIMAL(20,2)" example:"1133.70" default:"0"` // Materialized sum of the month's expenses
}
