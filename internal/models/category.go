package models

import (
	"strings"

	"github.com/google/uuid"
	"github.com/pennywise/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Category represents a spending bucket of a user, scoped to one month.
//
// TotalExpenses is a materialized sum over all expenses pointing at the
// category. It is only ever changed with relative updates, see the ledger
// package.
type Category struct {
	DefaultModel
	UserID        uuid.UUID       `json:"userId" gorm:"uniqueIndex:category_user_month_name" example:"52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"`
	User          User            `json:"-"`
	Name          string          `json:"name" gorm:"uniqueIndex:category_user_month_name" example:"Groceries" default:""`
	Month         types.Month     `json:"month" gorm:"uniqueIndex:category_user_month_name" example:"2024-03-01T00:00:00.000000Z"`
	Budget        decimal.Decimal `json:"budget" gorm:"type:DECIMAL(20,2)" example:"300" default:"0"`          // Spending target for the month
	TotalExpenses decimal.Decimal `json:"totalExpenses" gorm:"type:DECIMAL(20,2)" example:"133.70" default:"0"` // Materialized sum of the category's expenses
	Note          string          `json:"note" example:"Supermarket and farmers market" default:""`
	Icon          string          `json:"icon" example:"shopping-cart" default:""`
	Order         uint            `json:"order" example:"3" default:"0"` // Display order, monotonic per user and month
}

func (c *Category) BeforeSave(_ *gorm.DB) error {
	c.Name = strings.TrimSpace(c.Name)
	c.Note = strings.TrimSpace(c.Note)
	c.Icon = strings.TrimSpace(c.Icon)
	return nil
}

// Expenses returns all expenses currently pointing at the category.
func (c Category) Expenses(db *gorm.DB) ([]Expense, error) {
	var expenses []Expense
	err := db.Where(&Expense{CategoryID: c.ID}).Order("date ASC").Find(&expenses).Error
	if err != nil {
		return nil, err
	}

	return expenses, nil
}
