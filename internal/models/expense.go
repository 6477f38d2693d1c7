package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Expense is a single purchase of a user. It is the source of truth that the
// three materialized aggregates (category, budget, history totals) are
// derived from.
//
// The referenced category, budget and history rows always belong to the same
// user and the same month as the expense's date. The ledger package is the
// only place that creates or modifies expenses, so it can keep the
// aggregates in sync.
type Expense struct {
	DefaultModel
	UserID     uuid.UUID       `json:"userId" gorm:"index" example:"52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"`
	User       User            `json:"-"`
	Name       string          `json:"name" example:"Weekly shop" default:""`
	Amount     decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,2)" example:"14.03"`
	CategoryID uuid.UUID       `json:"categoryId" gorm:"index" example:"dafd9a74-6aeb-46b9-9f5a-cfca624fea85"`
	Category   Category        `json:"-"`
	BudgetID   uuid.UUID       `json:"budgetId" example:"1e777d24-3f5b-4c43-8000-04f65f895578"`
	Budget     Budget          `json:"-"`
	HistoryID  uuid.UUID       `json:"historyId" example:"d430d7c3-d14c-4712-9336-ee56965a6673"`
	History    History         `json:"-"`
	Date       time.Time       `json:"date" example:"2024-03-14T00:00:00Z"` // Day the expense was made. Time of day is only used for sorting
	Note       string          `json:"note" example:"Lunch" default:""`
}

// AfterFind enforces dates to be in UTC, see DefaultModel.AfterFind.
func (e *Expense) AfterFind(tx *gorm.DB) (err error) {
	err = e.DefaultModel.AfterFind(tx)
	if err != nil {
		return err
	}

	e.Date = e.Date.In(time.UTC)
	return
}

// BeforeSave
//   - sets the timezone for the Date to UTC
//   - trims whitespace from string fields
func (e *Expense) BeforeSave(_ *gorm.DB) (err error) {
	e.Name = strings.TrimSpace(e.Name)
	e.Note = strings.TrimSpace(e.Note)

	if e.Date.IsZero() {
		e.Date = time.Now().In(time.UTC)
	} else {
		e.Date = e.Date.In(time.UTC)
	}

	return
}
