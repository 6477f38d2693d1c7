// Package ledger keeps the expense ledger and its materialized aggregates
// consistent.
//
// Every expense references a category, a budget and a history row for the
// month of its date. All three carry a materialized total over the expenses
// pointing at them. The engine is the only writer for expenses and totals:
// each mutation runs in a single database transaction and changes totals
// exclusively with relative updates (total_expenses = total_expenses + ?),
// so concurrent mutations on the same row cannot lose updates.
package ledger

import (
	"errors"
	"time"

	"github.com/pennywise/backend/internal/types"
	"gorm.io/gorm"
)

// Errors reported by the engine. Read errors for missing resources are
// reported by the models package instead.
var (
	ErrInvalidExpenseData   = errors.New("the expense data is invalid")
	ErrInvalidCategoryData  = errors.New("the category data is invalid")
	ErrExpenseCreateFailed  = errors.New("the expense was not found after creation")
	ErrCategoryCreateFailed = errors.New("the category was not found after creation")
	ErrBudgetCreateFailed   = errors.New("the budget was not found after creation")
	ErrHistoryCreateFailed  = errors.New("the history entry was not found after creation")
	ErrCategoryUpdateFailed = errors.New("the category total could not be updated")
	ErrBudgetUpdateFailed   = errors.New("the budget total could not be updated")
	ErrHistoryUpdateFailed  = errors.New("the history total could not be updated")
)

// Engine executes all mutations of the expense ledger.
type Engine struct {
	db  *gorm.DB
	now func() time.Time
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock replaces the wall clock of the engine. Tests use this to
// simulate month boundaries deterministically.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// CurrentMonth returns the month of the engine's clock. Callers that scope
// data to "now", like the default category seeding, must use this instead of
// the wall clock so they follow an injected test clock.
func (e *Engine) CurrentMonth() types.Month {
	return types.MonthOf(e.now().In(time.UTC))
}

// New returns an Engine operating on the passed database.
func New(db *gorm.DB, options ...Option) *Engine {
	e := &Engine{
		db: db,
		now: func() time.Time {
			return time.Now().In(time.UTC)
		},
	}

	for _, option := range options {
		option(e)
	}

	return e
}
