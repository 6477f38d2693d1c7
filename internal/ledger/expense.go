package ledger

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pennywise/backend/internal/models"
	"github.com/pennywise/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ExpenseParams are the user-settable fields of an expense.
type ExpenseParams struct {
	Name       string
	Amount     decimal.Decimal
	CategoryID uuid.UUID
	Date       time.Time
	Note       string
}

func (p ExpenseParams) validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("%w: name must be set", ErrInvalidExpenseData)
	}

	if !p.Amount.IsPositive() {
		return fmt.Errorf("%w: amount must be a positive number", ErrInvalidExpenseData)
	}

	if p.CategoryID == uuid.Nil {
		return fmt.Errorf("%w: categoryId must be set", ErrInvalidExpenseData)
	}

	return nil
}

// CreateExpense records a new expense and folds its amount into the
// category, budget and history totals of the month of its date.
//
// The category the user picked only serves as the template: the expense is
// always attached to the category of the same name in its own month, which
// is created on first use. This also holds when the expense is backdated or
// forward-dated into a month that has no aggregates yet.
func (e *Engine) CreateExpense(userID uuid.UUID, params ExpenseParams) (expense models.Expense, err error) {
	defer func() { countMutation("create", err) }()

	if err = params.validate(); err != nil {
		return models.Expense{}, err
	}

	date := params.Date
	if date.IsZero() {
		date = e.now()
	}
	month := types.MonthOf(date.In(time.UTC))

	err = e.db.Transaction(func(tx *gorm.DB) error {
		var template models.Category
		err := tx.Where("id = ? AND user_id = ?", params.CategoryID, userID).First(&template).Error
		if err != nil {
			return err
		}

		budget, err := e.budgetForMonth(tx, userID, month)
		if err != nil {
			return err
		}

		history, created, err := e.historyForMonth(tx, userID, month, params.Amount)
		if err != nil {
			return err
		}
		if !created {
			if _, err := e.adjustHistoryTotal(tx, history.ID, params.Amount); err != nil {
				return err
			}
		}

		category, created, err := e.categoryForMonth(tx, template, month, params.Amount)
		if err != nil {
			return err
		}
		if !created {
			if err := e.addToCategoryTotal(tx, category.ID, params.Amount); err != nil {
				return err
			}
		}

		if err := e.addToBudgetTotal(tx, budget.ID, params.Amount); err != nil {
			return err
		}

		expense = models.Expense{
			UserID:     userID,
			Name:       params.Name,
			Amount:     params.Amount,
			CategoryID: category.ID,
			BudgetID:   budget.ID,
			HistoryID:  history.ID,
			Date:       date,
			Note:       params.Note,
		}

		err = tx.Create(&expense).Error
		if err != nil {
			return err
		}

		err = tx.First(&expense, "id = ?", expense.ID).Error
		if err != nil {
			return fmt.Errorf("%w: %s", ErrExpenseCreateFailed, err)
		}

		return nil
	})
	if err != nil {
		return models.Expense{}, err
	}

	return expense, nil
}

// UpdateExpense changes an expense and moves its amount between the affected
// aggregate rows.
//
// When the date stays within the month, only the amount difference is
// applied. When the date moves to another month, the old month's category,
// budget and history lose the old amount and the new month's aggregates,
// created lazily when absent, gain the new one.
func (e *Engine) UpdateExpense(id, userID uuid.UUID, params ExpenseParams) (expense models.Expense, err error) {
	defer func() { countMutation("update", err) }()

	if err = params.validate(); err != nil {
		return models.Expense{}, err
	}
	if params.Date.IsZero() {
		return models.Expense{}, fmt.Errorf("%w: date must be a valid calendar date", ErrInvalidExpenseData)
	}

	err = e.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Where("id = ? AND user_id = ?", id, userID).First(&expense).Error
		if err != nil {
			return err
		}

		var template models.Category
		err = tx.Where("id = ? AND user_id = ?", params.CategoryID, userID).First(&template).Error
		if err != nil {
			return err
		}

		oldMonth := types.MonthOf(expense.Date)
		newMonth := types.MonthOf(params.Date.In(time.UTC))

		if oldMonth.Equal(newMonth) {
			err = e.moveWithinMonth(tx, &expense, template, params)
		} else {
			err = e.moveAcrossMonths(tx, &expense, template, params, newMonth)
		}
		if err != nil {
			return err
		}

		return tx.First(&expense, "id = ?", id).Error
	})
	if err != nil {
		return models.Expense{}, err
	}

	return expense, nil
}

// moveWithinMonth applies an update that keeps the expense in its month.
// Budget and history rows stay the same, only their totals change by the
// amount difference. The category may change when the name differs.
func (e *Engine) moveWithinMonth(tx *gorm.DB, expense *models.Expense, template models.Category, params ExpenseParams) error {
	month := types.MonthOf(expense.Date)
	diff := params.Amount.Sub(expense.Amount)

	category, created, err := e.categoryForMonth(tx, template, month, params.Amount)
	if err != nil {
		return err
	}

	switch {
	case category.ID == expense.CategoryID:
		// Same category, only the amount changed
		if err := e.addToCategoryTotal(tx, category.ID, diff); err != nil {
			return err
		}
	default:
		// The expense moved to a different category in the same month
		if err := e.addToCategoryTotal(tx, expense.CategoryID, expense.Amount.Neg()); err != nil {
			return err
		}
		if !created {
			if err := e.addToCategoryTotal(tx, category.ID, params.Amount); err != nil {
				return err
			}
		}
	}

	if err := e.addToBudgetTotal(tx, expense.BudgetID, diff); err != nil {
		return err
	}

	// The history total stays positive here since it covers at least this
	// expense's new amount
	if _, err := e.adjustHistoryTotal(tx, expense.HistoryID, diff); err != nil {
		return err
	}

	return e.persistExpense(tx, expense, models.Expense{
		Name:       params.Name,
		Amount:     params.Amount,
		CategoryID: category.ID,
		BudgetID:   expense.BudgetID,
		HistoryID:  expense.HistoryID,
		Date:       params.Date,
		Note:       params.Note,
	})
}

// moveAcrossMonths applies an update that moves the expense into another
// month: the old month's aggregates lose the old amount, the new month's
// aggregates gain the new one.
func (e *Engine) moveAcrossMonths(tx *gorm.DB, expense *models.Expense, template models.Category, params ExpenseParams, newMonth types.Month) error {
	oldAmount := expense.Amount

	if err := e.addToCategoryTotal(tx, expense.CategoryID, oldAmount.Neg()); err != nil {
		return err
	}
	if err := e.addToBudgetTotal(tx, expense.BudgetID, oldAmount.Neg()); err != nil {
		return err
	}

	budget, err := e.budgetForMonth(tx, expense.UserID, newMonth)
	if err != nil {
		return err
	}
	if err := e.addToBudgetTotal(tx, budget.ID, params.Amount); err != nil {
		return err
	}

	history, created, err := e.historyForMonth(tx, expense.UserID, newMonth, params.Amount)
	if err != nil {
		return err
	}
	if !created {
		if _, err := e.adjustHistoryTotal(tx, history.ID, params.Amount); err != nil {
			return err
		}
	}

	category, created, err := e.categoryForMonth(tx, template, newMonth, params.Amount)
	if err != nil {
		return err
	}
	if !created {
		if err := e.addToCategoryTotal(tx, category.ID, params.Amount); err != nil {
			return err
		}
	}

	// The old month may end up without any expenses, in which case its
	// history row is pruned
	if _, err := e.adjustHistoryTotal(tx, expense.HistoryID, oldAmount.Neg()); err != nil {
		return err
	}

	return e.persistExpense(tx, expense, models.Expense{
		Name:       params.Name,
		Amount:     params.Amount,
		CategoryID: category.ID,
		BudgetID:   budget.ID,
		HistoryID:  history.ID,
		Date:       params.Date,
		Note:       params.Note,
	})
}

// persistExpense writes all mutable fields of the expense in a single update.
func (e *Engine) persistExpense(tx *gorm.DB, expense *models.Expense, fields models.Expense) error {
	return tx.Model(expense).
		Select("Name", "Amount", "CategoryID", "BudgetID", "HistoryID", "Date", "Note").
		Updates(fields).Error
}

// DeleteExpense removes an expense and rolls its amount out of its category,
// budget and history totals. The history row is pruned when its total drops
// to zero.
func (e *Engine) DeleteExpense(id, userID uuid.UUID) (err error) {
	defer func() { countMutation("delete", err) }()

	err = e.db.Transaction(func(tx *gorm.DB) error {
		var expense models.Expense
		err := tx.Where("id = ? AND user_id = ?", id, userID).First(&expense).Error
		if err != nil {
			return err
		}

		err = tx.Delete(&models.Expense{}, "id = ?", expense.ID).Error
		if err != nil {
			return err
		}

		if err := e.addToCategoryTotal(tx, expense.CategoryID, expense.Amount.Neg()); err != nil {
			return err
		}
		if err := e.addToBudgetTotal(tx, expense.BudgetID, expense.Amount.Neg()); err != nil {
			return err
		}
		if _, err := e.adjustHistoryTotal(tx, expense.HistoryID, expense.Amount.Neg()); err != nil {
			return err
		}

		return nil
	})

	return err
}
