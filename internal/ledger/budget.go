package ledger

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/pennywise/backend/internal/models"
	"github.com/pennywise/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// budgetForMonth resolves the budget row for the user's month, creating it
// with zero income and zero expenses when the month does not have one yet.
func (e *Engine) budgetForMonth(tx *gorm.DB, userID uuid.UUID, month types.Month) (models.Budget, error) {
	var budget models.Budget
	err := tx.
		Where(&models.Budget{UserID: userID, Month: month}).
		First(&budget).Error
	if err == nil {
		return budget, nil
	}
	if !errors.Is(err, models.ErrResourceNotFound) {
		return models.Budget{}, err
	}

	budget = models.Budget{
		UserID:        userID,
		Month:         month,
		TotalIncome:   decimal.Zero,
		TotalExpenses: decimal.Zero,
	}

	err = tx.Create(&budget).Error
	if err != nil {
		return models.Budget{}, err
	}

	err = tx.First(&budget, "id = ?", budget.ID).Error
	if err != nil {
		return models.Budget{}, fmt.Errorf("%w: %s", ErrBudgetCreateFailed, err)
	}

	return budget, nil
}

// addToBudgetTotal applies a relative update to a budget's expense total.
func (e *Engine) addToBudgetTotal(tx *gorm.DB, id uuid.UUID, delta decimal.Decimal) error {
	if delta.IsZero() {
		return nil
	}

	res := tx.Model(&models.Budget{}).
		Where("id = ?", id).
		UpdateColumn("total_expenses", gorm.Expr("total_expenses + ?", delta))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: no budget with id %s", ErrBudgetUpdateFailed, id)
	}

	return nil
}

// BudgetForMonth returns the user's budget for the month, lazily creating it
// when it does not exist yet.
func (e *Engine) BudgetForMonth(userID uuid.UUID, month types.Month) (models.Budget, error) {
	var budget models.Budget
	err := e.db.Transaction(func(tx *gorm.DB) error {
		var err error
		budget, err = e.budgetForMonth(tx, userID, month)
		return err
	})

	return budget, err
}

// SetBudgetIncome sets the income of a budget to an absolute amount.
func (e *Engine) SetBudgetIncome(id, userID uuid.UUID, income decimal.Decimal) (models.Budget, error) {
	var budget models.Budget
	err := e.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Where("id = ? AND user_id = ?", id, userID).First(&budget).Error
		if err != nil {
			return err
		}

		err = tx.Model(&budget).UpdateColumn("total_income", income).Error
		if err != nil {
			return err
		}

		return tx.First(&budget, "id = ?", id).Error
	})

	return budget, err
}
