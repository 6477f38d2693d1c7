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

// historyForMonth resolves the history rollup row for the user's month.
//
// When the row is created, its total starts at seed and the second return
// value is true. When it already exists, seed is ignored and the caller
// applies its delta itself via adjustHistoryTotal.
func (e *Engine) historyForMonth(tx *gorm.DB, userID uuid.UUID, month types.Month, seed decimal.Decimal) (models.History, bool, error) {
	var history models.History
	err := tx.
		Where(&models.History{UserID: userID, Month: month}).
		First(&history).Error
	if err == nil {
		return history, false, nil
	}
	if !errors.Is(err, models.ErrResourceNotFound) {
		return models.History{}, false, err
	}

	history = models.History{
		UserID:        userID,
		Month:         month,
		Name:          month.Name(),
		TotalExpenses: seed,
	}

	err = tx.Create(&history).Error
	if err != nil {
		return models.History{}, false, err
	}

	err = tx.First(&history, "id = ?", history.ID).Error
	if err != nil {
		return models.History{}, false, fmt.Errorf("%w: %s", ErrHistoryCreateFailed, err)
	}

	return history, true, nil
}

// adjustHistoryTotal applies a relative update to a history row's total.
//
// A history row only exists while its total is positive: when the update
// makes the total drop to zero or below, the row is deleted and deleted is
// returned as true. Callers treat that as the month having no history, not
// as an error.
func (e *Engine) adjustHistoryTotal(tx *gorm.DB, id uuid.UUID, delta decimal.Decimal) (deleted bool, err error) {
	if delta.IsZero() {
		return false, nil
	}

	res := tx.Model(&models.History{}).
		Where("id = ?", id).
		UpdateColumn("total_expenses", gorm.Expr("total_expenses + ?", delta))
	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected == 0 {
		return false, fmt.Errorf("%w: no history entry with id %s", ErrHistoryUpdateFailed, id)
	}

	var history models.History
	err = tx.First(&history, "id = ?", id).Error
	if err != nil {
		return false, err
	}

	if history.TotalExpenses.IsPositive() {
		return false, nil
	}

	err = tx.Delete(&models.History{}, "id = ?", id).Error
	if err != nil {
		return false, err
	}

	return true, nil
}
