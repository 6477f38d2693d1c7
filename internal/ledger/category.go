package ledger

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/pennywise/backend/internal/models"
	"github.com/pennywise/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CategoryParams are the user-settable fields of a category.
type CategoryParams struct {
	Name   string
	Month  types.Month
	Budget decimal.Decimal
	Note   string
	Icon   string
}

// CreateCategory creates a category with a zero total. The month defaults to
// the current month when unset.
func (e *Engine) CreateCategory(userID uuid.UUID, params CategoryParams) (category models.Category, err error) {
	if strings.TrimSpace(params.Name) == "" {
		return models.Category{}, fmt.Errorf("%w: name must be set", ErrInvalidCategoryData)
	}
	if params.Budget.IsNegative() {
		return models.Category{}, fmt.Errorf("%w: the budget must not be negative", ErrInvalidCategoryData)
	}

	month := params.Month
	if month.IsZero() {
		month = e.CurrentMonth()
	}

	err = e.db.Transaction(func(tx *gorm.DB) error {
		order, err := e.nextCategoryOrder(tx, userID, month)
		if err != nil {
			return err
		}

		category = models.Category{
			UserID: userID,
			Name:   params.Name,
			Month:  month,
			Budget: params.Budget,
			Note:   params.Note,
			Icon:   params.Icon,
			Order:  order,
		}

		return tx.Create(&category).Error
	})
	if err != nil {
		return models.Category{}, err
	}

	return category, nil
}

// categoryForMonth resolves the month-scoped category for the template's
// name, creating it when the month does not have it yet.
//
// The template is the category the user picked. When the expense's month
// differs from the template's month, the category of the same name under the
// target month is used instead, carrying over the template's budget, note
// and icon so the metadata survives across months.
//
// When the category is created, its total starts at seed and the second
// return value is true. When it already exists, seed is ignored and the
// caller applies its delta itself.
func (e *Engine) categoryForMonth(tx *gorm.DB, template models.Category, month types.Month, seed decimal.Decimal) (models.Category, bool, error) {
	var category models.Category
	err := tx.
		Where(&models.Category{UserID: template.UserID, Name: template.Name, Month: month}).
		First(&category).Error
	if err == nil {
		return category, false, nil
	}
	if !errors.Is(err, models.ErrResourceNotFound) {
		return models.Category{}, false, err
	}

	order, err := e.nextCategoryOrder(tx, template.UserID, month)
	if err != nil {
		return models.Category{}, false, err
	}

	category = models.Category{
		UserID:        template.UserID,
		Name:          template.Name,
		Month:         month,
		Budget:        template.Budget,
		TotalExpenses: seed,
		Note:          template.Note,
		Icon:          template.Icon,
		Order:         order,
	}

	err = tx.Create(&category).Error
	if err != nil {
		return models.Category{}, false, err
	}

	// Read the row back to surface any store-applied defaults. An empty
	// result here is a storage integrity problem, not a user error.
	err = tx.First(&category, "id = ?", category.ID).Error
	if err != nil {
		return models.Category{}, false, fmt.Errorf("%w: %s", ErrCategoryCreateFailed, err)
	}

	return category, true, nil
}

// nextCategoryOrder returns the display order for a new category, one past
// the highest order in the user's month. The maximum is used rather than the
// row count so orders stay unique after a category in the middle is deleted.
func (e *Engine) nextCategoryOrder(tx *gorm.DB, userID uuid.UUID, month types.Month) (uint, error) {
	var next int64
	err := tx.Model(&models.Category{}).
		Where(&models.Category{UserID: userID, Month: month}).
		Select("COALESCE(MAX(\"order\") + 1, 0)").
		Scan(&next).Error
	if err != nil {
		return 0, err
	}

	return uint(next), nil
}

// addToCategoryTotal applies a relative update to a category's total.
// The addition happens in the storage engine, never in the caller, so two
// concurrent mutations of the same category cannot overwrite each other.
func (e *Engine) addToCategoryTotal(tx *gorm.DB, id uuid.UUID, delta decimal.Decimal) error {
	if delta.IsZero() {
		return nil
	}

	res := tx.Model(&models.Category{}).
		Where("id = ?", id).
		UpdateColumn("total_expenses", gorm.Expr("total_expenses + ?", delta))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: no category with id %s", ErrCategoryUpdateFailed, id)
	}

	return nil
}
