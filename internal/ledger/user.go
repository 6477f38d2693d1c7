package ledger

import (
	"github.com/google/uuid"
	"github.com/pennywise/backend/internal/models"
	"github.com/pennywise/backend/internal/types"
	"gorm.io/gorm"
)

// defaultCategories is the starter set every new user gets for the month
// they register in.
var defaultCategories = []models.Category{
	{Name: "Groceries", Icon: "shopping-cart"},
	{Name: "Housing", Icon: "home"},
	{Name: "Transport", Icon: "bus"},
	{Name: "Entertainment", Icon: "film"},
	{Name: "Health", Icon: "heart"},
}

// SeedDefaultCategories creates the default category set for the user's
// month. It is a no-op when the user already has categories for the month,
// so calling it twice is safe.
func (e *Engine) SeedDefaultCategories(userID uuid.UUID, month types.Month) error {
	return e.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		err := tx.Model(&models.Category{}).
			Where(&models.Category{UserID: userID, Month: month}).
			Count(&count).Error
		if err != nil {
			return err
		}
		if count > 0 {
			return nil
		}

		for i, template := range defaultCategories {
			category := models.Category{
				UserID: userID,
				Name:   template.Name,
				Icon:   template.Icon,
				Month:  month,
				Order:  uint(i),
			}

			if err := tx.Create(&category).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

// DeleteCategory removes a category together with its expenses and rolls
// their summed amount out of the month's budget and history totals.
func (e *Engine) DeleteCategory(id, userID uuid.UUID) (err error) {
	defer func() { countMutation("delete_category", err) }()

	err = e.db.Transaction(func(tx *gorm.DB) error {
		var category models.Category
		err := tx.Where("id = ? AND user_id = ?", id, userID).First(&category).Error
		if err != nil {
			return err
		}

		if category.TotalExpenses.IsPositive() {
			var budget models.Budget
			err = tx.Where(&models.Budget{UserID: userID, Month: category.Month}).First(&budget).Error
			if err != nil {
				return err
			}
			if err := e.addToBudgetTotal(tx, budget.ID, category.TotalExpenses.Neg()); err != nil {
				return err
			}

			var history models.History
			err = tx.Where(&models.History{UserID: userID, Month: category.Month}).First(&history).Error
			if err != nil {
				return err
			}
			if _, err := e.adjustHistoryTotal(tx, history.ID, category.TotalExpenses.Neg()); err != nil {
				return err
			}
		}

		err = tx.Where(&models.Expense{CategoryID: category.ID}).Delete(&models.Expense{}).Error
		if err != nil {
			return err
		}

		return tx.Delete(&models.Category{}, "id = ?", category.ID).Error
	})

	return err
}

// DeleteUser removes a user and everything they own in a single
// transaction. Notifying the user by email is the caller's business and
// explicitly not coupled to the outcome of the deletion.
func (e *Engine) DeleteUser(userID uuid.UUID) (err error) {
	defer func() { countMutation("delete_user", err) }()

	// Referencing models are deleted before the models they reference
	err = e.db.Transaction(func(tx *gorm.DB) error {
		var user models.User
		err := tx.First(&user, "id = ?", userID).Error
		if err != nil {
			return err
		}

		for _, model := range []any{
			models.Expense{},
			models.History{},
			models.Category{},
			models.Budget{},
		} {
			err := tx.Where("user_id = ?", userID).Delete(&model).Error
			if err != nil {
				return err
			}
		}

		return tx.Delete(&models.User{}, "id = ?", userID).Error
	})

	return err
}
