package ledger

import (
	"errors"
	"time"

	"github.com/pennywise/backend/internal/models"
	"github.com/pennywise/backend/internal/types"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PropagateRecurringCategories clones the previous month's categories into
// the new month for every user who has none yet, carrying over the budget
// target, note and icon but starting the totals at zero.
//
// It is meant to be called once per day and no-ops unless the calendar date
// is the first of a month. Users are handled in separate transactions so one
// failing user does not block the others; the guard on "already has
// categories for the month" makes re-runs idempotent.
func (e *Engine) PropagateRecurringCategories() error {
	now := e.now().In(time.UTC)
	if now.Day() != 1 {
		log.Debug().Msg("not the first of the month, skipping category propagation")
		return nil
	}

	month := types.MonthOf(now)
	previous := month.Previous()

	var users []models.User
	err := e.db.Find(&users).Error
	if err != nil {
		return err
	}

	var errs []error
	for _, user := range users {
		err := e.propagateUserCategories(user, month, previous)
		if err != nil {
			log.Error().Err(err).Str("user", user.ID.String()).Msg("category propagation failed")
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

func (e *Engine) propagateUserCategories(user models.User, month, previous types.Month) error {
	return e.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		err := tx.Model(&models.Category{}).
			Where(&models.Category{UserID: user.ID, Month: month}).
			Count(&count).Error
		if err != nil {
			return err
		}
		if count > 0 {
			return nil
		}

		var categories []models.Category
		err = tx.
			Where(&models.Category{UserID: user.ID, Month: previous}).
			Order("`order` ASC").
			Find(&categories).Error
		if err != nil {
			return err
		}

		for _, template := range categories {
			category := models.Category{
				UserID:        user.ID,
				Name:          template.Name,
				Month:         month,
				Budget:        template.Budget,
				TotalExpenses: decimal.Zero,
				Note:          template.Note,
				Icon:          template.Icon,
				Order:         template.Order,
			}

			if err := tx.Create(&category).Error; err != nil {
				return err
			}
		}

		if len(categories) > 0 {
			log.Info().
				Str("user", user.ID.String()).
				Str("month", month.String()).
				Int("categories", len(categories)).
				Msg("propagated recurring categories")
		}

		return nil
	})
}
