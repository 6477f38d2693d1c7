package models_test

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/pennywise/backend/internal/models"
	"github.com/pennywise/backend/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestUserEmailNormalized() {
	user := models.User{Email: "  Jane.Doe@Example.COM "}
	require.Nil(suite.T(), models.DB.Create(&user).Error)

	assert.Equal(suite.T(), "jane.doe@example.com", user.Email)
}

func (suite *TestSuiteStandard) TestCategoryTrimWhitespace() {
	user := suite.createTestUser()

	category := models.Category{
		UserID: user.ID,
		Name:   "\t Groceries   ",
		Note:   " Some more whitespace in the notes    ",
		Icon:   " shopping-cart ",
		Month:  types.NewMonth(2024, 3),
	}
	require.Nil(suite.T(), models.DB.Create(&category).Error)

	assert.Equal(suite.T(), "Groceries", category.Name)
	assert.Equal(suite.T(), strings.TrimSpace(" Some more whitespace in the notes    "), category.Note)
	assert.Equal(suite.T(), "shopping-cart", category.Icon)
}

func (suite *TestSuiteStandard) TestHistoryNameDefaultsToMonthLabel() {
	user := suite.createTestUser()

	history := models.History{UserID: user.ID, Month: types.NewMonth(2024, 3)}
	require.Nil(suite.T(), models.DB.Create(&history).Error)

	assert.Equal(suite.T(), "March", history.Name)

	named := models.History{UserID: user.ID, Month: types.NewMonth(2024, 4), Name: "Custom"}
	require.Nil(suite.T(), models.DB.Create(&named).Error)
	assert.Equal(suite.T(), "Custom", named.Name)
}

func (suite *TestSuiteStandard) TestExpenseDateUTC() {
	user := suite.createTestUser()
	category := models.Category{UserID: user.ID, Name: "Groceries", Month: types.NewMonth(2024, 3)}
	require.Nil(suite.T(), models.DB.Create(&category).Error)
	budget := models.Budget{UserID: user.ID, Month: types.NewMonth(2024, 3)}
	require.Nil(suite.T(), models.DB.Create(&budget).Error)
	history := models.History{UserID: user.ID, Month: types.NewMonth(2024, 3)}
	require.Nil(suite.T(), models.DB.Create(&history).Error)

	berlin := time.FixedZone("CET", 3600)

	expense := models.Expense{
		UserID:     user.ID,
		Name:       "Shop",
		Amount:     decimal.NewFromInt(1),
		CategoryID: category.ID,
		BudgetID:   budget.ID,
		HistoryID:  history.ID,
		Date:       time.Date(2024, 3, 14, 12, 0, 0, 0, berlin),
	}
	require.Nil(suite.T(), models.DB.Create(&expense).Error)

	assert.Equal(suite.T(), time.UTC, expense.Date.Location())

	var reread models.Expense
	require.Nil(suite.T(), models.DB.First(&reread, "id = ?", expense.ID).Error)
	assert.Equal(suite.T(), time.UTC, reread.Date.Location())
}

func (suite *TestSuiteStandard) TestPasswordHashNotSerialized() {
	user := models.User{Email: "jane@example.com", PasswordHash: "secret-hash"}
	require.Nil(suite.T(), models.DB.Create(&user).Error)

	data, err := json.Marshal(user)
	require.Nil(suite.T(), err)
	assert.NotContains(suite.T(), string(data), "secret-hash")
}

func (suite *TestSuiteStandard) TestExport() {
	user := suite.createTestUser()
	other := suite.createTestUser()

	require.Nil(suite.T(), models.DB.Create(&models.Category{UserID: user.ID, Name: "Groceries", Month: types.NewMonth(2024, 3)}).Error)
	require.Nil(suite.T(), models.DB.Create(&models.Category{UserID: other.ID, Name: "Groceries", Month: types.NewMonth(2024, 3)}).Error)

	for _, exporter := range models.Registry {
		export, err := exporter.Export(user.ID)
		require.Nil(suite.T(), err, "exporting %s failed", exporter.Self())

		var rows []map[string]any
		require.Nil(suite.T(), json.Unmarshal(export, &rows))

		// Only the user's own rows are exported
		for _, row := range rows {
			assert.Equal(suite.T(), user.ID.String(), row["userId"], "%s export leaked a foreign row", exporter.Self())
		}

		if exporter.Self() == "Category" {
			assert.Len(suite.T(), rows, 1)
		}
	}
}
