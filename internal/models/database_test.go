package models_test

import (
	"errors"
	"strings"

	"github.com/pennywise/backend/internal/models"
	"github.com/pennywise/backend/internal/types"
	"github.com/pennywise/backend/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestNotFoundMessageUsesResourceName() {
	err := models.DB.First(&models.Expense{}, "name = ?", "does not exist").Error
	require.NotNil(suite.T(), err)
	assert.True(suite.T(), errors.Is(err, models.ErrResourceNotFound))
	assert.Contains(suite.T(), err.Error(), "expense")

	err = models.DB.First(&models.History{}, "name = ?", "does not exist").Error
	require.NotNil(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "history")
}

func (suite *TestSuiteStandard) TestCategoryNameUniquePerUserAndMonth() {
	user := suite.createTestUser()
	month := types.NewMonth(2024, 3)

	first := models.Category{UserID: user.ID, Name: "Groceries", Month: month}
	require.Nil(suite.T(), models.DB.Create(&first).Error)

	duplicate := models.Category{UserID: user.ID, Name: "Groceries", Month: month}
	err := models.DB.Create(&duplicate).Error
	assert.True(suite.T(), errors.Is(err, models.ErrCategoryNameNotUnique), "got %v", err)

	// Another user can use the same name in the same month
	other := suite.createTestUser()
	otherCategory := models.Category{UserID: other.ID, Name: "Groceries", Month: month}
	assert.Nil(suite.T(), models.DB.Create(&otherCategory).Error)
}

func (suite *TestSuiteStandard) TestBudgetMonthUnique() {
	user := suite.createTestUser()
	month := types.NewMonth(2024, 3)

	require.Nil(suite.T(), models.DB.Create(&models.Budget{UserID: user.ID, Month: month}).Error)

	err := models.DB.Create(&models.Budget{UserID: user.ID, Month: month}).Error
	assert.True(suite.T(), errors.Is(err, models.ErrBudgetMonthNotUnique), "got %v", err)
}

func (suite *TestSuiteStandard) TestHistoryMonthUnique() {
	user := suite.createTestUser()
	month := types.NewMonth(2024, 3)

	require.Nil(suite.T(), models.DB.Create(&models.History{UserID: user.ID, Month: month}).Error)

	err := models.DB.Create(&models.History{UserID: user.ID, Month: month}).Error
	assert.True(suite.T(), errors.Is(err, models.ErrHistoryMonthNotUnique), "got %v", err)
}

func (suite *TestSuiteStandard) TestEmailUnique() {
	user := suite.createTestUser()

	err := models.DB.Create(&models.User{Email: strings.ToUpper(user.Email)}).Error
	assert.True(suite.T(), errors.Is(err, models.ErrEmailNotUnique), "got %v", err)
}

func (suite *TestSuiteStandard) TestConnectFile() {
	// The suite database stays open, this connection uses its own file
	path := test.TmpFile(suite.T())
	require.Nil(suite.T(), models.Connect(path))

	user := models.User{Email: "jane@example.com"}
	require.Nil(suite.T(), models.DB.Create(&user).Error)

	var count int64
	require.Nil(suite.T(), models.DB.Model(&models.User{}).Count(&count).Error)
	assert.Equal(suite.T(), int64(1), count)
}
