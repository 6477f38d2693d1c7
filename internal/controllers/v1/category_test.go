package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/pennywise/backend/internal/controllers/v1"
	"github.com/pennywise/backend/internal/ledger"
	"github.com/pennywise/backend/internal/models"
	"github.com/pennywise/backend/internal/uuid"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestCreateCategory() {
	user := suite.createTestUser()

	recorder := suite.Request(http.MethodPost, "/v1/categories", v1.CategoryEditable{
		Name:   "Groceries",
		Budget: decimal.NewFromInt(300),
		Icon:   "shopping-cart",
	}, suite.authHeader(user.ID))
	suite.Require().Equal(http.StatusCreated, recorder.Code, recorder.Body.String())

	var response v1.CategoryResponse
	suite.decode(recorder, &response)
	suite.Require().NotNil(response.Data)
	suite.Assert().Equal("Groceries", response.Data.Name)
	suite.Assert().True(response.Data.TotalExpenses.IsZero())
	suite.Assert().False(response.Data.Month.IsZero())
	suite.Assert().Contains(response.Data.Links.Expenses, fmt.Sprintf("category=%s", response.Data.ID))
}

func (suite *TestSuiteStandard) TestCreateCategoryInvalid() {
	user := suite.createTestUser()
	suite.createTestCategory(user.ID, ledger.CategoryParams{Name: "Groceries"})

	tests := []struct {
		name string
		body any
	}{
		{"Broken body", `{"name": "`},
		{"Empty name", v1.CategoryEditable{Budget: decimal.NewFromInt(300)}},
		{"Negative budget", v1.CategoryEditable{Name: "Transport", Budget: decimal.NewFromInt(-1)}},
		{"Duplicate name", v1.CategoryEditable{Name: "Groceries"}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := suite.Request(http.MethodPost, "/v1/categories", tt.body, suite.authHeader(user.ID))
			suite.Assert().Equal(http.StatusBadRequest, recorder.Code, recorder.Body.String())
		})
	}
}

func (suite *TestSuiteStandard) TestGetCategories() {
	user := suite.createTestUser()
	groceries := suite.createTestCategory(user.ID, ledger.CategoryParams{Name: "Groceries"})
	suite.createTestCategory(user.ID, ledger.CategoryParams{Name: "Transport"})

	// Categories of other users are invisible
	other := suite.createTestUser()
	suite.createTestCategory(other.ID, ledger.CategoryParams{Name: "Groceries"})

	recorder := suite.Request(http.MethodGet, "/v1/categories", nil, suite.authHeader(user.ID))
	suite.Require().Equal(http.StatusOK, recorder.Code, recorder.Body.String())

	var response v1.CategoryListResponse
	suite.decode(recorder, &response)
	suite.Assert().Len(response.Data, 2)

	recorder = suite.Request(http.MethodGet, "/v1/categories?name=Groc", nil, suite.authHeader(user.ID))
	suite.Require().Equal(http.StatusOK, recorder.Code, recorder.Body.String())
	suite.decode(recorder, &response)
	suite.Require().Len(response.Data, 1)
	suite.Assert().Equal(groceries.ID, response.Data[0].ID)

	recorder = suite.Request(http.MethodGet, fmt.Sprintf("/v1/categories?month=%s", groceries.Month), nil, suite.authHeader(user.ID))
	suite.Require().Equal(http.StatusOK, recorder.Code, recorder.Body.String())
	suite.decode(recorder, &response)
	suite.Assert().Len(response.Data, 2)

	recorder = suite.Request(http.MethodGet, "/v1/categories?month=1999-01", nil, suite.authHeader(user.ID))
	suite.Require().Equal(http.StatusOK, recorder.Code, recorder.Body.String())
	suite.decode(recorder, &response)
	suite.Assert().Len(response.Data, 0)
}

func (suite *TestSuiteStandard) TestGetCategory() {
	user := suite.createTestUser()
	category := suite.createTestCategory(user.ID, ledger.CategoryParams{})

	recorder := suite.Request(http.MethodGet, fmt.Sprintf("/v1/categories/%s", category.ID), nil, suite.authHeader(user.ID))
	suite.Require().Equal(http.StatusOK, recorder.Code, recorder.Body.String())

	var response v1.CategoryResponse
	suite.decode(recorder, &response)
	suite.Require().NotNil(response.Data)
	suite.Assert().Equal(category.ID, response.Data.ID)

	recorder = suite.Request(http.MethodGet, fmt.Sprintf("/v1/categories/%s", uuid.NewString()), nil, suite.authHeader(user.ID))
	suite.Assert().Equal(http.StatusNotFound, recorder.Code, recorder.Body.String())
}

func (suite *TestSuiteStandard) TestUpdateCategory() {
	user := suite.createTestUser()
	category := suite.createTestCategory(user.ID, ledger.CategoryParams{Name: "Groceries"})

	recorder := suite.Request(http.MethodPatch, fmt.Sprintf("/v1/categories/%s", category.ID), map[string]any{
		"note":   "Supermarket and farmers market",
		"budget": 450,
	}, suite.authHeader(user.ID))
	suite.Require().Equal(http.StatusOK, recorder.Code, recorder.Body.String())

	var response v1.CategoryResponse
	suite.decode(recorder, &response)
	suite.Require().NotNil(response.Data)
	suite.Assert().Equal("Supermarket and farmers market", response.Data.Note)
	suite.Assert().True(response.Data.Budget.Equal(decimal.NewFromInt(450)))
	suite.Assert().Equal("Groceries", response.Data.Name)
}

func (suite *TestSuiteStandard) TestUpdateCategoryMonthImmutable() {
	user := suite.createTestUser()
	category := suite.createTestCategory(user.ID, ledger.CategoryParams{})

	recorder := suite.Request(http.MethodPatch, fmt.Sprintf("/v1/categories/%s", category.ID), map[string]string{
		"month": "1999-01",
		"note":  "still in the original month",
	}, suite.authHeader(user.ID))
	suite.Require().Equal(http.StatusOK, recorder.Code, recorder.Body.String())

	var updated models.Category
	suite.Require().Nil(models.DB.First(&updated, "id = ?", category.ID).Error)
	suite.Assert().True(updated.Month.Equal(category.Month))
	suite.Assert().Equal("still in the original month", updated.Note)
}

func (suite *TestSuiteStandard) TestDeleteCategory() {
	user := suite.createTestUser()
	category := suite.createTestCategory(user.ID, ledger.CategoryParams{})
	expense := suite.createTestExpense(user.ID, category.ID, "14.03")

	recorder := suite.Request(http.MethodDelete, fmt.Sprintf("/v1/categories/%s", category.ID), nil, suite.authHeader(user.ID))
	suite.Require().Equal(http.StatusNoContent, recorder.Code, recorder.Body.String())

	// The expenses go with the category, the budget total is rolled back
	var count int64
	suite.Require().Nil(models.DB.Model(&models.Expense{}).Where("id = ?", expense.ID).Count(&count).Error)
	suite.Assert().Equal(int64(0), count)

	var budget models.Budget
	suite.Require().Nil(models.DB.First(&budget, "id = ?", expense.BudgetID).Error)
	suite.Assert().True(budget.TotalExpenses.IsZero())

	recorder = suite.Request(http.MethodDelete, fmt.Sprintf("/v1/categories/%s", category.ID), nil, suite.authHeader(user.ID))
	suite.Assert().Equal(http.StatusNotFound, recorder.Code, recorder.Body.String())
}
