package v1_test

import (
	"fmt"
	"net/http"

	v1 "github.com/pennywise/backend/internal/controllers/v1"
	"github.com/pennywise/backend/internal/ledger"
	"github.com/pennywise/backend/internal/types"
	"github.com/pennywise/backend/internal/uuid"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestGetBudgetMonth() {
	user := suite.createTestUser()

	// The first request creates the budget with zero totals
	recorder := suite.Request(http.MethodGet, "/v1/budgets/month?month=2024-03", nil, suite.authHeader(user.ID))
	suite.Require().Equal(http.StatusOK, recorder.Code, recorder.Body.String())

	var response v1.BudgetResponse
	suite.decode(recorder, &response)
	suite.Require().NotNil(response.Data)
	suite.Assert().True(response.Data.Month.Equal(types.NewMonth(2024, 3)))
	suite.Assert().True(response.Data.TotalIncome.IsZero())
	suite.Assert().True(response.Data.TotalExpenses.IsZero())

	// The second request returns the same budget
	recorder = suite.Request(http.MethodGet, "/v1/budgets/month?month=2024-03", nil, suite.authHeader(user.ID))
	suite.Require().Equal(http.StatusOK, recorder.Code, recorder.Body.String())

	var second v1.BudgetResponse
	suite.decode(recorder, &second)
	suite.Require().NotNil(second.Data)
	suite.Assert().Equal(response.Data.ID, second.Data.ID)
}

func (suite *TestSuiteStandard) TestGetBudgetMonthInvalid() {
	user := suite.createTestUser()

	recorder := suite.Request(http.MethodGet, "/v1/budgets/month", nil, suite.authHeader(user.ID))
	suite.Assert().Equal(http.StatusBadRequest, recorder.Code, recorder.Body.String())

	recorder = suite.Request(http.MethodGet, "/v1/budgets/month?month=March", nil, suite.authHeader(user.ID))
	suite.Assert().Equal(http.StatusBadRequest, recorder.Code, recorder.Body.String())
}

func (suite *TestSuiteStandard) TestGetBudgets() {
	user := suite.createTestUser()
	category := suite.createTestCategory(user.ID, ledger.CategoryParams{})
	expense := suite.createTestExpense(user.ID, category.ID, "14.03")

	recorder := suite.Request(http.MethodGet, "/v1/budgets", nil, suite.authHeader(user.ID))
	suite.Require().Equal(http.StatusOK, recorder.Code, recorder.Body.String())

	var response v1.BudgetListResponse
	suite.decode(recorder, &response)
	suite.Require().Len(response.Data, 1)
	suite.Assert().Equal(expense.BudgetID, response.Data[0].ID)
	suite.Assert().True(response.Data[0].TotalExpenses.Equal(decimal.RequireFromString("14.03")))
}

func (suite *TestSuiteStandard) TestGetBudget() {
	user := suite.createTestUser()
	category := suite.createTestCategory(user.ID, ledger.CategoryParams{})
	expense := suite.createTestExpense(user.ID, category.ID, "14.03")

	recorder := suite.Request(http.MethodGet, fmt.Sprintf("/v1/budgets/%s", expense.BudgetID), nil, suite.authHeader(user.ID))
	suite.Require().Equal(http.StatusOK, recorder.Code, recorder.Body.String())

	var response v1.BudgetResponse
	suite.decode(recorder, &response)
	suite.Require().NotNil(response.Data)
	suite.Assert().Equal(expense.BudgetID, response.Data.ID)

	// Budgets of other users stay hidden
	other := suite.createTestUser()
	recorder = suite.Request(http.MethodGet, fmt.Sprintf("/v1/budgets/%s", expense.BudgetID), nil, suite.authHeader(other.ID))
	suite.Assert().Equal(http.StatusNotFound, recorder.Code, recorder.Body.String())
}

func (suite *TestSuiteStandard) TestUpdateBudget() {
	user := suite.createTestUser()
	category := suite.createTestCategory(user.ID, ledger.CategoryParams{})
	expense := suite.createTestExpense(user.ID, category.ID, "14.03")

	recorder := suite.Request(http.MethodPatch, fmt.Sprintf("/v1/budgets/%s", expense.BudgetID), v1.BudgetEditable{
		TotalIncome: decimal.RequireFromString("2317.34"),
	}, suite.authHeader(user.ID))
	suite.Require().Equal(http.StatusOK, recorder.Code, recorder.Body.String())

	var response v1.BudgetResponse
	suite.decode(recorder, &response)
	suite.Require().NotNil(response.Data)
	suite.Assert().True(response.Data.TotalIncome.Equal(decimal.RequireFromString("2317.34")))

	// The expense total is maintained by the backend and stays untouched
	suite.Assert().True(response.Data.TotalExpenses.Equal(decimal.RequireFromString("14.03")))
}

func (suite *TestSuiteStandard) TestUpdateBudgetNotFound() {
	user := suite.createTestUser()

	recorder := suite.Request(http.MethodPatch, fmt.Sprintf("/v1/budgets/%s", uuid.NewString()), v1.BudgetEditable{
		TotalIncome: decimal.NewFromInt(100),
	}, suite.authHeader(user.ID))
	suite.Assert().Equal(http.StatusNotFound, recorder.Code, recorder.Body.String())
}

func (suite *TestSuiteStandard) TestOptionsBudgets() {
	user := suite.createTestUser()

	recorder := suite.Request(http.MethodOptions, "/v1/budgets", nil, suite.authHeader(user.ID))
	suite.Assert().Equal(http.StatusNoContent, recorder.Code)
	suite.Assert().Equal("GET", recorder.Header().Get("allow"))

	recorder = suite.Request(http.MethodOptions, "/v1/budgets/month", nil, suite.authHeader(user.ID))
	suite.Assert().Equal(http.StatusNoContent, recorder.Code)
	suite.Assert().Equal("GET", recorder.Header().Get("allow"))
}
