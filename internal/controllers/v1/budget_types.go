package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/pennywise/backend/internal/models"
	"github.com/pennywise/backend/internal/types"
	"github.com/shopspring/decimal"
)

type BudgetEditable struct {
	TotalIncome decimal.Decimal `json:"totalIncome" example:"2317.34" default:"0"` // The income available in the month
}

type BudgetLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/budgets/1e777d24-3f5b-4c43-8000-04f65f895578"` // The budget itself
}

// Budget is the representation of a Budget in API v1.
type Budget struct {
	models.DefaultModel
	BudgetEditable
	Month         types.Month     `json:"month" example:"2024-03-01T00:00:00.000000Z"` // The month the budget belongs to
	TotalExpenses decimal.Decimal `json:"totalExpenses" example:"1133.70"`             // Sum of the month's expenses, maintained by the backend
	Links         BudgetLinks     `json:"links"`
}

// newBudget returns the API v1 representation of the resource
func newBudget(c *gin.Context, model models.Budget) Budget {
	url := c.GetString(string(models.DBContextURL))

	return Budget{
		DefaultModel: model.DefaultModel,
		BudgetEditable: BudgetEditable{
			TotalIncome: model.TotalIncome,
		},
		Month:         model.Month,
		TotalExpenses: model.TotalExpenses,
		Links: BudgetLinks{
			Self: fmt.Sprintf("%s/v1/budgets/%s", url, model.ID),
		},
	}
}

type BudgetResponse struct {
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *Budget `json:"data"`                                                          // The Budget data
}

type BudgetListResponse struct {
	Data       []Budget    `json:"data"`                                                          // List of budgets
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type BudgetQueryFilter struct {
	Offset uint `form:"offset" filterField:"false"` // The offset of the first Budget returned. Defaults to 0.
	Limit  int  `form:"limit" filterField:"false"`  // Maximum number of Budgets to return. Defaults to 50.
}
