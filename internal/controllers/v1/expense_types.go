package v1

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pennywise/backend/internal/ledger"
	"github.com/pennywise/backend/internal/models"
	"github.com/shopspring/decimal"
)

type ExpenseEditable struct {
	Name string `json:"name" example:"Weekly shop" default:""` // Name of the expense

	// The maximum value is "999999999999999999.99", swagger unfortunately rounds this.
	Amount decimal.Decimal `json:"amount" example:"14.03" minimum:"0.01" multipleOf:"0.01"` // The amount spent

	CategoryID uuid.UUID `json:"categoryId" example:"dafd9a74-6aeb-46b9-9f5a-cfca624fea85"` // ID of the category the expense belongs to
	Date       time.Time `json:"date" example:"2024-03-14T00:00:00Z"`                       // Day the expense was made. Defaults to the current day
	Note       string    `json:"note" example:"Lunch" default:""`                           // A note
}

// params returns the mutation parameters for the editable fields
func (editable ExpenseEditable) params() ledger.ExpenseParams {
	return ledger.ExpenseParams{
		Name:       editable.Name,
		Amount:     editable.Amount,
		CategoryID: editable.CategoryID,
		Date:       editable.Date,
		Note:       editable.Note,
	}
}

type ExpenseLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/expenses/d430d7c3-d14c-4712-9336-ee56965a6673"` // The expense itself
}

// Expense is the representation of an Expense in API v1.
type Expense struct {
	models.DefaultModel
	ExpenseEditable
	BudgetID  uuid.UUID    `json:"budgetId" example:"1e777d24-3f5b-4c43-8000-04f65f895578"`  // ID of the monthly budget the expense counts against
	HistoryID uuid.UUID    `json:"historyId" example:"d430d7c3-d14c-4712-9336-ee56965a6673"` // ID of the monthly history entry the expense counts against
	Links     ExpenseLinks `json:"links"`
}

// newExpense returns the API v1 representation of the resource
func newExpense(c *gin.Context, model models.Expense) Expense {
	url := c.GetString(string(models.DBContextURL))

	return Expense{
		DefaultModel: model.DefaultModel,
		ExpenseEditable: ExpenseEditable{
			Name:       model.Name,
			Amount:     model.Amount,
			CategoryID: model.CategoryID,
			Date:       model.Date,
			Note:       model.Note,
		},
		BudgetID:  model.BudgetID,
		HistoryID: model.HistoryID,
		Links: ExpenseLinks{
			Self: fmt.Sprintf("%s/v1/expenses/%s", url, model.ID),
		},
	}
}

type ExpenseResponse struct {
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *Expense `json:"data"`                                                          // The Expense data
}

type ExpenseListResponse struct {
	Data       []Expense   `json:"data"`                                                          // List of expenses
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type ExpenseQueryFilter struct {
	Name      string    `form:"name" filterField:"false"`      // Filter by name, fuzzy
	Note      string    `form:"note" filterField:"false"`      // Filter by note, fuzzy
	Month     string    `form:"month" filterField:"false"`     // Expenses in this month, formatted as YYYY-MM
	FromDate  time.Time `form:"fromDate" filterField:"false"`  // Expenses at and after this date
	UntilDate time.Time `form:"untilDate" filterField:"false"` // Expenses before and at this date
	Category  string    `form:"category" filterField:"false"`  // Filter by category ID
	Offset    uint      `form:"offset" filterField:"false"`    // The offset of the first Expense returned. Defaults to 0.
	Limit     int       `form:"limit" filterField:"false"`     // Maximum number of Expenses to return. Defaults to 50.
}
