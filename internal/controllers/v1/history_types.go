package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/pennywise/backend/internal/models"
	"github.com/pennywise/backend/internal/types"
	"github.com/shopspring/decimal"
)

type HistoryLinks struct {
	Self     string `json:"self" example:"https://example.com/api/v1/history/d430d7c3-d14c-4712-9336-ee56965a6673"`     // The history entry itself
	Expenses string `json:"expenses" example:"https://example.com/api/v1/expenses?month=2024-03"`                       // Expenses of the month
}

// History is the representation of a History entry in API v1.
//
// History entries are maintained entirely by the backend, so there is no
// editable representation.
type History struct {
	models.DefaultModel
	Name          string          `json:"name" example:"March"`                        // Human readable month label
	Month         types.Month     `json:"month" example:"2024-03-01T00:00:00.000000Z"` // The month the entry sums up
	TotalExpenses decimal.Decimal `json:"totalExpenses" example:"1133.70"`             // Sum of the month's expenses
	Links         HistoryLinks    `json:"links"`
}

// newHistory returns the API v1 representation of the resource
func newHistory(c *gin.Context, model models.History) History {
	url := c.GetString(string(models.DBContextURL))

	return History{
		DefaultModel:  model.DefaultModel,
		Name:          model.Name,
		Month:         model.Month,
		TotalExpenses: model.TotalExpenses,
		Links: HistoryLinks{
			Self:     fmt.Sprintf("%s/v1/history/%s", url, model.ID),
			Expenses: fmt.Sprintf("%s/v1/expenses?month=%s", url, model.Month),
		},
	}
}

type HistoryResponse struct {
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *History `json:"data"`                                                          // The History data
}

type HistoryListResponse struct {
	Data       []History   `json:"data"`                                                          // List of history entries
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type HistoryQueryFilter struct {
	FromMonth  string `form:"fromMonth" filterField:"false"`  // History entries at and after this month, formatted as YYYY-MM
	UntilMonth string `form:"untilMonth" filterField:"false"` // History entries before and at this month, formatted as YYYY-MM
	Offset     uint   `form:"offset" filterField:"false"`     // The offset of the first History entry returned. Defaults to 0.
	Limit      int    `form:"limit" filterField:"false"`      // Maximum number of History entries to return. Defaults to 50.
}
