package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/pennywise/backend/internal/ledger"
	"github.com/pennywise/backend/internal/models"
	"github.com/pennywise/backend/internal/types"
	"github.com/shopspring/decimal"
)

type CategoryEditable struct {
	Name   string          `json:"name" example:"Groceries" default:""`                       // Name of the category
	Month  types.Month     `json:"month" example:"2024-03-01T00:00:00.000000Z"`               // The month the category belongs to. Defaults to the current month
	Budget decimal.Decimal `json:"budget" example:"300" default:"0"`                          // Spending target for the month
	Note   string          `json:"note" example:"Supermarket and farmers market" default:""`  // A note
	Icon   string          `json:"icon" example:"shopping-cart" default:""`                   // Icon name for the frontend
}

// params returns the mutation parameters for the editable fields
func (editable CategoryEditable) params() ledger.CategoryParams {
	return ledger.CategoryParams{
		Name:   editable.Name,
		Month:  editable.Month,
		Budget: editable.Budget,
		Note:   editable.Note,
		Icon:   editable.Icon,
	}
}

type CategoryLinks struct {
	Self     string `json:"self" example:"https://example.com/api/v1/categories/dafd9a74-6aeb-46b9-9f5a-cfca624fea85"`       // The category itself
	Expenses string `json:"expenses" example:"https://example.com/api/v1/expenses?category=dafd9a74-6aeb-46b9-9f5a-cfca624fea85"` // Expenses referencing the category
}

// Category is the representation of a Category in API v1.
type Category struct {
	models.DefaultModel
	CategoryEditable
	TotalExpenses decimal.Decimal `json:"totalExpenses" example:"133.70"` // Sum of the category's expenses, maintained by the backend
	Order         uint            `json:"order" example:"3"`              // Display order within the month
	Links         CategoryLinks   `json:"links"`
}

// newCategory returns the API v1 representation of the resource
func newCategory(c *gin.Context, model models.Category) Category {
	url := c.GetString(string(models.DBContextURL))

	return Category{
		DefaultModel: model.DefaultModel,
		CategoryEditable: CategoryEditable{
			Name:   model.Name,
			Month:  model.Month,
			Budget: model.Budget,
			Note:   model.Note,
			Icon:   model.Icon,
		},
		TotalExpenses: model.TotalExpenses,
		Order:         model.Order,
		Links: CategoryLinks{
			Self:     fmt.Sprintf("%s/v1/categories/%s", url, model.ID),
			Expenses: fmt.Sprintf("%s/v1/expenses?category=%s", url, model.ID),
		},
	}
}

type CategoryResponse struct {
	Error *string   `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *Category `json:"data"`                                                          // The Category data
}

type CategoryListResponse struct {
	Data       []Category  `json:"data"`                                                          // List of categories
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type CategoryQueryFilter struct {
	Name   string `form:"name" filterField:"false"`   // Filter by name, fuzzy
	Month  string `form:"month" filterField:"false"`  // Categories of this month, formatted as YYYY-MM
	Offset uint   `form:"offset" filterField:"false"` // The offset of the first Category returned. Defaults to 0.
	Limit  int    `form:"limit" filterField:"false"`  // Maximum number of Categories to return. Defaults to 50.
}
