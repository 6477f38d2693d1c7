package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pennywise/backend/internal/auth"
	"github.com/pennywise/backend/internal/httputil"
	"github.com/pennywise/backend/internal/models"
	"github.com/pennywise/backend/internal/types"
	"golang.org/x/exp/slices"
)

// RegisterHistoryRoutes registers the routes for history entries with
// the RouterGroup that is passed.
func (co Controller) RegisterHistoryRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", co.OptionsHistory)
		r.GET("", co.GetHistory)
	}

	// History entry with ID
	{
		r.OPTIONS("/:id", co.OptionsHistoryDetail)
		r.GET("/:id", co.GetHistoryEntry)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			History
// @Success		204
// @Router			/v1/history [options]
// @Security		BearerAuth
func (co Controller) OptionsHistory(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			History
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/history/{id} [options]
// @Security		BearerAuth
func (co Controller) OptionsHistoryDetail(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var history models.History
	err := models.DB.First(&history, "id = ? AND user_id = ?", uri.ID, auth.UserID(c)).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGet(c)
}

// @Summary		Get history entry
// @Description	Returns a specific history entry
// @Tags			History
// @Produce		json
// @Success		200	{object}	HistoryResponse
// @Failure		400	{object}	HistoryResponse
// @Failure		404	{object}	HistoryResponse
// @Failure		500	{object}	HistoryResponse
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/history/{id} [get]
// @Security		BearerAuth
func (co Controller) GetHistoryEntry(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		e := err.Error()
		c.JSON(status(err), HistoryResponse{
			Error: &e,
		})
		return
	}

	var history models.History
	err := models.DB.First(&history, "id = ? AND user_id = ?", uri.ID, auth.UserID(c)).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), HistoryResponse{
			Error: &e,
		})
		return
	}

	data := newHistory(c, history)
	c.JSON(http.StatusOK, HistoryResponse{Data: &data})
}

// @Summary		Get history
// @Description	Returns the monthly spending history of the user. Months without expenses have no entry.
// @Tags			History
// @Produce		json
// @Success		200	{object}	HistoryListResponse
// @Failure		400	{object}	HistoryListResponse
// @Failure		500	{object}	HistoryListResponse
// @Router			/v1/history [get]
// @Security		BearerAuth
// @Param			fromMonth	query	string	false	"History entries at and after this month, formatted as YYYY-MM"
// @Param			untilMonth	query	string	false	"History entries before and at this month, formatted as YYYY-MM"
// @Param			offset		query	uint	false	"The offset of the first History entry returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of History entries to return. Defaults to 50."
func (co Controller) GetHistory(c *gin.Context) {
	var filter HistoryQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, HistoryListResponse{
			Error: &s,
		})
		return
	}

	_, setFields := httputil.GetURLFields(c.Request.URL, filter)

	q := models.DB.
		Order("histories.month DESC").
		Where("histories.user_id = ?", auth.UserID(c))

	if filter.FromMonth != "" {
		month, err := types.ParseMonth(filter.FromMonth)
		if err != nil {
			e := err.Error()
			c.JSON(http.StatusBadRequest, HistoryListResponse{
				Error: &e,
			})
			return
		}

		q = q.Where("histories.month >= ?", month)
	}

	if filter.UntilMonth != "" {
		month, err := types.ParseMonth(filter.UntilMonth)
		if err != nil {
			e := err.Error()
			c.JSON(http.StatusBadRequest, HistoryListResponse{
				Error: &e,
			})
			return
		}

		q = q.Where("histories.month <= ?", month)
	}

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 history entries and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var histories []models.History
	err := q.Find(&histories).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), HistoryListResponse{
			Error: &e,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), HistoryListResponse{
			Error: &e,
		})
		return
	}

	data := make([]History, 0)
	for _, history := range histories {
		data = append(data, newHistory(c, history))
	}

	c.JSON(http.StatusOK, HistoryListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}
