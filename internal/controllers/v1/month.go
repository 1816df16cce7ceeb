package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pocketplan/backend/internal/httputil"
	"github.com/pocketplan/backend/internal/models"
	"github.com/pocketplan/backend/internal/types"
	"github.com/shopspring/decimal"
)

// RegisterMonthRoutes registers the routes for monthly budgets with
// the RouterGroup that is passed.
func RegisterMonthRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/:month", OptionsMonth)
	r.GET("/:month", GetMonth)
	r.PATCH("/:month", UpdateMonth)
}

// MonthEditable represents all user configurable parameters of a month.
type MonthEditable struct {
	Income decimal.Decimal `json:"income" example:"3200.00"` // The declared income for the month
}

type MonthResponse struct {
	Data  *models.Analytics `json:"data"`  // The analytics tree for the month
	Error *string           `json:"error"` // The error, if any occurred
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Months
// @Success		204
// @Failure		400		{object}	httpError
// @Param			month	path		string	true	"The month in YYYY-MM format"
// @Router			/v1/months/{month} [options]
func OptionsMonth(c *gin.Context) {
	var uri URIMonth
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: httputil.ErrInvalidMonth.Error()})
		return
	}

	httputil.OptionsGetPatch(c)
}

// @Summary		Get month
// @Description	Returns the monthly budget with its full analytics tree. The budget is created with an income of 0 on first access.
// @Tags			Months
// @Produce		json
// @Success		200		{object}	MonthResponse
// @Failure		400		{object}	MonthResponse
// @Failure		401		{object}	httpError
// @Failure		500		{object}	MonthResponse
// @Param			month	path		string	true	"The month in YYYY-MM format"
// @Router			/v1/months/{month} [get]
func GetMonth(c *gin.Context) {
	var uri URIMonth
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := httputil.ErrInvalidMonth.Error()
		c.JSON(http.StatusBadRequest, MonthResponse{Error: &e})
		return
	}

	data, err := monthAnalytics(c, types.MonthOf(uri.Month))
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MonthResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, MonthResponse{Data: &data})
}

// @Summary		Update month
// @Description	Sets the declared income for the month and returns the updated analytics tree
// @Tags			Months
// @Accept			json
// @Produce		json
// @Success		200		{object}	MonthResponse
// @Failure		400		{object}	MonthResponse
// @Failure		401		{object}	httpError
// @Failure		500		{object}	MonthResponse
// @Param			month	path		string			true	"The month in YYYY-MM format"
// @Param			budget	body		MonthEditable	true	"Month"
// @Router			/v1/months/{month} [patch]
func UpdateMonth(c *gin.Context) {
	var uri URIMonth
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := httputil.ErrInvalidMonth.Error()
		c.JSON(http.StatusBadRequest, MonthResponse{Error: &e})
		return
	}

	var editable MonthEditable
	err = httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MonthResponse{Error: &e})
		return
	}

	month := types.MonthOf(uri.Month)
	budget := models.MonthlyBudget{
		ProfileID: profileID(c),
		Month:     month,
		Income:    editable.Income,
	}

	err = budget.Save(models.DB)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MonthResponse{Error: &e})
		return
	}

	data, err := monthAnalytics(c, month)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MonthResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, MonthResponse{Data: &data})
}

// monthAnalytics loads the month's budget tree and transactions and derives
// the analytics from them.
func monthAnalytics(c *gin.Context, month types.Month) (models.Analytics, error) {
	id := profileID(c)

	budget, err := models.MonthlyBudgetForMonth(models.DB, id, month)
	if err != nil {
		return models.Analytics{}, err
	}

	transactions, err := models.TransactionsForMonth(models.DB, id, month)
	if err != nil {
		return models.Analytics{}, err
	}

	return budget.Analytics(transactions), nil
}
