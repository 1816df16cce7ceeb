package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pocketplan/backend/internal/httputil"
	"github.com/pocketplan/backend/internal/models"
	"github.com/pocketplan/backend/internal/types"
)

// RegisterSubcategoryRoutes registers the routes for subcategories with
// the RouterGroup that is passed.
func RegisterSubcategoryRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", httputil.OptionsGetPost)
		r.GET("", GetSubcategories)
		r.POST("", CreateSubcategory)
	}

	// Subcategory with ID
	{
		r.OPTIONS("/:id", OptionsSubcategoryDetail)
		r.GET("/:id", GetSubcategory)
		r.PATCH("/:id", UpdateSubcategory)
		r.DELETE("/:id", DeleteSubcategory)
	}

	// Monthly allocation
	{
		r.OPTIONS("/:id/budget/:month", OptionsSubcategoryBudget)
		r.PATCH("/:id/budget/:month", SetSubcategoryBudget)
	}
}

// subcategoryByID loads a subcategory after verifying that its category
// belongs to the authenticated profile.
func subcategoryByID(c *gin.Context, id uuid.UUID) (models.Subcategory, error) {
	var subcategory models.Subcategory
	err := models.DB.
		Joins("JOIN categories ON categories.id = subcategories.category_id AND categories.deleted_at IS NULL").
		Where("subcategories.id = ? AND categories.profile_id = ?", id, profileID(c)).
		First(&subcategory).Error
	if err != nil {
		return models.Subcategory{}, err
	}

	return subcategory, nil
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Subcategories
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/subcategories/{id} [options]
func OptionsSubcategoryDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	_, err = subcategoryByID(c, uri.ID.UUID)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create subcategory
// @Description	Creates a new subcategory
// @Tags			Subcategories
// @Accept			json
// @Produce		json
// @Success		201			{object}	SubcategoryResponse
// @Failure		400			{object}	SubcategoryResponse
// @Failure		401			{object}	httpError
// @Failure		404			{object}	SubcategoryResponse
// @Failure		500			{object}	SubcategoryResponse
// @Param			subcategory	body		SubcategoryEditable	true	"Subcategory"
// @Router			/v1/subcategories [post]
func CreateSubcategory(c *gin.Context) {
	var editable SubcategoryEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SubcategoryResponse{Error: &e})
		return
	}

	// The parent category has to belong to the authenticated profile
	_, err = categoryByID(c, editable.CategoryID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SubcategoryResponse{Error: &e})
		return
	}

	subcategory := editable.model()
	err = models.DB.Create(&subcategory).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SubcategoryResponse{Error: &e})
		return
	}

	data := newSubcategory(subcategory)
	c.JSON(http.StatusCreated, SubcategoryResponse{Data: &data})
}

// @Summary		Get subcategories
// @Description	Returns the profile's subcategories
// @Tags			Subcategories
// @Produce		json
// @Success		200	{object}	SubcategoryListResponse
// @Failure		401	{object}	httpError
// @Failure		500	{object}	SubcategoryListResponse
// @Router			/v1/subcategories [get]
func GetSubcategories(c *gin.Context) {
	var subcategories []models.Subcategory
	err := models.DB.
		Joins("JOIN categories ON categories.id = subcategories.category_id AND categories.deleted_at IS NULL").
		Where("categories.profile_id = ?", profileID(c)).
		Order("subcategories.name ASC").
		Find(&subcategories).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SubcategoryListResponse{Error: &e})
		return
	}

	data := make([]Subcategory, 0, len(subcategories))
	for _, subcategory := range subcategories {
		data = append(data, newSubcategory(subcategory))
	}

	c.JSON(http.StatusOK, SubcategoryListResponse{Data: data})
}

// @Summary		Get subcategory
// @Description	Returns a specific subcategory
// @Tags			Subcategories
// @Produce		json
// @Success		200	{object}	SubcategoryResponse
// @Failure		400	{object}	SubcategoryResponse
// @Failure		401	{object}	httpError
// @Failure		404	{object}	SubcategoryResponse
// @Failure		500	{object}	SubcategoryResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/subcategories/{id} [get]
func GetSubcategory(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SubcategoryResponse{Error: &e})
		return
	}

	subcategory, err := subcategoryByID(c, uri.ID.UUID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SubcategoryResponse{Error: &e})
		return
	}

	data := newSubcategory(subcategory)
	c.JSON(http.StatusOK, SubcategoryResponse{Data: &data})
}

// @Summary		Update subcategory
// @Description	Updates an existing subcategory. Only values to be updated need to be specified.
// @Tags			Subcategories
// @Accept			json
// @Produce		json
// @Success		200			{object}	SubcategoryResponse
// @Failure		400			{object}	SubcategoryResponse
// @Failure		401			{object}	httpError
// @Failure		404			{object}	SubcategoryResponse
// @Failure		500			{object}	SubcategoryResponse
// @Param			id			path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			subcategory	body		SubcategoryEditable	true	"Subcategory"
// @Router			/v1/subcategories/{id} [patch]
func UpdateSubcategory(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SubcategoryResponse{Error: &e})
		return
	}

	subcategory, err := subcategoryByID(c, uri.ID.UUID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SubcategoryResponse{Error: &e})
		return
	}

	// Fields absent from the body keep their current value
	editable := SubcategoryEditable{
		Name:       subcategory.Name,
		CategoryID: subcategory.CategoryID,
	}
	err = httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SubcategoryResponse{Error: &e})
		return
	}

	// Moving the subcategory requires the target category to belong to
	// the authenticated profile, too
	if editable.CategoryID != subcategory.CategoryID {
		_, err = categoryByID(c, editable.CategoryID)
		if err != nil {
			e := err.Error()
			c.JSON(status(err), SubcategoryResponse{Error: &e})
			return
		}
	}

	err = models.DB.Model(&subcategory).Select("Name", "CategoryID").Updates(editable.model()).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SubcategoryResponse{Error: &e})
		return
	}

	data := newSubcategory(subcategory)
	c.JSON(http.StatusOK, SubcategoryResponse{Data: &data})
}

// @Summary		Delete subcategory
// @Description	Deletes a subcategory with its transactions and monthly allocations
// @Tags			Subcategories
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		401	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/subcategories/{id} [delete]
func DeleteSubcategory(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	subcategory, err := subcategoryByID(c, uri.ID.UUID)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	err = subcategory.Delete(models.DB)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Subcategories
// @Success		204
// @Failure		400		{object}	httpError
// @Param			id		path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			month	path		string	true	"The month in YYYY-MM format"
// @Router			/v1/subcategories/{id}/budget/{month} [options]
func OptionsSubcategoryBudget(c *gin.Context) {
	var uri struct {
		URIID
		URIMonth
	}

	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: err.Error()})
		return
	}

	c.Header("allow", "PATCH")
	c.Status(http.StatusNoContent)
}

// @Summary		Set subcategory budget
// @Description	Sets the subcategory's allocated amount for the month
// @Tags			Subcategories
// @Accept			json
// @Produce		json
// @Success		200		{object}	SubcategoryResponse
// @Failure		400		{object}	SubcategoryResponse
// @Failure		401		{object}	httpError
// @Failure		404		{object}	SubcategoryResponse
// @Failure		500		{object}	SubcategoryResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			month	path		string			true	"The month in YYYY-MM format"
// @Param			budget	body		BudgetEditable	true	"Allocation"
// @Router			/v1/subcategories/{id}/budget/{month} [patch]
func SetSubcategoryBudget(c *gin.Context) {
	var uri struct {
		URIID
		URIMonth
	}

	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, SubcategoryResponse{Error: &e})
		return
	}

	subcategory, err := subcategoryByID(c, uri.ID.UUID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SubcategoryResponse{Error: &e})
		return
	}

	var editable BudgetEditable
	err = httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SubcategoryResponse{Error: &e})
		return
	}

	err = models.SetSubcategoryBudget(models.DB, subcategory.ID, types.MonthOf(uri.Month), editable.Budgeted)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SubcategoryResponse{Error: &e})
		return
	}

	data := newSubcategory(subcategory)
	c.JSON(http.StatusOK, SubcategoryResponse{Data: &data})
}
