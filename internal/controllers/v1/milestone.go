package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pocketplan/backend/internal/httputil"
	"github.com/pocketplan/backend/internal/models"
)

// RegisterMilestoneRoutes registers the routes for milestones with
// the RouterGroup that is passed.
func RegisterMilestoneRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", httputil.OptionsGetPost)
		r.GET("", GetMilestones)
		r.POST("", CreateMilestone)
	}

	// Milestone with ID
	{
		r.OPTIONS("/:id", OptionsMilestoneDetail)
		r.GET("/:id", GetMilestone)
		r.PATCH("/:id", UpdateMilestone)
		r.DELETE("/:id", DeleteMilestone)
	}
}

// milestoneByID loads a milestone after verifying that it belongs to the
// authenticated profile.
func milestoneByID(c *gin.Context, id uuid.UUID) (models.Milestone, error) {
	var milestone models.Milestone
	err := models.DB.First(&milestone, "id = ? AND profile_id = ?", id, profileID(c)).Error
	if err != nil {
		return models.Milestone{}, err
	}

	return milestone, nil
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Milestones
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/milestones/{id} [options]
func OptionsMilestoneDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	_, err = milestoneByID(c, uri.ID.UUID)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create milestone
// @Description	Creates a new savings milestone
// @Tags			Milestones
// @Accept			json
// @Produce		json
// @Success		201			{object}	MilestoneResponse
// @Failure		400			{object}	MilestoneResponse
// @Failure		401			{object}	httpError
// @Failure		500			{object}	MilestoneResponse
// @Param			milestone	body		MilestoneEditable	true	"Milestone"
// @Router			/v1/milestones [post]
func CreateMilestone(c *gin.Context) {
	var editable MilestoneEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MilestoneResponse{Error: &e})
		return
	}

	milestone := editable.model(profileID(c))
	err = models.DB.Create(&milestone).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MilestoneResponse{Error: &e})
		return
	}

	data := newMilestone(milestone, time.Now().In(time.UTC))
	c.JSON(http.StatusCreated, MilestoneResponse{Data: &data})
}

// @Summary		Get milestones
// @Description	Returns the profile's milestones with their metrics, newest first
// @Tags			Milestones
// @Produce		json
// @Success		200	{object}	MilestoneListResponse
// @Failure		401	{object}	httpError
// @Failure		500	{object}	MilestoneListResponse
// @Router			/v1/milestones [get]
func GetMilestones(c *gin.Context) {
	var milestones []models.Milestone
	err := models.DB.
		Where(&models.Milestone{ProfileID: profileID(c)}).
		Order("created_at DESC").
		Find(&milestones).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MilestoneListResponse{Error: &e})
		return
	}

	now := time.Now().In(time.UTC)
	data := make([]Milestone, 0, len(milestones))
	for _, milestone := range milestones {
		data = append(data, newMilestone(milestone, now))
	}

	c.JSON(http.StatusOK, MilestoneListResponse{Data: data})
}

// @Summary		Get milestone
// @Description	Returns a specific milestone with its metrics
// @Tags			Milestones
// @Produce		json
// @Success		200	{object}	MilestoneResponse
// @Failure		400	{object}	MilestoneResponse
// @Failure		401	{object}	httpError
// @Failure		404	{object}	MilestoneResponse
// @Failure		500	{object}	MilestoneResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/milestones/{id} [get]
func GetMilestone(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MilestoneResponse{Error: &e})
		return
	}

	milestone, err := milestoneByID(c, uri.ID.UUID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MilestoneResponse{Error: &e})
		return
	}

	data := newMilestone(milestone, time.Now().In(time.UTC))
	c.JSON(http.StatusOK, MilestoneResponse{Data: &data})
}

// @Summary		Update milestone
// @Description	Updates an existing milestone. Only values to be updated need to be specified.
// @Tags			Milestones
// @Accept			json
// @Produce		json
// @Success		200			{object}	MilestoneResponse
// @Failure		400			{object}	MilestoneResponse
// @Failure		401			{object}	httpError
// @Failure		404			{object}	MilestoneResponse
// @Failure		500			{object}	MilestoneResponse
// @Param			id			path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			milestone	body		MilestoneEditable	true	"Milestone"
// @Router			/v1/milestones/{id} [patch]
func UpdateMilestone(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MilestoneResponse{Error: &e})
		return
	}

	milestone, err := milestoneByID(c, uri.ID.UUID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MilestoneResponse{Error: &e})
		return
	}

	// Fields absent from the body keep their current value
	editable := MilestoneEditable{
		Name:          milestone.Name,
		TargetAmount:  milestone.TargetAmount,
		CurrentAmount: milestone.CurrentAmount,
		StartDate:     milestone.StartDate,
		TargetDate:    milestone.TargetDate,
	}
	err = httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MilestoneResponse{Error: &e})
		return
	}

	updated := editable.model(milestone.ProfileID)
	updated.DefaultModel = milestone.DefaultModel

	err = models.DB.Save(&updated).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MilestoneResponse{Error: &e})
		return
	}

	data := newMilestone(updated, time.Now().In(time.UTC))
	c.JSON(http.StatusOK, MilestoneResponse{Data: &data})
}

// @Summary		Delete milestone
// @Description	Deletes a milestone. The synthetic milestone category is updated on the next month read.
// @Tags			Milestones
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		401	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/milestones/{id} [delete]
func DeleteMilestone(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	milestone, err := milestoneByID(c, uri.ID.UUID)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	err = models.DB.Delete(&milestone).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
