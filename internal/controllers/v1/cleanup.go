package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pocketplan/backend/internal/models"
	"gorm.io/gorm"
)

// @Summary		Delete everything
// @Description	Permanently deletes all of the authenticated profile's budget data. The profile and its sessions survive.
// @Tags			v1
// @Success		204
// @Failure		400		{object}	httpError
// @Failure		401		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			confirm	query		string	false	"Confirmation to delete all resources. Must have the value 'yes-please-delete-everything'"
// @Router			/v1/data [delete]
func Cleanup(c *gin.Context) {
	var params struct {
		Confirm string `form:"confirm"`
	}

	err := c.Bind(&params)
	if err != nil || params.Confirm != "yes-please-delete-everything" {
		c.JSON(http.StatusBadRequest, httpError{Error: errCleanupConfirmation.Error()})
		return
	}

	id := profileID(c)

	// Transactions and allocations hang off the categories, they go first
	err = models.DB.Transaction(func(tx *gorm.DB) error {
		var categories []models.Category
		err := tx.Where(&models.Category{ProfileID: id}).Find(&categories).Error
		if err != nil {
			return err
		}

		for _, category := range categories {
			err = category.DeleteCascading(tx)
			if err != nil {
				return err
			}
		}

		// Hard deletes throughout. A soft-deleted monthly budget row would
		// keep occupying its unique (profile, month) slot and block the
		// lazy create on the next month read.
		err = tx.Unscoped().Where(&models.Transaction{ProfileID: id}).Delete(&models.Transaction{}).Error
		if err != nil {
			return err
		}

		err = tx.Unscoped().Where(&models.Milestone{ProfileID: id}).Delete(&models.Milestone{}).Error
		if err != nil {
			return err
		}

		return tx.Unscoped().Where(&models.MonthlyBudget{ProfileID: id}).Delete(&models.MonthlyBudget{}).Error
	})
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
