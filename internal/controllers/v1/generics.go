package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ledgerbook/backend/internal/httputil"
	"github.com/ledgerbook/backend/internal/models"
)

// getResource returns the resource with the ID from the URI if it belongs to the user.
func getResource[R models.Transaction | models.Budget](c *gin.Context) (R, error) {
	var resource R

	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		return resource, err
	}

	err = models.DB.First(&resource, "id = ? AND user_id = ?", uri.ID, userID(c)).Error
	if err != nil {
		return resource, err
	}

	return resource, nil
}

// resourceOptionsDetail returns the appropriate response for an HTTP OPTIONS request for a specific resource.
func resourceOptionsDetail[R models.Transaction | models.Budget](c *gin.Context) {
	_, err := getResource[R](c)
	if err != nil {
		_ = c.Error(err)
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// deleteResource deletes the resource with the ID from the URI.
func deleteResource[R models.Transaction | models.Budget](c *gin.Context) {
	resource, err := getResource[R](c)
	if err != nil {
		_ = c.Error(err)
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&resource).Error
	if err != nil {
		_ = c.Error(err)
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
