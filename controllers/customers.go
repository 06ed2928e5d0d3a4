package controllers

import (
	"net/http"
	"strconv"

	"inventoryapi/apperrors"
	"inventoryapi/models"

	"github.com/gin-gonic/gin"
)

const (
	defaultTopCustomers = 3
	maxTopCustomers     = 50
)

func (api *API) GetTopCustomers(c *gin.Context) {
	countParam := c.DefaultQuery("count", strconv.Itoa(defaultTopCustomers))

	count, err := strconv.Atoi(countParam)
	if err != nil {
		abortError(c, apperrors.BusinessRule("count must be a number."))
		return
	}

	if count < 1 {
		count = defaultTopCustomers
	}

	if count > maxTopCustomers {
		count = maxTopCustomers
	}

	customers, err := api.Customers.TopByOrderCount(c.Request.Context(), count)
	if err != nil {
		abortError(c, err)
		return
	}

	if customers == nil {
		customers = []models.CustomerOrderSummary{}
	}

	c.JSON(http.StatusOK, customers)
}
