package controllers

import (
	"net/http"

	"backend/models"
	"backend/services"

	"github.com/gin-gonic/gin"
)

type RestaurantController struct{}

func NewRestaurantController() *RestaurantController {
	return &RestaurantController{}
}

func (r *RestaurantController) Search(c *gin.Context) {
	var query models.RestaurantQuery
	if err := c.ShouldBindJSON(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, services.SearchRestaurants(query))
}
