package controllers

import (
	"net/http"

	"backend/models"
	"backend/services"

	"github.com/gin-gonic/gin"
)

type ProductController struct {
	lookup services.ProductLookup
}

func NewProductController(lookup services.ProductLookup) *ProductController {
	return &ProductController{lookup: lookup}
}

func (p *ProductController) Scan(c *gin.Context) {
	var req models.ProductScanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, p.lookup.Scan(req.Code))
}
