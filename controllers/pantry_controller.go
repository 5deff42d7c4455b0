package controllers

import (
	"net/http"

	"backend/models"
	"backend/services"

	"github.com/gin-gonic/gin"
)

type PantryController struct {
	pantry *services.PantryService
}

func NewPantryController(pantry *services.PantryService) *PantryController {
	return &PantryController{pantry: pantry}
}

// Add stores one item best-effort; id is null when nothing was saved.
func (p *PantryController) Add(c *gin.Context) {
	var item models.PantryItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var id any
	if rid, saved := p.pantry.Add(item); saved {
		id = rid
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "id": id})
}

func (p *PantryController) List(c *gin.Context) {
	items, err := p.pantry.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, items)
}

func (p *PantryController) Suggest(c *gin.Context) {
	suggestions, err := p.pantry.Suggest()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, suggestions)
}

func (p *PantryController) ScanReceipt(c *gin.Context) {
	var req models.ScanImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	detected, added, err := p.pantry.ScanReceipt(req.ImageBase64)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "detected": detected, "added": added})
}

func (p *PantryController) Photo(c *gin.Context) {
	var req models.ScanImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	detected, added, err := p.pantry.ScanPhoto(req.ImageBase64)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "detected": detected, "added": added})
}
