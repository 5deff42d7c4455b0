package controllers

import (
	"net/http"

	"backend/config"
	"backend/storage"

	"github.com/gin-gonic/gin"
)

type HealthController struct {
	cfg   config.Config
	store storage.Store
}

func NewHealthController(cfg config.Config, store storage.Store) *HealthController {
	return &HealthController{cfg: cfg, store: store}
}

func (h *HealthController) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Wellness & Food AI Backend running"})
}

// Test reports backend and store health for quick deploy checks.
func (h *HealthController) Test(c *gin.Context) {
	resp := gin.H{
		"backend":           "✅ Running",
		"database":          "❌ Not Available",
		"database_url":      setFlag(h.cfg.DatabaseURL != ""),
		"database_name":     setFlag(h.cfg.DatabaseName != ""),
		"connection_status": "Not Connected",
		"collections":       []string{},
	}

	if !h.store.Enabled() {
		resp["database"] = "⚠️ Not Initialized"
		c.JSON(http.StatusOK, resp)
		return
	}

	resp["database"] = "✅ Connected"
	resp["connection_status"] = "Connected"

	names, err := h.store.Collections()
	if err != nil {
		msg := err.Error()
		if len(msg) > 80 {
			msg = msg[:80]
		}
		resp["database"] = "⚠️ Connected but Error: " + msg
	} else {
		if len(names) > 10 {
			names = names[:10]
		}
		resp["collections"] = names
		resp["database"] = "✅ Connected & Working"
	}
	c.JSON(http.StatusOK, resp)
}

func setFlag(ok bool) string {
	if ok {
		return "✅ Set"
	}
	return "❌ Not Set"
}
