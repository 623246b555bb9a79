package api

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"ge-flipper/internal/database"
	"ge-flipper/internal/engine"
	"ge-flipper/internal/export"
	"ge-flipper/internal/flip"
	"ge-flipper/internal/services/capital"

	"github.com/gin-gonic/gin"
)

type Handlers struct {
	engine *engine.Engine
	gold   *capital.Estimator
	store  *database.Store // nil when running without a database
}

// SetupRoutes mounts all API endpoints on the given group.
func SetupRoutes(r *gin.RouterGroup, e *engine.Engine, gold *capital.Estimator, store *database.Store) {
	h := &Handlers{engine: e, gold: gold, store: store}

	r.GET("/suggestions", h.getSuggestions)
	r.GET("/suggestions/history", h.getHistory)
	r.GET("/suggestions/export", h.exportSuggestions)
	r.GET("/offers", h.getOffers)
	r.POST("/capital/override", h.setOverride)
	r.DELETE("/capital/override", h.clearOverride)
	r.GET("/settings", h.getSettings)
	r.PUT("/settings", h.updateSettings)
}

func (h *Handlers) getSuggestions(c *gin.Context) {
	c.JSON(http.StatusOK, h.engine.Latest())
}

func (h *Handlers) getOffers(c *gin.Context) {
	offers := h.engine.Tracker().CurrentOffers()
	c.JSON(http.StatusOK, gin.H{
		"offers":       offers,
		"filled_slots": h.engine.Tracker().FilledSlotCount(),
		"total_slots":  flip.GESlots,
	})
}

type overrideRequest struct {
	GP int64 `json:"gp"`
}

func (h *Handlers) setOverride(c *gin.Context) {
	var req overrideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.GP <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "gp must be positive"})
		return
	}

	h.gold.SetOverride(req.GP)
	h.engine.MarkStale()
	c.JSON(http.StatusOK, gin.H{"override": req.GP})
}

func (h *Handlers) clearOverride(c *gin.Context) {
	h.gold.ClearOverride()
	h.engine.MarkStale()
	c.JSON(http.StatusOK, gin.H{"override": nil})
}

func (h *Handlers) getSettings(c *gin.Context) {
	c.JSON(http.StatusOK, h.engine.Settings().Get())
}

func (h *Handlers) updateSettings(c *gin.Context) {
	var s flip.Settings
	if err := c.ShouldBindJSON(&s); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid settings"})
		return
	}

	h.engine.Settings().Update(s)
	h.engine.MarkStale()
	c.JSON(http.StatusOK, s)
}

func (h *Handlers) getHistory(c *gin.Context) {
	if h.store == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "history persistence is not configured"})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	rows, err := h.store.RecentSuggestions(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load history"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"suggestions": rows})
}

func (h *Handlers) exportSuggestions(c *gin.Context) {
	result := h.engine.Latest()

	f, err := export.SuggestionsWorkbook(result)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build workbook"})
		return
	}
	defer f.Close()

	filename := fmt.Sprintf("flip-suggestions-%s.xlsx", time.Now().Format("20060102-150405"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := f.Write(c.Writer); err != nil {
		c.Status(http.StatusInternalServerError)
	}
}
