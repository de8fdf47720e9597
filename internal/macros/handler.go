package macros

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mealplan-backend/internal/shared/server/respond"
)

// Handler exposes the macro target calculator.
type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// RegisterRoutes attaches calculator routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/targets", h.calculateTargets)
}

func (h *Handler) calculateTargets(c *gin.Context) {
	var stats Stats
	if err := c.ShouldBindJSON(&stats); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	targets, ok := Calculate(stats)
	if !ok {
		// Missing or implausible stats mean "cannot compute yet", not a
		// server fault.
		respond.Error(c, http.StatusBadRequest, "validation_error",
			"stats are incomplete or implausible; targets cannot be computed", nil)
		return
	}
	respond.OK(c, targets)
}
