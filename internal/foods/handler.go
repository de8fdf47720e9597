package foods

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"mealplan-backend/internal/shared/server/respond"
)

// Handler exposes the read-only food reference endpoints.
type Handler struct {
	Repo Repo
}

func NewHandler(repo Repo) *Handler {
	return &Handler{Repo: repo}
}

// RegisterRoutes attaches food routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/foods", h.listFoods)
	rg.GET("/foods/:id", h.getFood)
}

func (h *Handler) listFoods(c *gin.Context) {
	category := c.Query("category")

	var (
		items []Food
		err   error
	)
	if category != "" {
		if !ValidCategory(category) {
			respond.Error(c, http.StatusBadRequest, "validation_error", "unknown food category", nil)
			return
		}
		items, err = h.Repo.ListByCategory(c.Request.Context(), category)
	} else {
		items, err = h.Repo.List(c.Request.Context())
	}
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "storage_error", "failed to load foods", nil)
		return
	}
	if items == nil {
		items = []Food{}
	}
	respond.OK(c, gin.H{"foods": items})
}

func (h *Handler) getFood(c *gin.Context) {
	food, err := h.Repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "food not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "storage_error", "failed to load food", nil)
		return
	}
	respond.OK(c, food)
}
