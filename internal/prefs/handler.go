package prefs

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"mealplan-backend/internal/shared/server/respond"
)

// Handler exposes the preference and exclusion list endpoints.
type Handler struct {
	Repo Repo
}

func NewHandler(repo Repo) *Handler {
	return &Handler{Repo: repo}
}

// RegisterRoutes attaches list routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/preferences", h.getList(ListPreferences))
	rg.PUT("/preferences", h.putList(ListPreferences))
	rg.GET("/exclusions", h.getList(ListExclusions))
	rg.PUT("/exclusions", h.putList(ListExclusions))
}

type listPayload struct {
	Items []string `json:"items"`
}

func (h *Handler) getList(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := h.Repo.Get(c.Request.Context(), name)
		if err != nil {
			h.respondError(c, err)
			return
		}
		respond.OK(c, listPayload{Items: items})
	}
}

func (h *Handler) putList(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req listPayload
		if err := c.ShouldBindJSON(&req); err != nil {
			respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
			return
		}
		items := Normalize(req.Items)
		if err := h.Repo.Put(c.Request.Context(), name, items); err != nil {
			h.respondError(c, err)
			return
		}
		respond.OK(c, listPayload{Items: items})
	}
}

func (h *Handler) respondError(c *gin.Context, err error) {
	if errors.Is(err, ErrUnknownList) {
		respond.Error(c, http.StatusNotFound, "not_found", "unknown list", nil)
		return
	}
	respond.Error(c, http.StatusInternalServerError, "storage_error", "failed to access preference lists", nil)
}
