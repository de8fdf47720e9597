package mealplan

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"mealplan-backend/internal/macros"
	"mealplan-backend/internal/shared/server/respond"
)

// Handler exposes structure preview and plan endpoints.
type Handler struct {
	Svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches meal-plan routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/structure", h.previewStructure)
	rg.POST("/plans", h.generatePlan)
	rg.GET("/plans/:id", h.getPlan)
	rg.POST("/plans/:id/meals/:index/replace", h.replaceMeal)
}

type structureRequest struct {
	MealCount  int `json:"mealCount"`
	SnackCount int `json:"snackCount"`
}

func (h *Handler) previewStructure(c *gin.Context) {
	var req structureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, "invalid request body", nil)
		return
	}
	if req.MealCount < 0 || req.SnackCount < 0 {
		respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, "meal and snack counts must be non-negative", nil)
		return
	}
	respond.OK(c, GenerateStructure(req.MealCount, req.SnackCount))
}

type generateRequest struct {
	Targets     macros.Targets `json:"targets"`
	MealCount   int            `json:"mealCount"`
	SnackCount  int            `json:"snackCount"`
	Dietary     string         `json:"dietary"`
	Preferences []string       `json:"preferences"`
	Exclusions  []string       `json:"exclusions"`
	FreeText    string         `json:"freeText"`
}

func (h *Handler) generatePlan(c *gin.Context) {
	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, "invalid request body", nil)
		return
	}

	plan, err := h.Svc.Generate(c.Request.Context(), GenerateInput{
		Targets:     req.Targets,
		MealCount:   req.MealCount,
		SnackCount:  req.SnackCount,
		Dietary:     req.Dietary,
		Preferences: req.Preferences,
		Exclusions:  req.Exclusions,
		FreeText:    req.FreeText,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.Set("planId", plan.ID)
	respond.Created(c, planPayload(plan))
}

func (h *Handler) getPlan(c *gin.Context) {
	plan, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.Set("planId", plan.ID)
	respond.OK(c, planPayload(plan))
}

type replaceRequest struct {
	FreeText  string `json:"freeText"`
	Rebalance bool   `json:"rebalance"`
}

func (h *Handler) replaceMeal(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, "slot index must be an integer", nil)
		return
	}

	var req replaceRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, "invalid request body", nil)
		return
	}

	result, err := h.Svc.Replace(c.Request.Context(), ReplaceInput{
		PlanID:    c.Param("id"),
		SlotIndex: index,
		FreeText:  req.FreeText,
		Rebalance: req.Rebalance,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.Set("planId", result.Plan.ID)
	payload := planPayload(result.Plan)
	payload["rebalanced"] = result.Rebalanced
	payload["rebalanceSuccess"] = result.Success
	respond.OK(c, payload)
}

// planPayload shapes a plan response, attaching a per-meal match score
// against the meal's slot-derived targets. Meals with no set target carry a
// null score rather than 0.
func planPayload(plan Plan) gin.H {
	structure := GenerateStructure(plan.MealCount, plan.SnackCount)
	scored := make([]gin.H, len(plan.Meals))
	for i, meal := range plan.Meals {
		var score *int
		if i < len(structure.Slots) {
			if s, ok := MatchScore(meal, SlotTargets(plan.Targets, structure.Slots[i])); ok {
				score = &s
			}
		}
		scored[i] = gin.H{"meal": meal, "matchScore": score}
	}
	return gin.H{
		"id":         plan.ID,
		"targets":    plan.Targets,
		"mealCount":  plan.MealCount,
		"snackCount": plan.SnackCount,
		"dietary":    plan.Dietary,
		"meals":      scored,
		"createdAt":  plan.CreatedAt,
		"updatedAt":  plan.UpdatedAt,
	}
}

// respondError maps the error taxonomy onto HTTP statuses: input errors 400,
// unknown plan 404, format/contract rejections 422, transport failures 502.
func (h *Handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrPlanNotFound):
		respond.Error(c, http.StatusNotFound, ErrorCodeNotFound, "plan not found", nil)
	case errors.Is(err, ErrBadSlotIndex):
		respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, "slot index out of range", nil)
	case errors.Is(err, ErrLLM):
		respond.Error(c, http.StatusBadGateway, ErrorCodeLLM, "completion call failed", nil)
	case errors.Is(err, ErrNoJSONFound), errors.Is(err, ErrMalformedJSON):
		respond.Error(c, http.StatusUnprocessableEntity, ErrorCodeAIFormat, err.Error(), nil)
	case errors.Is(err, ErrMissingMeals), errors.Is(err, ErrMealCountMismatch), errors.Is(err, ErrMacroTolerance):
		respond.Error(c, http.StatusUnprocessableEntity, ErrorCodeAIContract, err.Error(), nil)
	case errors.Is(err, ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, err.Error(), nil)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		respond.Error(c, http.StatusRequestTimeout, "timeout", "request canceled", nil)
	default:
		respond.Error(c, http.StatusInternalServerError, ErrorCodeStorage, "failed to store or load plan", nil)
	}
}
