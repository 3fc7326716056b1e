package api

import (
	"net/http"

	"ny11/wellness-app/internal/domain"
	"ny11/wellness-app/internal/service"

	"github.com/gin-gonic/gin"
)

type PlanHandler struct {
	planService service.PlanService
}

func NewPlanHandler(planService service.PlanService) *PlanHandler {
	return &PlanHandler{planService: planService}
}

// UpdateProfileRequest carries only the fields being changed.
type UpdateProfileRequest struct {
	Name   *string      `json:"name" binding:"omitempty,min=1"`
	Phone  *string      `json:"phone"`
	Avatar *string      `json:"avatar" binding:"omitempty,url"`
	Age    *int         `json:"age" binding:"omitempty,gt=0,lte=130"`
	Weight *float64     `json:"weight" binding:"omitempty,gt=0"`
	Height *float64     `json:"height" binding:"omitempty,gt=0"`
	Goal   *domain.Goal `json:"goal" binding:"omitempty,oneof=weight_loss weight_gain muscle_build fitness maintenance"`
}

type ToggleItemRequest struct {
	Section domain.Section `json:"section" binding:"required,oneof=breakfast lunch dinner snacks exercises"`
	Index   *int           `json:"index" binding:"required,min=0"`
}

// UpdateProfile godoc
// @Summary Update the session user's profile
// @Description Completing age, weight, height and goal triggers plan generation.
// @Tags Plan
// @Security BearerAuth
// @Param profile body UpdateProfileRequest true "Fields to change"
// @Success 200 {object} domain.User
// @Router /me/profile [patch]
func (h *PlanHandler) UpdateProfile(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	user, err := h.planService.UpdateProfile(c.Request.Context(), domain.ProfilePatch{
		Name:     req.Name,
		Phone:    req.Phone,
		Avatar:   req.Avatar,
		Age:      req.Age,
		WeightKg: req.Weight,
		HeightCm: req.Height,
		Goal:     req.Goal,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, user)
}

func (h *PlanHandler) Plan(c *gin.Context) {
	c.JSON(http.StatusOK, h.planService.Plan(c.Request.Context()))
}

func (h *PlanHandler) Today(c *gin.Context) {
	c.JSON(http.StatusOK, h.planService.Today(c.Request.Context()))
}

func (h *PlanHandler) Day(c *gin.Context) {
	day, err := h.planService.Day(c.Request.Context(), c.Param("date"))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, day)
}

// SetDay replaces the whole plan for a date.
func (h *PlanHandler) SetDay(c *gin.Context) {
	var dp domain.DailyPlan
	if err := c.ShouldBindJSON(&dp); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	day, err := h.planService.SetDay(c.Request.Context(), c.Param("date"), dp)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, day)
}

func (h *PlanHandler) ToggleItem(c *gin.Context) {
	var req ToggleItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	day, err := h.planService.ToggleItem(c.Request.Context(), c.Param("date"), req.Section, *req.Index)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, day)
}

func (h *PlanHandler) Stats(c *gin.Context) {
	c.JSON(http.StatusOK, h.planService.Stats(c.Request.Context()))
}
