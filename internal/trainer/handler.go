package trainer

import (
	"net/http"
	"strconv"

	"ptgym/internal/api"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{
		service: service,
	}
}

// @Summary      Get trainer profile
// @Tags         trainers
// @Produce      json
// @Security     BearerAuth
// @Param        trainerID path int true "Trainer ID"
// @Success      200 {object} trainer.Trainer
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /trainers/{trainerID} [get]
func (h *Handler) GetTrainer(c *gin.Context) {
	trainerID, err := strconv.ParseInt(c.Param("trainerID"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid trainer ID"})
		return
	}

	t, err := h.service.GetTrainer(c.Request.Context(), trainerID)
	if err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, t)
}

// @Summary      Update trainer profile
// @Description  Trainer-only: updates lesson settings; omitted fields are kept
// @Tags         trainers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        trainerID path int true "Trainer ID"
// @Param        request body trainer.UpdateTrainerRequest true "Profile fields"
// @Success      200 {object} trainer.Trainer
// @Failure      400 {object} api.ErrorResponse
// @Failure      403 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /trainers/{trainerID} [put]
func (h *Handler) UpdateTrainer(c *gin.Context) {
	trainerID, err := strconv.ParseInt(c.Param("trainerID"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid trainer ID"})
		return
	}

	var req UpdateTrainerRequest
	if !api.BindJSON(c, &req) {
		return
	}

	t, err := h.service.UpdateTrainer(c.Request.Context(), trainerID, req)
	if err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, t)
}

// @Summary      Get weekly availability
// @Tags         trainers
// @Produce      json
// @Security     BearerAuth
// @Param        trainerID path int true "Trainer ID"
// @Success      200 {array} trainer.Availability
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /trainers/{trainerID}/availability [get]
func (h *Handler) GetAvailabilities(c *gin.Context) {
	trainerID, err := strconv.ParseInt(c.Param("trainerID"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid trainer ID"})
		return
	}

	availabilities, err := h.service.GetAvailabilities(c.Request.Context(), trainerID)
	if err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, availabilities)
}

// @Summary      Replace weekly availability
// @Description  Trainer-only: replaces every weekly work window of the trainer
// @Tags         trainers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        trainerID path int true "Trainer ID"
// @Param        request body trainer.ReplaceAvailabilityRequest true "Weekly windows"
// @Success      200 {array} trainer.Availability
// @Failure      400 {object} api.ErrorResponse
// @Failure      403 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /trainers/{trainerID}/availability [put]
func (h *Handler) ReplaceAvailabilities(c *gin.Context) {
	trainerID, err := strconv.ParseInt(c.Param("trainerID"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid trainer ID"})
		return
	}

	var req ReplaceAvailabilityRequest
	if !api.BindJSON(c, &req) {
		return
	}

	availabilities, err := h.service.ReplaceAvailabilities(c.Request.Context(), trainerID, req)
	if err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, availabilities)
}
