package traineruser

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
	return &Handler{service: service}
}

func pathIDs(c *gin.Context) (trainerID, userID int64, ok bool) {
	trainerID, err := strconv.ParseInt(c.Param("trainerID"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid trainer ID"})
		return 0, 0, false
	}
	userID, err = strconv.ParseInt(c.Param("userID"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid user ID"})
		return 0, 0, false
	}
	return trainerID, userID, true
}

// @Summary      Register a member
// @Description  Trainer-only: links a member found by name and phone number with a new lesson package
// @Tags         trainer-users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        trainerID path int true "Trainer ID"
// @Param        request body traineruser.RegisterRequest true "Member and package"
// @Success      201 {object} traineruser.TrainerUser
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /trainers/{trainerID}/trainer-users [post]
func (h *Handler) Register(c *gin.Context) {
	trainerID, err := strconv.ParseInt(c.Param("trainerID"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid trainer ID"})
		return
	}

	var req RegisterRequest
	if !api.BindJSON(c, &req) {
		return
	}

	tu, err := h.service.Register(c.Request.Context(), trainerID, req)
	if err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, tu)
}

// @Summary      List a trainer's members
// @Tags         trainer-users
// @Produce      json
// @Security     BearerAuth
// @Param        trainerID path int true "Trainer ID"
// @Param        deleted query bool false "Include ended relationships"
// @Success      200 {array} traineruser.TrainerUserDetail
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /trainers/{trainerID}/trainer-users [get]
func (h *Handler) ListByTrainer(c *gin.Context) {
	trainerID, err := strconv.ParseInt(c.Param("trainerID"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid trainer ID"})
		return
	}

	includeDeleted := c.Query("deleted") == "true"
	list, err := h.service.ListByTrainer(c.Request.Context(), trainerID, includeDeleted)
	if err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}

// @Summary      Get a member's lesson package
// @Tags         trainer-users
// @Produce      json
// @Security     BearerAuth
// @Param        trainerID path int true "Trainer ID"
// @Param        userID path int true "User ID"
// @Success      200 {object} traineruser.TrainerUser
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /trainers/{trainerID}/trainer-users/{userID} [get]
func (h *Handler) Get(c *gin.Context) {
	trainerID, userID, ok := pathIDs(c)
	if !ok {
		return
	}

	tu, err := h.service.Get(c.Request.Context(), trainerID, userID)
	if err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, tu)
}

// @Summary      Update a member's lesson package
// @Tags         trainer-users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        trainerID path int true "Trainer ID"
// @Param        userID path int true "User ID"
// @Param        request body traineruser.UpdateRequest true "Fields to change"
// @Success      200 {object} traineruser.TrainerUser
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /trainers/{trainerID}/trainer-users/{userID} [put]
func (h *Handler) Update(c *gin.Context) {
	trainerID, userID, ok := pathIDs(c)
	if !ok {
		return
	}

	var req UpdateRequest
	if !api.BindJSON(c, &req) {
		return
	}

	tu, err := h.service.Update(c.Request.Context(), trainerID, userID, req)
	if err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, tu)
}

// @Summary      End a member relationship
// @Tags         trainer-users
// @Produce      json
// @Security     BearerAuth
// @Param        trainerID path int true "Trainer ID"
// @Param        userID path int true "User ID"
// @Success      200 {object} api.MessageResponse
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /trainers/{trainerID}/trainer-users/{userID} [delete]
func (h *Handler) End(c *gin.Context) {
	trainerID, userID, ok := pathIDs(c)
	if !ok {
		return
	}

	if err := h.service.End(c.Request.Context(), trainerID, userID); err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "Relationship ended"})
}

// @Summary      List a member's trainers
// @Tags         trainer-users
// @Produce      json
// @Security     BearerAuth
// @Param        userID path int true "User ID"
// @Success      200 {array} traineruser.TrainerUserDetail
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /users/{userID}/trainer-users [get]
func (h *Handler) ListByUser(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("userID"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid user ID"})
		return
	}

	list, err := h.service.ListByUser(c.Request.Context(), userID)
	if err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}
