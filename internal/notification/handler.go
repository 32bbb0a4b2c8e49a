package notification

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

// @Summary      Register a trainer device
// @Tags         notifications
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        trainerID path int true "Trainer ID"
// @Param        request body notification.RegisterTokenRequest true "FCM token"
// @Success      200 {object} api.MessageResponse
// @Failure      400 {object} api.ErrorResponse
// @Failure      403 {object} api.ErrorResponse
// @Router       /trainers/{trainerID}/fcm-token [put]
func (h *Handler) RegisterTrainerToken(c *gin.Context) {
	h.register(c, "trainerID", Trainer)
}

// @Summary      Register a user device
// @Tags         notifications
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        userID path int true "User ID"
// @Param        request body notification.RegisterTokenRequest true "FCM token"
// @Success      200 {object} api.MessageResponse
// @Failure      400 {object} api.ErrorResponse
// @Failure      403 {object} api.ErrorResponse
// @Router       /users/{userID}/fcm-token [put]
func (h *Handler) RegisterUserToken(c *gin.Context) {
	h.register(c, "userID", User)
}

func (h *Handler) register(c *gin.Context, param string, recipient func(int64) Recipient) {
	id, err := strconv.ParseInt(c.Param(param), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid " + param})
		return
	}

	var req RegisterTokenRequest
	if !api.BindJSON(c, &req) {
		return
	}

	if err := h.service.RegisterToken(c.Request.Context(), recipient(id), req.FCMToken); err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "Token registered"})
}
