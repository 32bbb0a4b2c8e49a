package user

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

// @Summary      Get user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        userID path int true "User ID"
// @Success      200 {object} user.User
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /users/{userID} [get]
func (h *Handler) GetUser(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("userID"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid user ID"})
		return
	}

	u, err := h.service.GetUser(c.Request.Context(), userID)
	if err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, u)
}

// @Summary      Find a member by name and phone number
// @Description  Trainer-only: used before registering a member
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        name query string true "Member name"
// @Param        phone_number query string true "Member phone number"
// @Success      200 {object} user.User
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /members/search [get]
func (h *Handler) FindMember(c *gin.Context) {
	u, err := h.service.FindMember(c.Request.Context(), c.Query("name"), c.Query("phone_number"))
	if err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, u)
}
