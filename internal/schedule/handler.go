package schedule

import (
	"net/http"
	"strconv"
	"time"

	"ptgym/internal/api"
	"ptgym/internal/auth"

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

func parseID(c *gin.Context, param string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(param), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid " + param})
		return 0, false
	}
	return id, true
}

func forbidden(c *gin.Context) {
	c.JSON(http.StatusForbidden, api.ErrorResponse{Error: "Schedule belongs to another account"})
}

// queryDate reads ?date=, defaulting to today.
func (h *Handler) queryDate(c *gin.Context) (time.Time, bool) {
	raw := c.Query("date")
	if raw == "" {
		return startOfDay(time.Now().UTC()), true
	}
	d, err := ParseDate(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return time.Time{}, false
	}
	return d, true
}

// @Summary      Book a lesson
// @Description  Books a lesson for a registered member and spends one credit
// @Tags         schedules
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body schedule.CreateScheduleRequest true "Booking"
// @Success      201 {object} schedule.Schedule
// @Failure      400 {object} api.ErrorResponse
// @Failure      403 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /schedules [post]
func (h *Handler) CreateSchedule(c *gin.Context) {
	var req CreateScheduleRequest
	if !api.BindJSON(c, &req) {
		return
	}

	if !auth.CallerIs(c, req.TrainerID, req.UserID) {
		forbidden(c)
		return
	}

	start, err := ParseDateTime(req.StartTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	sc, err := h.service.CreateSchedule(c.Request.Context(), req.TrainerID, req.UserID, start)
	if err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, sc)
}

// owned loads the schedule and checks the caller is one of its parties.
func (h *Handler) owned(c *gin.Context) (*ScheduleDetail, bool) {
	id, ok := parseID(c, "scheduleID")
	if !ok {
		return nil, false
	}

	sc, err := h.service.GetSchedule(c.Request.Context(), id)
	if err != nil {
		api.RespondError(c, err)
		return nil, false
	}

	if !auth.CallerIs(c, sc.TrainerID, sc.UserID) {
		forbidden(c)
		return nil, false
	}
	return sc, true
}

// @Summary      Get a schedule
// @Tags         schedules
// @Produce      json
// @Security     BearerAuth
// @Param        scheduleID path int true "Schedule ID"
// @Success      200 {object} schedule.ScheduleDetail
// @Failure      403 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /schedules/{scheduleID} [get]
func (h *Handler) GetSchedule(c *gin.Context) {
	sc, ok := h.owned(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, sc)
}

// @Summary      Change or cancel a lesson
// @Description  MODIFIED moves the lesson to start_time; CANCELLED cancels it and refunds the credit
// @Tags         schedules
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        scheduleID path int true "Schedule ID"
// @Param        request body schedule.ChangeScheduleRequest true "Change"
// @Success      200 {object} schedule.ChangeResult
// @Failure      400 {object} api.ErrorResponse
// @Failure      403 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /schedules/{scheduleID} [put]
func (h *Handler) ChangeSchedule(c *gin.Context) {
	var req ChangeScheduleRequest
	if !api.BindJSON(c, &req) {
		return
	}

	sc, ok := h.owned(c)
	if !ok {
		return
	}

	target, err := ParseStatus(req.Status)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	var start time.Time
	if req.StartTime != "" {
		if start, err = ParseDateTime(req.StartTime); err != nil {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
			return
		}
	}

	result, err := h.service.HandleChangeUserSchedule(c.Request.Context(), sc.ID, start, target)
	if err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// @Summary      Delete a schedule
// @Tags         schedules
// @Produce      json
// @Security     BearerAuth
// @Param        scheduleID path int true "Schedule ID"
// @Success      200 {object} api.MessageResponse
// @Failure      403 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /schedules/{scheduleID} [delete]
func (h *Handler) DeleteSchedule(c *gin.Context) {
	sc, ok := h.owned(c)
	if !ok {
		return
	}

	if err := h.service.DeleteSchedule(c.Request.Context(), sc.ID); err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "Schedule deleted"})
}

// @Summary      Check whether a lesson can still be changed
// @Tags         schedules
// @Produce      json
// @Security     BearerAuth
// @Param        scheduleID path int true "Schedule ID"
// @Success      200 {object} schedule.ChangeWindow
// @Failure      403 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /schedules/{scheduleID}/check-change [get]
func (h *Handler) ValidateScheduleChange(c *gin.Context) {
	sc, ok := h.owned(c)
	if !ok {
		return
	}

	window, err := h.service.ValidateScheduleChange(c.Request.Context(), sc.ID)
	if err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, window)
}

// @Summary      Trainer calendar
// @Description  type=day returns slot markers, type=week the booked lessons of the week, type=month the dates with free capacity
// @Tags         schedules
// @Produce      json
// @Security     BearerAuth
// @Param        trainerID path int true "Trainer ID"
// @Param        date query string false "YYYY-MM-DD, defaults to today"
// @Param        type query string false "day, week or month" default(day)
// @Success      200 {object} api.ResultResponse
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /trainers/{trainerID}/schedules [get]
func (h *Handler) GetTrainerSchedules(c *gin.Context) {
	trainerID, ok := parseID(c, "trainerID")
	if !ok {
		return
	}

	date, ok := h.queryDate(c)
	if !ok {
		return
	}

	var (
		result interface{}
		err    error
	)
	switch c.DefaultQuery("type", "day") {
	case "day":
		result, err = h.service.GetTrainerDaySchedule(c.Request.Context(), trainerID, date)
	case "week":
		result, err = h.service.GetTrainerWeekSchedule(c.Request.Context(), trainerID, date)
	case "month":
		result, err = h.service.GetAvailableTrainerMonthSchedule(c.Request.Context(), trainerID, date.Year(), date.Month())
	default:
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "type must be day, week or month"})
		return
	}
	if err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, api.ResultResponse{Result: result})
}

// @Summary      Member calendar
// @Description  type=day returns the member's lessons on the date, type=month the dates that have a lesson
// @Tags         schedules
// @Produce      json
// @Security     BearerAuth
// @Param        userID path int true "User ID"
// @Param        date query string false "YYYY-MM-DD, defaults to today"
// @Param        type query string false "day or month" default(day)
// @Success      200 {object} api.ResultResponse
// @Failure      400 {object} api.ErrorResponse
// @Failure      403 {object} api.ErrorResponse
// @Router       /users/{userID}/schedules [get]
func (h *Handler) GetUserSchedules(c *gin.Context) {
	userID, ok := parseID(c, "userID")
	if !ok {
		return
	}

	date, ok := h.queryDate(c)
	if !ok {
		return
	}

	var (
		result interface{}
		err    error
	)
	switch c.DefaultQuery("type", "day") {
	case "day":
		result, err = h.service.GetUserDaySchedules(c.Request.Context(), userID, date)
	case "month":
		result, err = h.service.GetUserMonthScheduleDates(c.Request.Context(), userID, date.Year(), date.Month())
	default:
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "type must be day or month"})
		return
	}
	if err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, api.ResultResponse{Result: result})
}
