package changeticket

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"ptgym/internal/api"
	"ptgym/internal/auth"
	"ptgym/internal/schedule"

	"github.com/gin-gonic/gin"
)

// ScheduleGetter resolves the parties of a schedule a ticket is filed against.
type ScheduleGetter interface {
	GetSchedule(ctx context.Context, id int64) (*schedule.ScheduleDetail, error)
}

type Handler struct {
	service   Service
	schedules ScheduleGetter
}

func NewHandler(service Service, schedules ScheduleGetter) *Handler {
	return &Handler{
		service:   service,
		schedules: schedules,
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

func forbidden(c *gin.Context, msg string) {
	c.JSON(http.StatusForbidden, api.ErrorResponse{Error: msg})
}

// callerFrom maps the caller's role to the side a ticket is filed from.
func callerFrom(c *gin.Context) ChangeFrom {
	role, _ := auth.GetRole(c)
	return ChangeFrom(strings.ToUpper(role))
}

func parseOptionalTime(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	t, err := schedule.ParseDateTime(raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// @Summary      Request a lesson change
// @Description  Files a WAITING change or cancel request and notifies the other party
// @Tags         change-tickets
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body changeticket.CreateRequest true "Change request"
// @Success      201 {object} changeticket.ChangeTicket
// @Failure      400 {object} api.ErrorResponse
// @Failure      403 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /change-tickets [post]
func (h *Handler) CreateChangeTicket(c *gin.Context) {
	var req CreateRequest
	if !api.BindJSON(c, &req) {
		return
	}

	sc, err := h.schedules.GetSchedule(c.Request.Context(), req.ScheduleID)
	if err != nil {
		api.RespondError(c, err)
		return
	}

	if !auth.CallerIs(c, sc.TrainerID, sc.UserID) {
		forbidden(c, "Schedule belongs to another account")
		return
	}

	from := ChangeFrom(req.ChangeFrom)
	if from != callerFrom(c) {
		forbidden(c, "change_from must match the caller")
		return
	}

	requestTime, err := parseOptionalTime(req.RequestTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}
	asIs, err := parseOptionalTime(req.AsIsDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	ticket, err := h.service.CreateChangeTicket(c.Request.Context(), NewTicket{
		ScheduleID:  sc.ID,
		ChangeFrom:  from,
		ChangeType:  ChangeType(req.ChangeType),
		Description: req.Description,
		RequestTime: requestTime,
		AsIsDate:    asIs,
	})
	if err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, ticket)
}

func (h *Handler) owned(c *gin.Context) (*TicketDetail, bool) {
	id, ok := parseID(c, "ticketID")
	if !ok {
		return nil, false
	}

	ticket, err := h.service.GetChangeTicket(c.Request.Context(), id)
	if err != nil {
		api.RespondError(c, err)
		return nil, false
	}

	if !auth.CallerIs(c, ticket.TrainerID, ticket.UserID) {
		forbidden(c, "Change ticket belongs to another account")
		return nil, false
	}
	return ticket, true
}

// @Summary      Get a change ticket
// @Tags         change-tickets
// @Produce      json
// @Security     BearerAuth
// @Param        ticketID path int true "Ticket ID"
// @Success      200 {object} changeticket.TicketDetail
// @Failure      403 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /change-tickets/{ticketID} [get]
func (h *Handler) GetChangeTicket(c *gin.Context) {
	ticket, ok := h.owned(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, ticket)
}

// @Summary      Answer a change ticket
// @Description  APPROVED and REJECTED are sent by the other party, CANCELED by the requester
// @Tags         change-tickets
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        ticketID path int true "Ticket ID"
// @Param        request body changeticket.ResolveRequest true "Answer"
// @Success      200 {object} changeticket.ChangeTicket
// @Failure      400 {object} api.ErrorResponse
// @Failure      403 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /change-tickets/{ticketID} [put]
func (h *Handler) ResolveChangeTicket(c *gin.Context) {
	var req ResolveRequest
	if !api.BindJSON(c, &req) {
		return
	}

	ticket, ok := h.owned(c)
	if !ok {
		return
	}

	status, err := ParseStatus(req.Status)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	requester := callerFrom(c) == ticket.ChangeFrom
	if status == StatusCanceled && !requester {
		forbidden(c, "Only the requester can withdraw a change ticket")
		return
	}
	if status != StatusCanceled && requester {
		forbidden(c, "A change ticket is answered by the other party")
		return
	}

	start, err := parseOptionalTime(req.StartTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	resolved, err := h.service.ResolveChangeTicket(c.Request.Context(), ticket.ID, Resolution{
		Status:       status,
		StartTime:    start,
		RejectReason: req.RejectReason,
		Description:  req.Description,
	})
	if err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resolved)
}

// @Summary      Delete a waiting change ticket
// @Tags         change-tickets
// @Produce      json
// @Security     BearerAuth
// @Param        ticketID path int true "Ticket ID"
// @Success      200 {object} api.MessageResponse
// @Failure      400 {object} api.ErrorResponse
// @Failure      403 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /change-tickets/{ticketID} [delete]
func (h *Handler) DeleteChangeTicket(c *gin.Context) {
	ticket, ok := h.owned(c)
	if !ok {
		return
	}

	if callerFrom(c) != ticket.ChangeFrom {
		forbidden(c, "Only the requester can delete a change ticket")
		return
	}

	if err := h.service.DeleteChangeTicket(c.Request.Context(), ticket.ID); err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "Change ticket deleted"})
}

// @Summary      Change tickets of a trainer
// @Tags         change-tickets
// @Produce      json
// @Security     BearerAuth
// @Param        trainerID path int true "Trainer ID"
// @Param        status query string false "Comma separated statuses" default(WAITING)
// @Success      200 {object} api.ResultResponse
// @Failure      400 {object} api.ErrorResponse
// @Failure      403 {object} api.ErrorResponse
// @Router       /trainers/{trainerID}/change-tickets [get]
func (h *Handler) ListTrainerTickets(c *gin.Context) {
	trainerID, ok := parseID(c, "trainerID")
	if !ok {
		return
	}

	statuses, err := ParseStatuses(c.Query("status"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	tickets, err := h.service.ListByTrainer(c.Request.Context(), trainerID, statuses)
	if err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, api.ResultResponse{Result: tickets})
}

// @Summary      Change tickets of a member
// @Tags         change-tickets
// @Produce      json
// @Security     BearerAuth
// @Param        userID path int true "User ID"
// @Param        status query string false "Comma separated statuses" default(WAITING)
// @Success      200 {object} api.ResultResponse
// @Failure      400 {object} api.ErrorResponse
// @Failure      403 {object} api.ErrorResponse
// @Router       /users/{userID}/change-tickets [get]
func (h *Handler) ListUserTickets(c *gin.Context) {
	userID, ok := parseID(c, "userID")
	if !ok {
		return
	}

	statuses, err := ParseStatuses(c.Query("status"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	tickets, err := h.service.ListByUser(c.Request.Context(), userID, statuses)
	if err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, api.ResultResponse{Result: tickets})
}

// @Summary      Change request history of a member
// @Tags         change-tickets
// @Produce      json
// @Security     BearerAuth
// @Param        userID path int true "User ID"
// @Param        page query int false "Page" default(1)
// @Param        per_page query int false "Page size" default(10)
// @Success      200 {object} changeticket.HistoryPage
// @Failure      400 {object} api.ErrorResponse
// @Failure      403 {object} api.ErrorResponse
// @Router       /users/{userID}/change-tickets/history [get]
func (h *Handler) UserHistory(c *gin.Context) {
	userID, ok := parseID(c, "userID")
	if !ok {
		return
	}

	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid page"})
		return
	}
	perPage, err := strconv.Atoi(c.DefaultQuery("per_page", strconv.Itoa(defaultPerPage)))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid per_page"})
		return
	}

	history, err := h.service.UserHistory(c.Request.Context(), userID, page, perPage)
	if err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, history)
}
