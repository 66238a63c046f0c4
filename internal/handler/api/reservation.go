package api

import (
	"errors"
	"net/http"

	reqdto "staybook/internal/handler/dto/request"
	resdto "staybook/internal/handler/dto/response"
	"staybook/internal/handler/middleware"
	"staybook/internal/pkg/errs"
	"staybook/internal/usecase/commands"
	"staybook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReservationHandler struct {
	commands commands.ReservationCommands
	queries  queries.ReservationQueries
}

func NewReservationHandler(cmds commands.ReservationCommands, qs queries.ReservationQueries) *ReservationHandler {
	return &ReservationHandler{
		commands: cmds,
		queries:  qs,
	}
}

// @Summary Create reservation
// @Description Book a residence; the price is fixed server-side and the status always starts pending
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateReservationRequest true "Reservation request"
// @Success 201 {object} resdto.ReservationResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /reservations [post]
func (h *ReservationHandler) CreateReservation(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.commands.Create(c.Request.Context(), actor, req.ToCommand())
	if err != nil {
		h.respondReservationError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromReservationView(view))
}

// @Summary Get reservation
// @Description Get a reservation; only the residence owner and the original booker may view it
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /reservations/{id} [get]
func (h *ReservationHandler) GetReservation(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid reservation ID format",
		})
		return
	}

	view, err := h.queries.GetByID(c.Request.Context(), actor, id)
	if err != nil {
		h.respondReservationError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

// @Summary List reservations for owner
// @Description List reservations held against any residence the authenticated user owns
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.ReservationListResponse
// @Failure 401 {object} map[string]string
// @Router /reservations/owner [get]
func (h *ReservationHandler) GetOwnerReservations(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	items, err := h.queries.ListForOwner(c.Request.Context(), actor)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationListItems(items))
}

// @Summary List own reservations
// @Description List reservations booked by the authenticated user
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.ReservationListResponse
// @Failure 401 {object} map[string]string
// @Router /reservations/client [get]
func (h *ReservationHandler) GetClientReservations(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	items, err := h.queries.ListForClient(c.Request.Context(), actor)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationListItems(items))
}

// @Summary Owner reservation stats
// @Description Aggregate reservation counts and confirmed revenue over the owner's residences
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.OwnerStatsResponse
// @Failure 401 {object} map[string]string
// @Router /reservations/stats/owner [get]
func (h *ReservationHandler) GetOwnerStats(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	stats, err := h.queries.StatsForOwner(c.Request.Context(), actor)
	if err != nil {
		h.respondReservationError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromOwnerStats(stats))
}

// @Summary Transition reservation status
// @Description Move a reservation to a new status; only the owner of the referenced residence may transition
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Param request body reqdto.TransitionReservationRequest true "Target status"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /reservations/{id}/status [patch]
func (h *ReservationHandler) TransitionReservation(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid reservation ID format",
		})
		return
	}

	var req reqdto.TransitionReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.commands.Transition(c.Request.Context(), actor, id, req.Status)
	if err != nil {
		h.respondReservationError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

// @Summary Delete reservation
// @Description Delete a reservation; the residence owner and the original booker hold equal rights
// @Tags reservations
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /reservations/{id} [delete]
func (h *ReservationHandler) DeleteReservation(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid reservation ID format",
		})
		return
	}

	if err := h.commands.Delete(c.Request.Context(), actor, id); err != nil {
		h.respondReservationError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *ReservationHandler) respondReservationError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrReservationNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Reservation not found",
		})
	case errors.Is(err, errs.ErrResidenceNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Residence not found",
		})
	case errors.Is(err, errs.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{
			"error": "Insufficient permissions",
		})
	case errors.Is(err, errs.ErrInvalidStatus):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid reservation status",
		})
	case errors.Is(err, errs.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid reservation data",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
