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

type ResidenceHandler struct {
	commands commands.ResidenceCommands
	queries  queries.ResidenceQueries
}

func NewResidenceHandler(cmds commands.ResidenceCommands, qs queries.ResidenceQueries) *ResidenceHandler {
	return &ResidenceHandler{
		commands: cmds,
		queries:  qs,
	}
}

// @Summary List residences
// @Description List publicly visible residences, optionally filtered by location, title, and max price
// @Tags residences
// @Produce json
// @Param location query string false "Case-insensitive location substring"
// @Param title query string false "Case-insensitive title substring"
// @Param max_price query int false "Upper price bound"
// @Success 200 {array} resdto.ResidenceResponse
// @Failure 400 {object} map[string]string
// @Router /residences [get]
func (h *ResidenceHandler) ListResidences(c *gin.Context) {
	var req reqdto.ListResidencesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid query parameters",
		})
		return
	}

	views, err := h.queries.List(c.Request.Context(), req.ToFilters())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromResidenceViews(views))
}

// @Summary Get residence
// @Description Get residence by ID
// @Tags residences
// @Produce json
// @Param id path string true "Residence ID"
// @Success 200 {object} resdto.ResidenceResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /residences/{id} [get]
func (h *ResidenceHandler) GetResidence(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid residence ID format",
		})
		return
	}

	view, err := h.queries.GetByID(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrResidenceNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Residence not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromResidenceView(view))
}

// @Summary Create residence
// @Description Create a new residence listing owned by the authenticated user
// @Tags residences
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateResidenceRequest true "Residence payload"
// @Success 201 {object} resdto.ResidenceResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /residences [post]
func (h *ResidenceHandler) CreateResidence(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreateResidenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	id, err := h.commands.Create(c.Request.Context(), actor, req.ToCommand())
	if err != nil {
		h.respondResidenceError(c, err)
		return
	}

	view, err := h.queries.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusCreated, resdto.FromResidenceView(view))
}

// @Summary Update residence
// @Description Patch a residence; absent fields keep their stored value
// @Tags residences
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Residence ID"
// @Param request body reqdto.UpdateResidenceRequest true "Residence patch"
// @Success 200 {object} resdto.ResidenceResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /residences/{id} [put]
func (h *ResidenceHandler) UpdateResidence(c *gin.Context) {
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
			"error": "Invalid residence ID format",
		})
		return
	}

	var req reqdto.UpdateResidenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.commands.Update(c.Request.Context(), actor, id, req.ToCommand()); err != nil {
		h.respondResidenceError(c, err)
		return
	}

	view, err := h.queries.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromResidenceView(view))
}

// @Summary Delete residence
// @Description Delete a residence; its stored media files are removed best-effort
// @Tags residences
// @Security BearerAuth
// @Param id path string true "Residence ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /residences/{id} [delete]
func (h *ResidenceHandler) DeleteResidence(c *gin.Context) {
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
			"error": "Invalid residence ID format",
		})
		return
	}

	if err := h.commands.Delete(c.Request.Context(), actor, id); err != nil {
		h.respondResidenceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary List own residences
// @Description List residences owned by the authenticated user
// @Tags residences
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.ResidenceResponse
// @Failure 401 {object} map[string]string
// @Router /residences/owner [get]
func (h *ResidenceHandler) GetOwnResidences(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	views, err := h.queries.ListByOwner(c.Request.Context(), actor.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromResidenceViews(views))
}

func (h *ResidenceHandler) respondResidenceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrResidenceNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Residence not found",
		})
	case errors.Is(err, errs.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{
			"error": "Insufficient permissions",
		})
	case errors.Is(err, errs.ErrDuplicateReference):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Reference already in use",
		})
	case errors.Is(err, errs.ErrInvalidInput):
		body := gin.H{"error": "Invalid residence data"}
		if violations := errs.ViolationsOf(err); len(violations) > 0 {
			body["violations"] = violations
		}
		c.JSON(http.StatusBadRequest, body)
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
