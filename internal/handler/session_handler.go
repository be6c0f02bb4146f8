package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/treinahub/treinahub-backend/internal/model"
	"github.com/treinahub/treinahub-backend/internal/response"
	"github.com/treinahub/treinahub-backend/internal/service"
	"github.com/treinahub/treinahub-backend/internal/validator"
)

// SessionHandler handles the scheduling routes under /treinamentos/agendados.
type SessionHandler struct {
	sessionService *service.SessionService
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(sessionService *service.SessionService) *SessionHandler {
	return &SessionHandler{sessionService: sessionService}
}

// ListUpcoming godoc
// GET /treinamentos/agendados
// Lists sessions starting today or later, soonest first, each with its
// parent course embedded.
func (h *SessionHandler) ListUpcoming(c *gin.Context) {
	sessions, err := h.sessionService.ListUpcoming(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	if sessions == nil {
		sessions = []model.Session{}
	}
	response.Success(c, http.StatusOK, gin.H{"sessions": sessions})
}

// Create godoc
// POST /treinamentos/agendados
// Schedules a catalog course. The course must already exist.
func (h *SessionHandler) Create(c *gin.Context) {
	var req model.CreateSessionRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	sess := &model.Session{
		CourseID:  req.CourseID,
		StartDate: req.StartDate,
		TimeRange: req.TimeRange,
		Location:  req.Location,
	}
	if req.Status != nil {
		sess.Status = *req.Status
	}

	if err := h.sessionService.Create(c.Request.Context(), sess); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			response.FailWithMessage(c, http.StatusNotFound, response.ErrNotFound,
				fmt.Sprintf("O treinamento com ID %d não existe no catálogo.", req.CourseID))
			return
		}
		response.FailWithFields(c, http.StatusInternalServerError, response.ErrInternal,
			map[string]string{"detail": err.Error()})
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"session": sess})
}

// Update godoc
// PUT /treinamentos/agendados/:id
// Partially updates a session (status, start_date, location). Fields
// absent from the body are left untouched; unknown fields are ignored.
func (h *SessionHandler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req model.UpdateSessionRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	sess, err := h.sessionService.Update(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			response.FailWithMessage(c, http.StatusNotFound, response.ErrNotFound,
				"Turma não encontrada.")
			return
		}
		response.FailWithFields(c, http.StatusInternalServerError, response.ErrInternal,
			map[string]string{"detail": err.Error()})
		return
	}
	response.Success(c, http.StatusOK, gin.H{"session": sess})
}
