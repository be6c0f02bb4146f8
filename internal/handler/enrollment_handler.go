package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/treinahub/treinahub-backend/internal/model"
	"github.com/treinahub/treinahub-backend/internal/repository"
	"github.com/treinahub/treinahub-backend/internal/response"
	"github.com/treinahub/treinahub-backend/internal/service"
	"github.com/treinahub/treinahub-backend/internal/validator"
)

// EnrollmentHandler handles the student enrollment routes under /alunos.
type EnrollmentHandler struct {
	enrollmentService *service.EnrollmentService
}

// NewEnrollmentHandler creates a new EnrollmentHandler.
func NewEnrollmentHandler(enrollmentService *service.EnrollmentService) *EnrollmentHandler {
	return &EnrollmentHandler{enrollmentService: enrollmentService}
}

// List godoc
// GET /alunos/
// Without a filter, lists every enrollment. With ?session_id=N, returns
// that session's roster enriched with the course name and suggested
// instructor.
func (h *EnrollmentHandler) List(c *gin.Context) {
	if raw, ok := c.GetQuery("session_id"); ok {
		sessionID, err := strconv.Atoi(raw)
		if err != nil {
			response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
			return
		}

		roster, err := h.enrollmentService.Roster(c.Request.Context(), sessionID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				response.FailWithMessage(c, http.StatusNotFound, response.ErrNotFound,
					fmt.Sprintf("A turma com ID %d não foi encontrada.", sessionID))
				return
			}
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
			return
		}
		response.Success(c, http.StatusOK, roster)
		return
	}

	enrollments, err := h.enrollmentService.List(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	if enrollments == nil {
		enrollments = []model.Enrollment{}
	}
	response.Success(c, http.StatusOK, gin.H{"enrollments": enrollments})
}

// Create godoc
// POST /alunos/
// Registers a person into a session. The session must exist and the
// email must not be taken.
func (h *EnrollmentHandler) Create(c *gin.Context) {
	var req model.CreateEnrollmentRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	enrollment := &model.Enrollment{
		FullName:  req.FullName,
		Email:     req.Email,
		SessionID: req.SessionID,
	}
	if req.Paid != nil {
		enrollment.Paid = *req.Paid
	}

	if err := h.enrollmentService.Create(c.Request.Context(), enrollment); err != nil {
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			response.FailWithMessage(c, http.StatusNotFound, response.ErrNotFound,
				fmt.Sprintf("A turma com ID %d não foi encontrada.", req.SessionID))
		case errors.Is(err, repository.ErrDuplicateEmail):
			response.FailWithMessage(c, http.StatusConflict, response.ErrDuplicateEmail,
				fmt.Sprintf("O email '%s' já está cadastrado.", req.Email))
		default:
			response.FailWithFields(c, http.StatusInternalServerError, response.ErrInternal,
				map[string]string{"detail": err.Error()})
		}
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"enrollment": enrollment})
}

// Update godoc
// PUT /alunos/:id
// Partially updates an enrollment (full_name, email, paid). Fields
// absent from the body are left untouched.
func (h *EnrollmentHandler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req model.UpdateEnrollmentRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	enrollment, err := h.enrollmentService.Update(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			response.FailWithMessage(c, http.StatusNotFound, response.ErrNotFound,
				"Aluno não encontrado.")
		case errors.Is(err, repository.ErrDuplicateEmail):
			response.Fail(c, http.StatusConflict, response.ErrDuplicateEmail)
		default:
			response.FailWithFields(c, http.StatusInternalServerError, response.ErrInternal,
				map[string]string{"detail": err.Error()})
		}
		return
	}
	response.Success(c, http.StatusOK, gin.H{"enrollment": enrollment})
}

// Delete godoc
// DELETE /alunos/:id
// Removes an enrollment by id.
func (h *EnrollmentHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	if err := h.enrollmentService.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			response.FailWithMessage(c, http.StatusNotFound, response.ErrNotFound,
				"Aluno não encontrado.")
			return
		}
		response.FailWithFields(c, http.StatusInternalServerError, response.ErrInternal,
			map[string]string{"detail": err.Error()})
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Aluno excluído com sucesso."})
}
