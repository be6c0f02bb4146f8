package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/treinahub/treinahub-backend/internal/model"
	"github.com/treinahub/treinahub-backend/internal/response"
	"github.com/treinahub/treinahub-backend/internal/service"
	"github.com/treinahub/treinahub-backend/internal/validator"
)

// CourseHandler handles the training catalog routes.
type CourseHandler struct {
	courseService *service.CourseService
}

// NewCourseHandler creates a new CourseHandler.
func NewCourseHandler(courseService *service.CourseService) *CourseHandler {
	return &CourseHandler{courseService: courseService}
}

// List godoc
// GET /treinamentos
// Lists the whole catalog ordered by course name.
func (h *CourseHandler) List(c *gin.Context) {
	courses, err := h.courseService.List(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	if courses == nil {
		courses = []model.Course{}
	}
	response.Success(c, http.StatusOK, gin.H{"courses": courses})
}

// ListByVendor godoc
// GET /treinamentos/:vendor
// Lists catalog entries of a single vendor. An empty result is a 404.
func (h *CourseHandler) ListByVendor(c *gin.Context) {
	vendor := c.Param("vendor")

	courses, err := h.courseService.ListByVendor(c.Request.Context(), vendor)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	if len(courses) == 0 {
		response.FailWithMessage(c, http.StatusNotFound, response.ErrNotFound,
			"Nenhum treinamento encontrado para este vendor.")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"courses": courses})
}

// ListByInstructor godoc
// GET /treinamentos/instrutor/:nome
// Lists catalog entries whose suggested instructor contains :nome,
// case-insensitively. An empty result is a 404.
func (h *CourseHandler) ListByInstructor(c *gin.Context) {
	name := c.Param("nome")

	courses, err := h.courseService.ListByInstructor(c.Request.Context(), name)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	if len(courses) == 0 {
		response.FailWithMessage(c, http.StatusNotFound, response.ErrNotFound,
			"Nenhum treinamento encontrado para este instrutor.")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"courses": courses})
}

// Create godoc
// POST /treinamentos
// Adds a catalog entry. Does not schedule anything.
func (h *CourseHandler) Create(c *gin.Context) {
	var req model.CreateCourseRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	course := &model.Course{
		Name:                req.Name,
		Vendor:              req.Vendor,
		SuggestedInstructor: req.SuggestedInstructor,
	}

	if err := h.courseService.Create(c.Request.Context(), course); err != nil {
		response.FailWithFields(c, http.StatusInternalServerError, response.ErrInternal,
			map[string]string{"detail": err.Error()})
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"course": course})
}

// Delete godoc
// DELETE /treinamentos
// Removes a catalog entry identified by id and current name in the body.
// The name is cross-checked against the stored record, and the delete is
// refused while sessions still reference the course.
func (h *CourseHandler) Delete(c *gin.Context) {
	var req model.DeleteCourseRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	course, err := h.courseService.Delete(c.Request.Context(), req.ID, req.Name)
	switch {
	case err == nil:
		response.Success(c, http.StatusOK, gin.H{
			"message": fmt.Sprintf("Treinamento '%s' removido com sucesso.", course.Name),
		})
	case errors.Is(err, pgx.ErrNoRows):
		response.FailWithMessage(c, http.StatusNotFound, response.ErrNotFound,
			fmt.Sprintf("Treinamento com ID %d não encontrado.", req.ID))
	case errors.Is(err, service.ErrCourseNameMismatch):
		// The id resolved, so this is a payload-consistency failure, not a 404.
		response.FailWithMessage(c, http.StatusBadRequest, response.ErrNameMismatch,
			fmt.Sprintf("O treinamento com ID %d se chama '%s', mas foi fornecido '%s'.",
				req.ID, course.Name, req.Name))
	case errors.Is(err, service.ErrCourseHasSessions):
		response.Fail(c, http.StatusConflict, response.ErrDependencyExists)
	default:
		response.FailWithFields(c, http.StatusInternalServerError, response.ErrInternal,
			map[string]string{"detail": err.Error()})
	}
}
