package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SAP-F-2025/course-service/internal/services"
	"github.com/SAP-F-2025/course-service/internal/utils"
)

// DirectoryHandler lists people: students for the enroll picker, professors for filters.
type DirectoryHandler struct {
	BaseHandler
	service services.DirectoryService
}

func NewDirectoryHandler(service services.DirectoryService, logger utils.Logger, production bool) *DirectoryHandler {
	return &DirectoryHandler{
		BaseHandler: NewBaseHandler(logger, production),
		service:     service,
	}
}

// ListStudents
// @Summary List students
// @Tags directory
// @Produce json
// @Success 200 {array} models.Student
// @Router /students [get]
func (h *DirectoryHandler) ListStudents(c *gin.Context) {
	students, err := h.service.ListStudents(c.Request.Context(), h.actor(c))
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, students)
}

// GetStudent
// @Summary Get student
// @Tags directory
// @Produce json
// @Param id path int true "Student ID"
// @Success 200 {object} models.Student
// @Failure 404 {object} ErrorResponse
// @Router /students/{id} [get]
func (h *DirectoryHandler) GetStudent(c *gin.Context) {
	id := h.parseIDParam(c, "id")
	if id == 0 {
		return
	}

	student, err := h.service.GetStudent(c.Request.Context(), h.actor(c), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, student)
}

// ListProfessors
// @Summary List professors
// @Tags directory
// @Produce json
// @Success 200 {array} models.Professor
// @Router /professors [get]
func (h *DirectoryHandler) ListProfessors(c *gin.Context) {
	professors, err := h.service.ListProfessors(c.Request.Context(), h.actor(c))
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, professors)
}

// GetProfessor
// @Summary Get professor
// @Tags directory
// @Produce json
// @Param id path int true "Professor ID"
// @Success 200 {object} models.Professor
// @Failure 404 {object} ErrorResponse
// @Router /professors/{id} [get]
func (h *DirectoryHandler) GetProfessor(c *gin.Context) {
	id := h.parseIDParam(c, "id")
	if id == 0 {
		return
	}

	professor, err := h.service.GetProfessor(c.Request.Context(), h.actor(c), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, professor)
}
