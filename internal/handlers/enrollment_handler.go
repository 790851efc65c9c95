package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SAP-F-2025/course-service/internal/services"
	"github.com/SAP-F-2025/course-service/internal/utils"
	"github.com/SAP-F-2025/course-service/internal/validator"
)

type EnrollmentHandler struct {
	BaseHandler
	service services.EnrollmentService
}

func NewEnrollmentHandler(service services.EnrollmentService, logger utils.Logger, production bool) *EnrollmentHandler {
	return &EnrollmentHandler{
		BaseHandler: NewBaseHandler(logger, production),
		service:     service,
	}
}

type EnrollResponse struct {
	Message   string `json:"message"`
	CourseID  uint   `json:"course_id"`
	StudentID uint   `json:"student_id"`
}

// AddStudent attaches a student to a course
// @Summary Enroll student
// @Tags enrollments
// @Accept json
// @Produce json
// @Param id path int true "Course ID"
// @Param body body validator.EnrollRequest true "Student to enroll"
// @Success 200 {object} EnrollResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Already enrolled"
// @Failure 422 {object} ErrorResponse
// @Router /courses/{id}/add-student [post]
func (h *EnrollmentHandler) AddStudent(c *gin.Context) {
	courseID := h.parseIDParam(c, "id")
	if courseID == 0 {
		return
	}

	var req validator.EnrollRequest
	if !h.bindJSON(c, &req) {
		return
	}

	h.LogRequest(c, "Enrolling student", "course_id", courseID, "student_id", req.StudentID)

	if _, err := h.service.Enroll(c.Request.Context(), h.actor(c), courseID, req.StudentID); err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, EnrollResponse{
		Message:   "Student attached to course successfully.",
		CourseID:  courseID,
		StudentID: req.StudentID,
	})
}

// RemoveStudent detaches a student from a course
// @Summary Unenroll student
// @Tags enrollments
// @Param id path int true "Course ID"
// @Param studentId path int true "Student ID"
// @Success 204
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /courses/{id}/students/{studentId} [delete]
func (h *EnrollmentHandler) RemoveStudent(c *gin.Context) {
	courseID := h.parseIDParam(c, "id")
	if courseID == 0 {
		return
	}
	studentID := h.parseIDParam(c, "studentId")
	if studentID == 0 {
		return
	}

	if err := h.service.Unenroll(c.Request.Context(), h.actor(c), courseID, studentID); err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ListCourseStudents lists enrolled students in enrollment order
// @Summary Course students
// @Tags enrollments
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {array} models.Student
// @Failure 404 {object} ErrorResponse
// @Router /courses/{id}/students [get]
func (h *EnrollmentHandler) ListCourseStudents(c *gin.Context) {
	courseID := h.parseIDParam(c, "id")
	if courseID == 0 {
		return
	}

	students, err := h.service.ListStudents(c.Request.Context(), h.actor(c), courseID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, students)
}

// ExportRoster downloads the course roster as a spreadsheet
// @Summary Export roster
// @Tags enrollments
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param id path int true "Course ID"
// @Success 200 {file} file
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /courses/{id}/students/export [get]
func (h *EnrollmentHandler) ExportRoster(c *gin.Context) {
	courseID := h.parseIDParam(c, "id")
	if courseID == 0 {
		return
	}

	roster, err := h.service.ExportRoster(c.Request.Context(), h.actor(c), courseID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", attachmentDisposition(roster.Filename))
	c.Data(http.StatusOK, roster.ContentType, roster.Data)
}

// ListStudentCourses lists the courses of the student behind a user id
// @Summary Student courses
// @Tags enrollments
// @Produce json
// @Param id path int true "User ID of the student"
// @Success 200 {array} models.Course
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /students/{id}/courses [get]
func (h *EnrollmentHandler) ListStudentCourses(c *gin.Context) {
	userID := h.parseIDParam(c, "id")
	if userID == 0 {
		return
	}

	courses, err := h.service.ListCourses(c.Request.Context(), h.actor(c), userID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, courses)
}
