package handlers

import (
	"errors"
	"mime"
	"net/http"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/gin-gonic/gin"

	"github.com/SAP-F-2025/course-service/internal/models"
	"github.com/SAP-F-2025/course-service/internal/services"
	"github.com/SAP-F-2025/course-service/internal/utils"
)

type ErrorResponse struct {
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

type SuccessResponse struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// BaseHandler carries what every resource handler shares: logging and error mapping.
type BaseHandler struct {
	logger     utils.Logger
	production bool
}

func NewBaseHandler(logger utils.Logger, production bool) BaseHandler {
	return BaseHandler{logger: logger, production: production}
}

func (h *BaseHandler) LogRequest(c *gin.Context, msg string, args ...any) {
	args = append(args, "user_id", c.GetUint(ContextKeyUserID))
	utils.GetLogger(c, h.logger).Info(msg, args...)
}

func (h *BaseHandler) LogError(c *gin.Context, err error, msg string) {
	utils.GetLogger(c, h.logger).Error(msg, "error", err, "path", c.FullPath())
}

// actor returns the caller resolved by TokenAuthMiddleware. Routes without it get nil.
func (h *BaseHandler) actor(c *gin.Context) *models.Actor {
	return GetActorFromContext(c)
}

func (h *BaseHandler) parseIDParam(c *gin.Context, param string) uint {
	id, err := strconv.ParseUint(c.Param(param), 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid " + param,
		})
		return 0
	}
	return uint(id)
}

func (h *BaseHandler) bindJSON(c *gin.Context, dest interface{}) bool {
	if err := c.ShouldBindJSON(dest); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return false
	}
	return true
}

func (h *BaseHandler) handleServiceError(c *gin.Context, err error) {
	var validationErrors services.ValidationErrors
	if errors.As(err, &validationErrors) {
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Message: "Validation failed",
			Details: validationErrors,
		})
		return
	}

	var permissionError *services.PermissionError
	if errors.As(err, &permissionError) {
		c.JSON(http.StatusForbidden, ErrorResponse{
			Message: "This action is unauthorized.",
			Details: map[string]interface{}{
				"resource": permissionError.Resource,
				"action":   permissionError.Action,
				"reason":   permissionError.Reason,
			},
		})
		return
	}

	switch {
	// Validation
	case errors.Is(err, services.ErrFileTooLarge):
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Message: fileTooLargeMessage(err),
		})
	case errors.Is(err, services.ErrFileMissing):
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Message: "The file field is required.",
		})
	case errors.Is(err, services.ErrValidationFailed):
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Message: "Validation failed",
			Details: err.Error(),
		})

	// Access
	case errors.Is(err, services.ErrUnauthenticated):
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Message: "Unauthenticated.",
		})
	case errors.Is(err, services.ErrForbidden):
		c.JSON(http.StatusForbidden, ErrorResponse{
			Message: "This action is unauthorized.",
		})

	// Conflicts
	case errors.Is(err, services.ErrAlreadyEnrolled):
		c.JSON(http.StatusConflict, ErrorResponse{
			Message: "Student already attached to this course.",
		})
	case errors.Is(err, services.ErrConflict):
		c.JSON(http.StatusConflict, ErrorResponse{
			Message: "Resource conflict",
		})

	// Not found
	case errors.Is(err, services.ErrCourseNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Message: "Course not found"})
	case errors.Is(err, services.ErrStudentNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Message: "Student not found"})
	case errors.Is(err, services.ErrProfessorNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Message: "Professor not found"})
	case errors.Is(err, services.ErrFileNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Message: "File not found"})
	case errors.Is(err, services.ErrNotEnrolled):
		c.JSON(http.StatusNotFound, ErrorResponse{Message: "Student is not attached to this course."})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Message: "Resource not found"})

	default:
		h.LogError(c, err, "Unexpected service error")
		resp := ErrorResponse{Message: "Internal server error"}
		if !h.production {
			resp.Details = err.Error()
		}
		c.JSON(http.StatusInternalServerError, resp)
	}
}

// fileTooLargeMessage names the configured limit, e.g. "10 MiB".
func fileTooLargeMessage(err error) string {
	var tooLarge *services.FileTooLargeError
	if errors.As(err, &tooLarge) && tooLarge.Limit > 0 {
		return "The file may not be greater than " + humanize.IBytes(uint64(tooLarge.Limit)) + "."
	}
	return "The file is too large."
}

// attachmentDisposition quotes the filename so that quotes, backslashes and
// non-ASCII names survive the header.
func attachmentDisposition(filename string) string {
	if v := mime.FormatMediaType("attachment", map[string]string{"filename": filename}); v != "" {
		return v
	}
	return "attachment"
}
