package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SAP-F-2025/course-service/internal/services"
	"github.com/SAP-F-2025/course-service/internal/utils"
)

// multipartOverhead is the slack allowed on top of the file limit for boundaries and headers.
const multipartOverhead = 1 << 20

type CourseFileHandler struct {
	BaseHandler
	service services.CourseFileService
}

func NewCourseFileHandler(service services.CourseFileService, logger utils.Logger, production bool) *CourseFileHandler {
	return &CourseFileHandler{
		BaseHandler: NewBaseHandler(logger, production),
		service:     service,
	}
}

// UploadFile stores a course material
// @Summary Upload course file
// @Tags files
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Course ID"
// @Param file formData file true "Material, at most 10 MB"
// @Success 200 {object} SuccessResponse{data=models.CourseFile}
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /courses/{id}/upload [post]
func (h *CourseFileHandler) UploadFile(c *gin.Context) {
	courseID := h.parseIDParam(c, "id")
	if courseID == 0 {
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.service.MaxUploadSize()+multipartOverhead)

	header, err := c.FormFile("file")
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		switch {
		case errors.As(err, &maxBytesErr):
			h.handleServiceError(c, &services.FileTooLargeError{Limit: h.service.MaxUploadSize()})
		case errors.Is(err, http.ErrMissingFile), errors.Is(err, http.ErrNotMultipart):
			h.handleServiceError(c, services.ErrFileMissing)
		default:
			h.handleServiceError(c, fmt.Errorf("%w: %v", services.ErrFileMissing, err))
		}
		return
	}

	f, err := header.Open()
	if err != nil {
		h.handleServiceError(c, fmt.Errorf("failed to open uploaded file: %w", err))
		return
	}
	defer f.Close()

	h.LogRequest(c, "Uploading course file", "course_id", courseID, "filename", header.Filename, "size", header.Size)

	file, err := h.service.Upload(c.Request.Context(), h.actor(c), courseID, services.UploadInput{
		Reader:      f,
		Size:        header.Size,
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
	})
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{
		Message: "File uploaded successfully.",
		Data:    file,
	})
}

// DownloadFile streams a course material
// @Summary Download course file
// @Tags files
// @Produce octet-stream
// @Param id path int true "Course ID"
// @Param fileId path int true "File ID"
// @Success 200 {file} file
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /courses/{id}/files/{fileId} [get]
func (h *CourseFileHandler) DownloadFile(c *gin.Context) {
	courseID := h.parseIDParam(c, "id")
	if courseID == 0 {
		return
	}
	fileID := h.parseIDParam(c, "fileId")
	if fileID == 0 {
		return
	}

	file, body, err := h.service.Download(c.Request.Context(), h.actor(c), courseID, fileID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	defer body.Close()

	contentType := file.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	c.DataFromReader(http.StatusOK, file.Size, contentType, body, map[string]string{
		"Content-Disposition": attachmentDisposition(file.Filename),
	})
}

// DeleteFile removes a course material
// @Summary Delete course file
// @Tags files
// @Produce json
// @Param id path int true "Course ID"
// @Param fileId path int true "File ID"
// @Success 200 {object} SuccessResponse
// @Failure 403 {object} ErrorResponse "File belongs to another course"
// @Failure 404 {object} ErrorResponse
// @Router /courses/{id}/files/{fileId} [delete]
func (h *CourseFileHandler) DeleteFile(c *gin.Context) {
	courseID := h.parseIDParam(c, "id")
	if courseID == 0 {
		return
	}
	fileID := h.parseIDParam(c, "fileId")
	if fileID == 0 {
		return
	}

	h.LogRequest(c, "Deleting course file", "course_id", courseID, "file_id", fileID)

	if err := h.service.Delete(c.Request.Context(), h.actor(c), courseID, fileID); err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Message: "File deleted successfully."})
}
