package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SAP-F-2025/course-service/internal/models"
	"github.com/SAP-F-2025/course-service/internal/services"
	"github.com/SAP-F-2025/course-service/internal/utils"
)

type HandlerConfig struct {
	Production bool
	// StorageRoot is served under /storage when StoragePublic is set.
	StorageRoot   string
	StoragePublic bool
}

type HandlerManager struct {
	authHandler       *AuthHandler
	courseHandler     *CourseHandler
	enrollmentHandler *EnrollmentHandler
	courseFileHandler *CourseFileHandler
	directoryHandler  *DirectoryHandler
	authMiddleware    *TokenAuthMiddleware

	serviceManager services.ServiceManager
	config         HandlerConfig
}

func NewHandlerManager(
	serviceManager services.ServiceManager,
	logger utils.Logger,
	config HandlerConfig,
) *HandlerManager {
	return &HandlerManager{
		authHandler:       NewAuthHandler(serviceManager.Auth(), logger, config.Production),
		courseHandler:     NewCourseHandler(serviceManager.Course(), logger, config.Production),
		enrollmentHandler: NewEnrollmentHandler(serviceManager.Enrollment(), logger, config.Production),
		courseFileHandler: NewCourseFileHandler(serviceManager.CourseFile(), logger, config.Production),
		directoryHandler:  NewDirectoryHandler(serviceManager.Directory(), logger, config.Production),
		authMiddleware:    NewTokenAuthMiddleware(serviceManager.Auth(), logger),
		serviceManager:    serviceManager,
		config:            config,
	}
}

// SetupRoutes sets up all API routes
func (hm *HandlerManager) SetupRoutes(router *gin.Engine) {
	api := router.Group("/api")

	// Public routes
	api.POST("/login", hm.authHandler.Login)
	api.POST("/register", hm.authHandler.Register)

	authed := api.Group("")
	authed.Use(hm.authMiddleware.AuthMiddleware())
	{
		authed.POST("/logout", hm.authHandler.Logout)
		authed.POST("/logout-all", hm.authHandler.LogoutAll)
		authed.GET("/user", hm.authHandler.Me)

		professorOnly := hm.authMiddleware.RequireRoleMiddleware(models.RoleProfessor)

		courses := authed.Group("/courses")
		{
			// View courses - All authenticated users
			courses.GET("", hm.courseHandler.ListCourses)
			courses.GET("/:id", hm.courseHandler.GetCourse)
			courses.GET("/:id/students", hm.enrollmentHandler.ListCourseStudents)
			courses.GET("/:id/files/:fileId", hm.courseFileHandler.DownloadFile)

			// Manage courses - Professors only, ownership checked by the policy
			courses.POST("", professorOnly, hm.courseHandler.CreateCourse)
			courses.PUT("/:id", professorOnly, hm.courseHandler.UpdateCourse)
			courses.DELETE("/:id", professorOnly, hm.courseHandler.DeleteCourse)

			courses.POST("/:id/add-student", professorOnly, hm.enrollmentHandler.AddStudent)
			courses.DELETE("/:id/students/:studentId", professorOnly, hm.enrollmentHandler.RemoveStudent)
			courses.GET("/:id/students/export", professorOnly, hm.enrollmentHandler.ExportRoster)

			courses.POST("/:id/upload", professorOnly, hm.courseFileHandler.UploadFile)
			courses.DELETE("/:id/files/:fileId", professorOnly, hm.courseFileHandler.DeleteFile)
		}

		authed.GET("/students", hm.directoryHandler.ListStudents)
		authed.GET("/students/:id", hm.directoryHandler.GetStudent)
		authed.GET("/students/:id/courses", hm.enrollmentHandler.ListStudentCourses)
		authed.GET("/professors", hm.directoryHandler.ListProfessors)
		authed.GET("/professors/:id", hm.directoryHandler.GetProfessor)
	}

	if hm.config.StoragePublic && hm.config.StorageRoot != "" {
		router.Static("/storage", hm.config.StorageRoot)
	}

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		if err := hm.serviceManager.HealthCheck(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":  "unhealthy",
				"service": "course-service",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "course-service",
		})
	})
}
