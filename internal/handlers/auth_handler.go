package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SAP-F-2025/course-service/internal/services"
	"github.com/SAP-F-2025/course-service/internal/utils"
)

type AuthHandler struct {
	BaseHandler
	service services.AuthService
}

func NewAuthHandler(service services.AuthService, logger utils.Logger, production bool) *AuthHandler {
	return &AuthHandler{
		BaseHandler: NewBaseHandler(logger, production),
		service:     service,
	}
}

// Login exchanges credentials for a bearer token
// @Summary Log in
// @Description Validates email and password and issues an opaque bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body services.LoginRequest true "Email and password"
// @Success 201 {object} services.LoginResponse
// @Failure 422 {object} ErrorResponse "Email not found or incorrect password"
// @Router /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req services.LoginRequest
	if !h.bindJSON(c, &req) {
		return
	}

	resp, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmailNotFound):
			c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Message: "Email not found"})
		case errors.Is(err, services.ErrIncorrectPassword):
			c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Message: "Incorrect password"})
		default:
			h.handleServiceError(c, err)
		}
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// Register creates an account with its professor or student profile
// @Summary Register account
// @Tags auth
// @Accept json
// @Produce json
// @Param account body services.RegisterRequest true "Account data"
// @Success 201 {object} SuccessResponse{data=models.Actor}
// @Failure 422 {object} ErrorResponse
// @Router /register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req services.RegisterRequest
	if !h.bindJSON(c, &req) {
		return
	}

	actor, err := h.service.Register(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, SuccessResponse{
		Message: "Registration successful.",
		Data:    actor,
	})
}

// Logout revokes the bearer token used for this request
// @Summary Log out
// @Tags auth
// @Success 204
// @Failure 401 {object} ErrorResponse
// @Router /logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.service.Logout(c.Request.Context(), c.GetString(ContextKeyToken)); err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// LogoutAll revokes every session of the caller
// @Summary Log out everywhere
// @Tags auth
// @Success 204
// @Failure 401 {object} ErrorResponse
// @Router /logout-all [post]
func (h *AuthHandler) LogoutAll(c *gin.Context) {
	if err := h.service.LogoutAll(c.Request.Context(), h.actor(c)); err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Me returns the authenticated caller with its role profile
// @Summary Current user
// @Tags auth
// @Produce json
// @Success 200 {object} models.Actor
// @Failure 401 {object} ErrorResponse
// @Router /user [get]
func (h *AuthHandler) Me(c *gin.Context) {
	c.JSON(http.StatusOK, h.actor(c))
}
