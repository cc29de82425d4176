package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ticketdesk/internal/shared/middleware"
	"ticketdesk/internal/shared/utils/response"
)

type Controller interface {
	Login(c *gin.Context)
	Logout(c *gin.Context)
	GetProfile(c *gin.Context)
	UpdateProfile(c *gin.Context)
}

type controller struct {
	service Service
}

func NewController(service Service) Controller {
	return &controller{service: service}
}

func (ctrl *controller) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Email and password are required", err.Error())
		return
	}

	result, msg, err := ctrl.service.Login(c.Request.Context(), req)
	if err != nil {
		response.UpstreamError(c, err)
		return
	}
	if msg == "" {
		msg = "Login successful"
	}
	response.OK(c, http.StatusOK, msg, result)
}

func (ctrl *controller) Logout(c *gin.Context) {
	if err := ctrl.service.Logout(c.Request.Context(), middleware.BearerToken(c)); err != nil {
		response.Error(c, http.StatusInternalServerError, "Unable to end session", nil)
		return
	}
	response.OK(c, http.StatusOK, "Logged out", nil)
}

func (ctrl *controller) GetProfile(c *gin.Context) {
	admin, err := ctrl.service.Profile(c.Request.Context(), middleware.SessionToken(c))
	if err != nil {
		response.UpstreamError(c, err)
		return
	}
	response.OK(c, http.StatusOK, "", admin)
}

func (ctrl *controller) UpdateProfile(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	admin, msg, err := ctrl.service.UpdateProfile(c.Request.Context(), middleware.SessionToken(c), req)
	if err != nil {
		response.UpstreamError(c, err)
		return
	}
	response.OK(c, http.StatusOK, msg, admin)
}
