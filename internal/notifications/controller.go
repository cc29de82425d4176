package notifications

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ticketdesk/internal/shared/middleware"
	"ticketdesk/internal/shared/utils/response"
)

type Controller interface {
	GetActive(c *gin.Context)
	ListAll(c *gin.Context)
	Create(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
}

type controller struct {
	service Service
}

func NewController(service Service) Controller {
	return &controller{service: service}
}

// GetActive serves the public banner strip. No active banner is a
// normal state, not an error.
func (ctrl *controller) GetActive(c *gin.Context) {
	banner, err := ctrl.service.Active(c.Request.Context())
	if err != nil {
		response.UpstreamError(c, err)
		return
	}
	response.OK(c, http.StatusOK, "", banner)
}

func (ctrl *controller) ListAll(c *gin.Context) {
	list, err := ctrl.service.ListAll(c.Request.Context(), middleware.SessionToken(c))
	if err != nil {
		response.UpstreamError(c, err)
		return
	}
	response.OK(c, http.StatusOK, "", list)
}

func (ctrl *controller) Create(c *gin.Context) {
	var req CreateBannerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	banner, msg, err := ctrl.service.Create(c.Request.Context(), middleware.SessionToken(c), req)
	if err != nil {
		response.UpstreamError(c, err)
		return
	}
	response.OK(c, http.StatusCreated, msg, banner)
}

func (ctrl *controller) Update(c *gin.Context) {
	bannerID := c.Param("id")

	var req UpdateBannerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	banner, msg, err := ctrl.service.Update(c.Request.Context(), middleware.SessionToken(c), bannerID, req)
	if err != nil {
		response.UpstreamError(c, err)
		return
	}
	response.OK(c, http.StatusOK, msg, banner)
}

func (ctrl *controller) Delete(c *gin.Context) {
	bannerID := c.Param("id")

	msg, err := ctrl.service.Delete(c.Request.Context(), middleware.SessionToken(c), bannerID)
	if err != nil {
		response.UpstreamError(c, err)
		return
	}
	response.OK(c, http.StatusOK, msg, nil)
}
