package gallery

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ticketdesk/internal/shared/middleware"
	"ticketdesk/internal/shared/utils/response"
)

type Controller interface {
	List(c *gin.Context)
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

func (ctrl *controller) List(c *gin.Context) {
	list, err := ctrl.service.List(c.Request.Context(), c.Query("category"))
	if err != nil {
		response.UpstreamError(c, err)
		return
	}
	response.OK(c, http.StatusOK, "", list)
}

func (ctrl *controller) Create(c *gin.Context) {
	var req CreateGalleryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	item, msg, err := ctrl.service.Create(c.Request.Context(), middleware.SessionToken(c), req)
	if err != nil {
		response.UpstreamError(c, err)
		return
	}
	response.OK(c, http.StatusCreated, msg, item)
}

func (ctrl *controller) Update(c *gin.Context) {
	itemID := c.Param("id")

	var req UpdateGalleryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	item, msg, err := ctrl.service.Update(c.Request.Context(), middleware.SessionToken(c), itemID, req)
	if err != nil {
		response.UpstreamError(c, err)
		return
	}
	response.OK(c, http.StatusOK, msg, item)
}

func (ctrl *controller) Delete(c *gin.Context) {
	itemID := c.Param("id")

	msg, err := ctrl.service.Delete(c.Request.Context(), middleware.SessionToken(c), itemID)
	if err != nil {
		response.UpstreamError(c, err)
		return
	}
	response.OK(c, http.StatusOK, msg, nil)
}
