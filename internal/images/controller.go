package images

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ticketdesk/internal/shared/middleware"
	"ticketdesk/internal/shared/utils/response"
)

// maxUploadBytes caps gallery/event images at 10MB.
const maxUploadBytes = 10 << 20

type Controller interface {
	Upload(c *gin.Context)
	Delete(c *gin.Context)
}

type controller struct {
	service Service
}

func NewController(service Service) Controller {
	return &controller{service: service}
}

func (ctrl *controller) Upload(c *gin.Context) {
	header, err := c.FormFile("image")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Image file is required", err.Error())
		return
	}
	if header.Size > maxUploadBytes {
		response.Error(c, http.StatusBadRequest, "Image exceeds the 10MB limit", nil)
		return
	}

	file, err := header.Open()
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Unable to read uploaded file", err.Error())
		return
	}
	defer file.Close()

	result, msg, err := ctrl.service.Upload(c.Request.Context(), middleware.SessionToken(c), header.Filename, file)
	if err != nil {
		response.UpstreamError(c, err)
		return
	}
	if msg == "" {
		msg = "Image uploaded"
	}
	response.OK(c, http.StatusCreated, msg, result)
}

func (ctrl *controller) Delete(c *gin.Context) {
	idOrURL := c.Param("id")
	if idOrURL == "" {
		response.Error(c, http.StatusBadRequest, "Image id is required", nil)
		return
	}

	msg, err := ctrl.service.Delete(c.Request.Context(), middleware.SessionToken(c), idOrURL)
	if err != nil {
		response.UpstreamError(c, err)
		return
	}
	response.OK(c, http.StatusOK, msg, nil)
}
