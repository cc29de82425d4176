package tickets

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ticketdesk/internal/shared/middleware"
	"ticketdesk/internal/shared/query"
	"ticketdesk/internal/shared/utils/response"
)

type Controller interface {
	ListByEvent(c *gin.Context)
	ListAdmin(c *gin.Context)
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

func (ctrl *controller) ListByEvent(c *gin.Context) {
	eventID := c.Param("eventId")
	if eventID == "" {
		response.Error(c, http.StatusBadRequest, "Event id is required", nil)
		return
	}

	list, err := ctrl.service.ListByEvent(c.Request.Context(), eventID)
	if err != nil {
		response.UpstreamError(c, err)
		return
	}
	response.OK(c, http.StatusOK, "", list)
}

func (ctrl *controller) ListAdmin(c *gin.Context) {
	var req TicketListQuery
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid query parameters", err.Error())
		return
	}

	q := query.ListQuery{
		Page:      req.Page,
		Limit:     req.Limit,
		SortBy:    req.SortBy,
		SortOrder: query.SortOrder(req.SortOrder),
		Search:    req.Search,
		Filters: map[string]string{
			"eventId":  req.EventID,
			"status":   req.Status,
			"minPrice": req.MinPrice,
			"maxPrice": req.MaxPrice,
		},
	}

	result, err := ctrl.service.ListAdmin(c.Request.Context(), middleware.SessionToken(c), q)
	if err != nil {
		response.UpstreamError(c, err)
		return
	}
	response.Paginated(c, http.StatusOK, result.Items, result.Pagination)
}

func (ctrl *controller) Create(c *gin.Context) {
	var req CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	ticket, msg, err := ctrl.service.Create(c.Request.Context(), middleware.SessionToken(c), req)
	if err != nil {
		response.UpstreamError(c, err)
		return
	}
	response.OK(c, http.StatusCreated, msg, ticket)
}

func (ctrl *controller) Update(c *gin.Context) {
	ticketID := c.Param("id")

	var req UpdateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	ticket, msg, err := ctrl.service.Update(c.Request.Context(), middleware.SessionToken(c), ticketID, req)
	if err != nil {
		response.UpstreamError(c, err)
		return
	}
	response.OK(c, http.StatusOK, msg, ticket)
}

func (ctrl *controller) Delete(c *gin.Context) {
	ticketID := c.Param("id")

	msg, err := ctrl.service.Delete(c.Request.Context(), middleware.SessionToken(c), ticketID)
	if err != nil {
		response.UpstreamError(c, err)
		return
	}
	response.OK(c, http.StatusOK, msg, nil)
}
