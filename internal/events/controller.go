package events

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"ticketdesk/internal/countdown"
	"ticketdesk/internal/shared/middleware"
	"ticketdesk/internal/shared/query"
	"ticketdesk/internal/shared/utils/response"
	"ticketdesk/pkg/clock"
	"ticketdesk/pkg/scheduler"
)

type Controller interface {
	ListPublic(c *gin.Context)
	GetEvent(c *gin.Context)
	GetFeatured(c *gin.Context)
	StreamCountdown(c *gin.Context)
	ListAdmin(c *gin.Context)
	Create(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
}

type controller struct {
	service Service
	clk     clock.Clock
	sched   scheduler.Scheduler
}

func NewController(service Service, clk clock.Clock, sched scheduler.Scheduler) Controller {
	return &controller{
		service: service,
		clk:     clk,
		sched:   sched,
	}
}

func (ctrl *controller) ListPublic(c *gin.Context) {
	list, err := ctrl.service.ListPublic(c.Request.Context())
	if err != nil {
		response.UpstreamError(c, err)
		return
	}
	response.OK(c, http.StatusOK, "", list)
}

func (ctrl *controller) GetEvent(c *gin.Context) {
	eventID := c.Param("id")
	if eventID == "" {
		response.Error(c, http.StatusBadRequest, "Event id is required", nil)
		return
	}

	event, err := ctrl.service.GetEvent(c.Request.Context(), eventID)
	if err != nil {
		response.UpstreamError(c, err)
		return
	}
	response.OK(c, http.StatusOK, "", event)
}

// GetFeatured serves the home page hero: the selected event plus its
// countdown snapshot. With no active events it returns an empty success
// so the page renders without a countdown card.
func (ctrl *controller) GetFeatured(c *gin.Context) {
	featured, err := ctrl.service.Featured(c.Request.Context())
	if err != nil {
		response.UpstreamError(c, err)
		return
	}
	if featured == nil {
		response.OK(c, http.StatusOK, "No active events", nil)
		return
	}
	response.OK(c, http.StatusOK, "", featured)
}

// StreamCountdown pushes one countdown snapshot per second for the
// featured event over server-sent events, until the client disconnects
// or the countdown reaches zero.
func (ctrl *controller) StreamCountdown(c *gin.Context) {
	featured, err := ctrl.service.Featured(c.Request.Context())
	if err != nil {
		response.UpstreamError(c, err)
		return
	}
	if featured == nil {
		response.OK(c, http.StatusOK, "No active events", nil)
		return
	}

	snapshots := make(chan countdown.Remaining, 1)
	ticker := countdown.NewTicker(featured.Event.Date, ctrl.clk, ctrl.sched, func(r countdown.Remaining) {
		// Drop a stale snapshot rather than block the scheduler when
		// the client reads slowly.
		select {
		case snapshots <- r:
		default:
		}
	})
	ticker.Start()
	defer ticker.Stop()

	c.Header("Cache-Control", "no-cache")
	c.Stream(func(w io.Writer) bool {
		select {
		case <-c.Request.Context().Done():
			return false
		case r := <-snapshots:
			c.SSEvent("countdown", r)
			return !r.IsZero()
		}
	})
}

func (ctrl *controller) ListAdmin(c *gin.Context) {
	var req EventListQuery
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
			"status":   req.Status,
			"dateFrom": req.DateFrom,
			"dateTo":   req.DateTo,
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
	var req CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	event, msg, err := ctrl.service.Create(c.Request.Context(), middleware.SessionToken(c), req)
	if err != nil {
		response.UpstreamError(c, err)
		return
	}
	response.OK(c, http.StatusCreated, msg, event)
}

func (ctrl *controller) Update(c *gin.Context) {
	eventID := c.Param("id")

	var req UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	event, msg, err := ctrl.service.Update(c.Request.Context(), middleware.SessionToken(c), eventID, req)
	if err != nil {
		response.UpstreamError(c, err)
		return
	}
	response.OK(c, http.StatusOK, msg, event)
}

func (ctrl *controller) Delete(c *gin.Context) {
	eventID := c.Param("id")

	msg, err := ctrl.service.Delete(c.Request.Context(), middleware.SessionToken(c), eventID)
	if err != nil {
		response.UpstreamError(c, err)
		return
	}
	response.OK(c, http.StatusOK, msg, nil)
}
