package bookings

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"ticketdesk/internal/shared/middleware"
	"ticketdesk/internal/shared/query"
	"ticketdesk/internal/shared/utils/response"
)

type Controller interface {
	Create(c *gin.Context)
	GetByReference(c *gin.Context)
	ListAdmin(c *gin.Context)
	ListAdminByEvent(c *gin.Context)
	ListAdminByTicket(c *gin.Context)
	UpdateStatus(c *gin.Context)
	Delete(c *gin.Context)
}

type controller struct {
	service Service
}

func NewController(service Service) Controller {
	return &controller{service: service}
}

func (ctrl *controller) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	booking, msg, err := ctrl.service.Create(c.Request.Context(), req)
	if err != nil {
		if isValidationError(err) {
			response.Error(c, http.StatusBadRequest, err.Error(), nil)
			return
		}
		response.UpstreamError(c, err)
		return
	}
	if msg == "" {
		msg = "Booking created"
	}
	response.OK(c, http.StatusCreated, msg, booking)
}

func (ctrl *controller) GetByReference(c *gin.Context) {
	code := c.Param("reference")
	if code == "" {
		response.Error(c, http.StatusBadRequest, "Booking reference is required", nil)
		return
	}

	booking, err := ctrl.service.GetByReference(c.Request.Context(), code)
	if err != nil {
		response.UpstreamError(c, err)
		return
	}
	response.OK(c, http.StatusOK, "", booking)
}

func (ctrl *controller) ListAdmin(c *gin.Context) {
	var req BookingListQuery
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
			"ticketId": req.TicketID,
			"status":   req.Status,
			"email":    req.Email,
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

func (ctrl *controller) ListAdminByEvent(c *gin.Context) {
	ctrl.listScoped(c, func(q query.ListQuery) (query.Result[BookingResponse], error) {
		return ctrl.service.ListAdminByEvent(c.Request.Context(), middleware.SessionToken(c), c.Param("eventId"), q)
	})
}

func (ctrl *controller) ListAdminByTicket(c *gin.Context) {
	ctrl.listScoped(c, func(q query.ListQuery) (query.Result[BookingResponse], error) {
		return ctrl.service.ListAdminByTicket(c.Request.Context(), middleware.SessionToken(c), c.Param("ticketId"), q)
	})
}

func (ctrl *controller) listScoped(c *gin.Context, fetch func(query.ListQuery) (query.Result[BookingResponse], error)) {
	var req BookingListQuery
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid query parameters", err.Error())
		return
	}

	result, err := fetch(query.ListQuery{
		Page:      req.Page,
		Limit:     req.Limit,
		SortBy:    req.SortBy,
		SortOrder: query.SortOrder(req.SortOrder),
	})
	if err != nil {
		response.UpstreamError(c, err)
		return
	}
	response.Paginated(c, http.StatusOK, result.Items, result.Pagination)
}

func (ctrl *controller) UpdateStatus(c *gin.Context) {
	bookingID := c.Param("id")

	var req UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	booking, msg, err := ctrl.service.UpdateStatus(c.Request.Context(), middleware.SessionToken(c), bookingID, req)
	if err != nil {
		response.UpstreamError(c, err)
		return
	}
	response.OK(c, http.StatusOK, msg, booking)
}

func (ctrl *controller) Delete(c *gin.Context) {
	bookingID := c.Param("id")

	msg, err := ctrl.service.Delete(c.Request.Context(), middleware.SessionToken(c), bookingID)
	if err != nil {
		response.UpstreamError(c, err)
		return
	}
	response.OK(c, http.StatusOK, msg, nil)
}

func isValidationError(err error) bool {
	return errors.Is(err, ErrTicketSoldOut) ||
		errors.Is(err, ErrNotEnoughTickets) ||
		errors.Is(err, ErrAmountMismatch) ||
		errors.Is(err, ErrTicketNotBookable)
}
