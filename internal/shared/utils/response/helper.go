package response

import (
	"github.com/gin-gonic/gin"

	"ticketdesk/internal/shared/query"
)

// OK writes a success envelope.
func OK(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// Paginated writes a success envelope carrying list items and pagination
// metadata.
func Paginated(c *gin.Context, code int, data interface{}, pagination query.Pagination) {
	c.JSON(code, APIResponse{
		Success:    true,
		Data:       data,
		Pagination: &pagination,
	})
}

// Error writes a failure envelope.
func Error(c *gin.Context, code int, message string, errors interface{}) {
	c.JSON(code, APIResponse{
		Success: false,
		Message: message,
		Errors:  errors,
	})
}
