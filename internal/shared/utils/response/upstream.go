package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ticketdesk/internal/upstream"
)

// UpstreamError converts a failed ticketing API call into the envelope
// the UI expects: server-reported messages pass through verbatim with
// their status, transport failures collapse into a generic 502 so no
// internal detail leaks.
func UpstreamError(c *gin.Context, err error) {
	if apiErr, ok := upstream.AsAPIError(err); ok {
		status := apiErr.StatusCode
		if status < http.StatusBadRequest {
			status = http.StatusBadRequest
		}
		Error(c, status, apiErr.Message, nil)
		return
	}

	Error(c, http.StatusBadGateway, "Unable to reach the ticketing service, please try again", nil)
}
