package upstream

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ticketdesk/internal/shared/config"
	"ticketdesk/pkg/logger"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(config.UpstreamConfig{BaseURL: srv.URL}, logger.GetDefault())
}

func TestGetDecodesEnvelopeData(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/events/ev-1", r.URL.Path)
		w.Write([]byte(`{"success":true,"data":{"_id":"ev-1","title":"TEDx"}}`))
	})

	var out struct {
		ID    string `json:"_id"`
		Title string `json:"title"`
	}
	err := client.Get(context.Background(), "events", "/events/ev-1", nil, "", &out)
	require.NoError(t, err)
	assert.Equal(t, "ev-1", out.ID)
	assert.Equal(t, "TEDx", out.Title)
}

func TestGetListReturnsPagination(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		w.Write([]byte(`{
			"success": true,
			"data": [{"_id":"a"},{"_id":"b"}],
			"pagination": {"currentPage":2,"totalPages":5,"totalItems":42,"itemsPerPage":10,"hasNextPage":true,"hasPreviousPage":true}
		}`))
	})

	var items []struct {
		ID string `json:"_id"`
	}
	params := map[string][]string{"page": {"2"}}
	pagination, err := client.GetList(context.Background(), "events", "/events/admin/all", params, "tok", &items)
	require.NoError(t, err)
	assert.Len(t, items, 2)
	assert.Equal(t, 2, pagination.CurrentPage)
	assert.Equal(t, 42, pagination.TotalItems)
	assert.True(t, pagination.HasNextPage)
}

func TestBearerTokenAttached(t *testing.T) {
	var gotAuth string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"success":true}`))
	})

	err := client.Get(context.Background(), "admin", "/admin/profile", nil, "secret-token", nil)
	require.NoError(t, err)
	assert.Equal(t, "Bearer secret-token", gotAuth)
}

func TestServerReportedErrorSurfacesMessage(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"success":false,"message":"Ticket is sold out"}`))
	})

	_, err := client.Post(context.Background(), "bookings", "/bookings", map[string]string{}, "", nil)
	require.Error(t, err)

	apiErr, ok := AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, "Ticket is sold out", apiErr.Message)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.False(t, IsTransport(err))
}

func TestNotFoundDetection(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"success":false,"message":"Event not found"}`))
	})

	err := client.Get(context.Background(), "events", "/events/missing", nil, "", nil)
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
}

func TestTransportErrorWrapped(t *testing.T) {
	client := New(config.UpstreamConfig{BaseURL: "http://127.0.0.1:1"}, logger.GetDefault())

	err := client.Get(context.Background(), "events", "/events", nil, "", nil)
	require.Error(t, err)
	assert.True(t, IsTransport(err))

	_, ok := AsAPIError(err)
	assert.False(t, ok)
}

func TestMalformedResponseIsTransportError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>gateway timeout</html>`))
	})

	err := client.Get(context.Background(), "events", "/events", nil, "", nil)
	require.Error(t, err)
	assert.True(t, IsTransport(err))
}

func TestSuccessFalseWithOKStatusIsServerError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":false,"message":"validation failed"}`))
	})

	err := client.Get(context.Background(), "events", "/events", nil, "", nil)
	require.Error(t, err)
	apiErr, ok := AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, "validation failed", apiErr.Message)
}

func TestUploadSendsMultipart(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		file, header, err := r.FormFile("image")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "banner.png", header.Filename)
		w.Write([]byte(`{"success":true,"message":"Uploaded","data":{"url":"https://cdn.example/banner.png"}}`))
	})

	var out struct {
		URL string `json:"url"`
	}
	msg, err := client.Upload(context.Background(), "images", "/images/upload", "image", "banner.png", strings.NewReader("png-bytes"), "tok", &out)
	require.NoError(t, err)
	assert.Equal(t, "Uploaded", msg)
	assert.Equal(t, "https://cdn.example/banner.png", out.URL)
}
