package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"ticketdesk/internal/shared/config"
	"ticketdesk/internal/shared/query"
	"ticketdesk/pkg/logger"
	"ticketdesk/pkg/metrics"
)

// envelope is the response shape every ticketing API endpoint uses.
type envelope struct {
	Success    bool              `json:"success"`
	Message    string            `json:"message"`
	Data       json.RawMessage   `json:"data"`
	Pagination *query.Pagination `json:"pagination"`
}

// Client is a typed HTTP client for the remote ticketing API. It is
// stateless apart from configuration and safe for concurrent use.
type Client struct {
	baseURL string
	http    *http.Client
	upload  *http.Client
	log     *logger.Logger
}

// New creates a client for the configured upstream.
func New(cfg config.UpstreamConfig, log *logger.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    &http.Client{Timeout: cfg.Timeout},
		upload:  &http.Client{Timeout: cfg.UploadTimeout},
		log:     log,
	}
}

// Get performs a GET and decodes the envelope data into out.
func (c *Client) Get(ctx context.Context, resource, path string, params url.Values, token string, out interface{}) error {
	_, _, err := c.do(ctx, c.http, http.MethodGet, resource, path, params, nil, token, out)
	return err
}

// GetList performs a GET against a paginated listing endpoint and
// returns the pagination metadata alongside the decoded items.
func (c *Client) GetList(ctx context.Context, resource, path string, params url.Values, token string, out interface{}) (query.Pagination, error) {
	_, pagination, err := c.do(ctx, c.http, http.MethodGet, resource, path, params, nil, token, out)
	if err != nil {
		return query.Pagination{}, err
	}
	if pagination == nil {
		// Defensive default: a listing endpoint without pagination
		// metadata is treated as a single page.
		return query.NewPagination(0, 1, query.DefaultLimit), nil
	}
	return *pagination, nil
}

// Post performs a POST with a JSON body and returns the server message.
func (c *Client) Post(ctx context.Context, resource, path string, body interface{}, token string, out interface{}) (string, error) {
	msg, _, err := c.do(ctx, c.http, http.MethodPost, resource, path, nil, body, token, out)
	return msg, err
}

// Put performs a PUT with a JSON body and returns the server message.
func (c *Client) Put(ctx context.Context, resource, path string, body interface{}, token string, out interface{}) (string, error) {
	msg, _, err := c.do(ctx, c.http, http.MethodPut, resource, path, nil, body, token, out)
	return msg, err
}

// Delete performs a DELETE and returns the server message.
func (c *Client) Delete(ctx context.Context, resource, path string, token string) (string, error) {
	msg, _, err := c.do(ctx, c.http, http.MethodDelete, resource, path, nil, nil, token, nil)
	return msg, err
}

// Upload streams a multipart file to an upload endpoint.
func (c *Client) Upload(ctx context.Context, resource, path, fieldName, fileName string, file io.Reader, token string, out interface{}) (string, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile(fieldName, fileName)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &buf)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return c.send(ctx, c.upload, req, http.MethodPost, resource, path, out)
}

func (c *Client) do(ctx context.Context, httpClient *http.Client, method, resource, path string, params url.Values, body interface{}, token string, out interface{}) (string, *query.Pagination, error) {
	fullURL := c.baseURL + path
	if len(params) > 0 {
		fullURL += "?" + params.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return "", nil, fmt.Errorf("marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, reqBody)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	msg, pagination, err := c.sendEnvelope(ctx, httpClient, req, method, resource, path, out)
	return msg, pagination, err
}

// send executes a prepared request and decodes the envelope, ignoring
// pagination.
func (c *Client) send(ctx context.Context, httpClient *http.Client, req *http.Request, method, resource, path string, out interface{}) (string, error) {
	msg, _, err := c.sendEnvelope(ctx, httpClient, req, method, resource, path, out)
	return msg, err
}

func (c *Client) sendEnvelope(ctx context.Context, httpClient *http.Client, req *http.Request, method, resource, path string, out interface{}) (string, *query.Pagination, error) {
	start := time.Now()
	metrics.UpstreamRequests.WithLabelValues(method, resource).Inc()

	resp, err := httpClient.Do(req)
	duration := time.Since(start)
	if err != nil {
		metrics.UpstreamErrors.WithLabelValues(method, resource, metrics.KindTransport).Inc()
		c.log.LogUpstreamRequest(ctx, method, path, 0, duration, err)
		return "", nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	metrics.UpstreamDuration.WithLabelValues(method, resource).Observe(duration.Seconds())
	c.log.LogUpstreamRequest(ctx, method, path, resp.StatusCode, duration, nil)

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		metrics.UpstreamErrors.WithLabelValues(method, resource, metrics.KindTransport).Inc()
		return "", nil, fmt.Errorf("%w: malformed response: %v", ErrUnavailable, err)
	}

	if !env.Success || resp.StatusCode >= 400 {
		metrics.UpstreamErrors.WithLabelValues(method, resource, metrics.KindServer).Inc()
		message := env.Message
		if message == "" {
			message = http.StatusText(resp.StatusCode)
		}
		return "", nil, &APIError{StatusCode: resp.StatusCode, Message: message}
	}

	if out != nil && len(env.Data) > 0 && string(env.Data) != "null" {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return "", nil, fmt.Errorf("%w: malformed response data: %v", ErrUnavailable, err)
		}
	}

	return env.Message, env.Pagination, nil
}
