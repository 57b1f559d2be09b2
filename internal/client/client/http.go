package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/estatehub/internal/common"
	"github.com/dmitrijs2005/estatehub/internal/logging"
	"github.com/google/uuid"
)

// Request describes one call to the API. Method defaults to GET. Body is
// either a *Multipart payload or any value serializable as JSON; nil sends no
// body.
type Request struct {
	Method  string
	Body    any
	Headers map[string]string
}

// HTTPClient is the HTTP implementation of API.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	logger  logging.Logger
	newID   func() string
}

type Option func(*HTTPClient)

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *HTTPClient) { c.http = hc }
}

// WithTokenSource sets where the bearer token comes from.
func WithTokenSource(ts TokenSource) Option {
	return func(c *HTTPClient) { c.tokens = ts }
}

func WithLogger(l logging.Logger) Option {
	return func(c *HTTPClient) { c.logger = l }
}

// WithTimeout bounds every request. Zero keeps the default of no timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *HTTPClient) {
		if d > 0 {
			hc := *c.http
			hc.Timeout = d
			c.http = &hc
		}
	}
}

// NewHTTPClient builds a client for the API rooted at baseURL, for example
// "http://localhost:5000/api".
func NewHTTPClient(baseURL string, opts ...Option) *HTTPClient {
	c := &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
		tokens:  TokenFunc(func(context.Context) string { return "" }),
		logger:  logging.Nop(),
		newID:   uuid.NewString,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Do sends req to {baseURL}{endpoint} and returns the parsed JSON body.
// Callers inspect the body's own fields (such as "success") to interpret it.
func (c *HTTPClient) Do(ctx context.Context, endpoint string, req Request) (json.RawMessage, error) {
	method := req.Method
	if method == "" {
		method = http.MethodGet
	}

	body, contentType, err := encodeBody(req.Body)
	if err != nil {
		c.logger.Error(ctx, "api request encoding failed", "endpoint", endpoint, "error", err)
		return nil, fmt.Errorf("encode request body: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, body)
	if err != nil {
		c.logger.Error(ctx, "api request build failed", "endpoint", endpoint, "error", err)
		return nil, fmt.Errorf("build request: %w", err)
	}

	for k, v := range req.Headers {
		httpReq.Header.Set(k, v)
	}
	// For multipart bodies this is the writer's own content type, so the
	// boundary always matches the payload.
	httpReq.Header.Set(common.ContentTypeHeaderName, contentType)

	if token := c.tokens.Token(ctx); token != "" {
		httpReq.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+token)
	}

	requestID := c.newID()
	httpReq.Header.Set(common.RequestIDHeaderName, requestID)
	log := c.logger.With("endpoint", endpoint, "method", method, "request_id", requestID)

	log.Debug(ctx, "api request")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		log.Error(ctx, "api request failed", "error", err)
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Error(ctx, "api response read failed", "status", resp.StatusCode, "error", err)
		return nil, fmt.Errorf("%w: read body: %w", ErrUnavailable, err)
	}

	if !json.Valid(data) {
		log.Error(ctx, "api response is not JSON", "status", resp.StatusCode)
		return nil, fmt.Errorf("%w: %s returned a non-JSON body (status %d)", ErrInvalidResponse, endpoint, resp.StatusCode)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := newAPIError(resp.StatusCode, data)
		log.Error(ctx, "api error response", "status", resp.StatusCode, "error", apiErr.Message)
		return nil, apiErr
	}

	log.Debug(ctx, "api response", "status", resp.StatusCode)
	return json.RawMessage(data), nil
}

func encodeBody(body any) (io.Reader, string, error) {
	switch b := body.(type) {
	case nil:
		return nil, common.JSONContentType, nil
	case *Multipart:
		r, ct, err := b.encode()
		if err != nil {
			return nil, "", err
		}
		return r, ct, nil
	default:
		data, err := json.Marshal(b)
		if err != nil {
			return nil, "", err
		}
		return bytes.NewReader(data), common.JSONContentType, nil
	}
}
