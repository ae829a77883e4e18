package http

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"resty.dev/v3"

	"binancebus/pkg/core"
)

// Client wraps a resty client. It never retries: every Do is one round trip.
type Client struct {
	client *resty.Client
	logger zerolog.Logger
	mu     sync.RWMutex
	closed bool
}

type Config struct {
	Timeout time.Duration `validate:"min=1ms"`
}

// Response is a received HTTP response, whatever its status.
type Response struct {
	StatusCode int
	Body       []byte
	Headers    map[string]string
}

func NewClient(config *Config, logger zerolog.Logger) (*Client, error) {
	if err := validator.New().Struct(config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	client := resty.New()
	client.SetTimeout(config.Timeout)
	client.SetRetryCount(0)

	client.AddResponseMiddleware(func(_ *resty.Client, resp *resty.Response) error {
		logger.Debug().
			Str("method", resp.Request.Method).
			Int("status", resp.StatusCode()).
			Int("size", len(resp.Bytes())).
			Msg("http response")
		return nil
	})

	return &Client{
		client: client,
		logger: logger,
	}, nil
}

func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	c.closed = true
	return c.client.Close()
}

// Do sends req with its query string encoded in insertion order. Parameters
// always travel in the URL, whatever the method.
func (c *Client) Do(ctx context.Context, req *core.Request) (*Response, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.closed {
		return nil, core.ErrClientClosed
	}

	r := c.client.R().SetContext(ctx).SetHeaders(req.Headers)
	target := req.FullURL()

	c.logger.Debug().
		Str("method", req.Method).
		Str("url", req.URL).
		Int("params", len(req.Query)).
		Bool("signed", req.RequireAuth).
		Msg("http request")

	var resp *resty.Response
	var err error

	switch req.Method {
	case http.MethodGet:
		resp, err = r.Get(target)
	case http.MethodPost:
		resp, err = r.Post(target)
	case http.MethodDelete:
		resp, err = r.Delete(target)
	default:
		return nil, fmt.Errorf("unsupported http method: %s", req.Method)
	}

	if err != nil {
		c.logger.Error().Err(err).
			Str("method", req.Method).
			Str("url", req.URL).
			Msg("http request failed")
		return nil, fmt.Errorf("http request: %w", err)
	}

	headers := make(map[string]string)
	for k, v := range resp.Header() {
		if len(v) > 0 {
			headers[k] = v[0]
		}
	}

	return &Response{
		StatusCode: resp.StatusCode(),
		Body:       resp.Bytes(),
		Headers:    headers,
	}, nil
}

// IsSuccess returns true if the response status code indicates success (2xx).
func (r *Response) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}
