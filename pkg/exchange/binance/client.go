package binance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	httpClient "binancebus/internal/http"
	"binancebus/pkg/core"
)

// Client calls the Binance spot REST API. Every method performs exactly one
// HTTP round trip; nothing is retried or cached. Credentials are copied at
// construction and headers and parameters are built per call, so a Client may
// be shared between goroutines.
type Client struct {
	config      *core.Config
	credentials *core.Credentials
	httpClient  *httpClient.Client
	protocol    *Protocol
	normalizer  *Normalizer
	logger      zerolog.Logger
}

// Option is a functional option for configuring the Client.
type Option func(*Options)

// Options holds configuration options for the Client.
type Options struct {
	Logger zerolog.Logger
	Clock  func() time.Time
}

// WithLogger returns an option that sets the logger for the client.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithClock returns an option that replaces the time source used for request timestamps.
func WithClock(now func() time.Time) Option {
	return func(o *Options) {
		o.Clock = now
	}
}

// New creates a Client with the given configuration and options.
func New(config *core.Config, opts ...Option) (*Client, error) {
	if config == nil {
		return nil, fmt.Errorf("config is required")
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	options := &Options{
		Logger: zerolog.Nop(),
		Clock:  time.Now,
	}
	for _, opt := range opts {
		opt(options)
	}

	logger := options.Logger
	if config.LogLevel != "" {
		level, err := zerolog.ParseLevel(config.LogLevel)
		if err != nil {
			level = zerolog.InfoLevel
		}
		logger = logger.Level(level)
	}
	logger = logger.With().Str("exchange", "binance").Logger()

	hc, err := httpClient.NewClient(&httpClient.Config{Timeout: config.Timeout}, logger)
	if err != nil {
		return nil, fmt.Errorf("create http client: %w", err)
	}

	var creds *core.Credentials
	if config.Credentials != nil {
		c := *config.Credentials
		creds = &c
		logger.Debug().Stringer("credentials", creds).Msg("credentials configured")
	}

	return &Client{
		config:      config,
		credentials: creds,
		httpClient:  hc,
		protocol:    NewProtocol(config.BaseURL, config.UserAgent, options.Clock),
		normalizer:  NewNormalizer(),
		logger:      logger,
	}, nil
}

// Name returns the exchange identifier "binance".
func (c *Client) Name() string {
	return c.protocol.Name()
}

// Close releases resources used by the client, including the HTTP client.
func (c *Client) Close() error {
	if c.httpClient != nil {
		return c.httpClient.Close()
	}
	return nil
}

// BuildRequest returns the request Response would send for op, without sending it.
func (c *Client) BuildRequest(op core.Operation, params core.Params) (*core.Request, error) {
	return c.protocol.BuildRequest(op, params, c.credentials)
}

// Ping tests connectivity. It returns true on any 2xx response.
func (c *Client) Ping(ctx context.Context) (bool, error) {
	if _, err := c.Response(ctx, core.OpPing, nil); err != nil {
		return false, err
	}
	return true, nil
}

// GetServerTime returns the decoded server time response.
func (c *Client) GetServerTime(ctx context.Context) (any, error) {
	return c.Response(ctx, core.OpGetServerTime, nil)
}

// GetSymbolData returns exchange trading rules and symbol information.
func (c *Client) GetSymbolData(ctx context.Context) (any, error) {
	return c.Response(ctx, core.OpGetSymbolData, nil)
}

// GetSymbolPrice returns the latest price for symbol.
func (c *Client) GetSymbolPrice(ctx context.Context, symbol string) (any, error) {
	return c.Response(ctx, core.OpGetSymbolPrice, symbolParams(symbol))
}

// GetUserData returns the account information. Signed.
func (c *Client) GetUserData(ctx context.Context) (any, error) {
	return c.Response(ctx, core.OpGetUserData, nil)
}

// GetOpenOrders returns the open orders on symbol. Signed.
func (c *Client) GetOpenOrders(ctx context.Context, symbol string) (any, error) {
	return c.Response(ctx, core.OpGetOpenOrders, symbolParams(symbol))
}

// GetOrderInfo returns the state of one order. Signed.
func (c *Client) GetOrderInfo(ctx context.Context, symbol string, orderID int64) (any, error) {
	return c.Response(ctx, core.OpGetOrderInfo, orderParams(symbol, orderID))
}

// CreateOrder places a GTC limit order and asks for the RESULT response type. Signed.
func (c *Client) CreateOrder(ctx context.Context, symbol string, side core.OrderSide, quantity, price string) (any, error) {
	return c.Response(ctx, core.OpCreateOrder, createOrderParams(symbol, side, quantity, price))
}

// CancelOrder cancels an active order. Signed.
func (c *Client) CancelOrder(ctx context.Context, symbol string, orderID int64) (any, error) {
	return c.Response(ctx, core.OpCancelOrder, orderParams(symbol, orderID))
}

func symbolParams(symbol string) core.Params {
	return core.NewParams(1).Add("symbol", symbol)
}

func orderParams(symbol string, orderID int64) core.Params {
	return core.NewParams(2).
		Add("symbol", symbol).
		Add("orderId", orderID)
}

func createOrderParams(symbol string, side core.OrderSide, quantity, price string) core.Params {
	return core.NewParams(7).
		Add("symbol", symbol).
		Add("side", side.String()).
		Add("type", core.OrderTypeLimit).
		Add("timeInForce", core.TimeInForceGTC).
		Add("quantity", quantity).
		Add("price", price).
		Add("newOrderRespType", core.NewOrderRespTypeResult)
}

// Response performs op with params (nil means none) and returns the decoded
// JSON body. Failures come back as *core.BusError, except an unknown op or
// missing credentials, which fail before any I/O.
func (c *Client) Response(ctx context.Context, op core.Operation, params core.Params) (any, error) {
	resp, err := c.do(ctx, op, params)
	if err != nil {
		return nil, err
	}
	return c.protocol.ParseResponse(resp)
}

// do sends op and returns the raw 2xx response.
func (c *Client) do(ctx context.Context, op core.Operation, params core.Params) (*httpClient.Response, error) {
	req, err := c.BuildRequest(op, params)
	if err != nil {
		return nil, fmt.Errorf("build request %s: %w", op, err)
	}

	resp, err := c.httpClient.Do(ctx, req)
	if err != nil {
		if errors.Is(err, core.ErrClientClosed) {
			return nil, err
		}
		c.logger.Debug().Err(err).Str("operation", op.String()).Msg("transport failure")
		return nil, core.NewTransportError(err)
	}

	if !resp.IsSuccess() {
		busErr := c.protocol.parseError(resp)
		c.logger.Debug().
			Str("operation", op.String()).
			Int("status", resp.StatusCode).
			Str("error", busErr.Message).
			Msg("request rejected")
		return nil, busErr
	}

	return resp, nil
}
