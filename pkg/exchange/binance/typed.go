package binance

import (
	"context"

	"binancebus/pkg/core"
)

// The methods below perform the same calls as their untyped counterparts and
// decode the body into core types.

// ServerTime returns the exchange clock.
func (c *Client) ServerTime(ctx context.Context) (*core.ServerTime, error) {
	resp, err := c.do(ctx, core.OpGetServerTime, nil)
	if err != nil {
		return nil, err
	}
	return c.normalizer.DecodeServerTime(resp.Body)
}

// SymbolPrice returns the latest price of symbol.
func (c *Client) SymbolPrice(ctx context.Context, symbol string) (*core.SymbolPrice, error) {
	resp, err := c.do(ctx, core.OpGetSymbolPrice, symbolParams(symbol))
	if err != nil {
		return nil, err
	}
	return c.normalizer.DecodeSymbolPrice(resp.Body)
}

// Account returns the account state with balances. Signed.
func (c *Client) Account(ctx context.Context) (*core.Account, error) {
	resp, err := c.do(ctx, core.OpGetUserData, nil)
	if err != nil {
		return nil, err
	}
	return c.normalizer.DecodeAccount(resp.Body)
}

// OpenOrders returns the open orders on symbol. Signed.
func (c *Client) OpenOrders(ctx context.Context, symbol string) ([]core.Order, error) {
	resp, err := c.do(ctx, core.OpGetOpenOrders, symbolParams(symbol))
	if err != nil {
		return nil, err
	}
	return c.normalizer.DecodeOrders(resp.Body)
}

// Order returns one order. Signed.
func (c *Client) Order(ctx context.Context, symbol string, orderID int64) (*core.Order, error) {
	resp, err := c.do(ctx, core.OpGetOrderInfo, orderParams(symbol, orderID))
	if err != nil {
		return nil, err
	}
	return c.normalizer.DecodeOrder(resp.Body)
}

// PlaceLimitOrder places a GTC limit order and returns the accepted order. Signed.
func (c *Client) PlaceLimitOrder(ctx context.Context, symbol string, side core.OrderSide, quantity, price string) (*core.Order, error) {
	resp, err := c.do(ctx, core.OpCreateOrder, createOrderParams(symbol, side, quantity, price))
	if err != nil {
		return nil, err
	}
	return c.normalizer.DecodeOrder(resp.Body)
}

// Cancel cancels an active order and returns its final state. Signed.
func (c *Client) Cancel(ctx context.Context, symbol string, orderID int64) (*core.Order, error) {
	resp, err := c.do(ctx, core.OpCancelOrder, orderParams(symbol, orderID))
	if err != nil {
		return nil, err
	}
	return c.normalizer.DecodeOrder(resp.Body)
}
