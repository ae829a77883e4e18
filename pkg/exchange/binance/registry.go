package binance

import (
	"fmt"
	"net/http"

	"binancebus/pkg/core"
)

// Endpoint describes how a logical operation is performed.
type Endpoint struct {
	Method       string
	Path         string
	RequiresAuth bool
}

// URL joins the endpoint path onto baseURL.
func (e Endpoint) URL(baseURL string) string {
	return baseURL + e.Path
}

// endpoints is never written after initialization; Lookup hands out copies.
var endpoints = map[core.Operation]Endpoint{
	core.OpPing:           {http.MethodGet, "/api/v3/ping", false},
	core.OpGetServerTime:  {http.MethodGet, "/api/v3/time", false},
	core.OpGetSymbolData:  {http.MethodGet, "/api/v3/exchangeInfo", false},
	core.OpGetSymbolPrice: {http.MethodGet, "/api/v3/ticker/price", false},
	core.OpGetUserData:    {http.MethodGet, "/api/v3/account", true},
	core.OpGetOpenOrders:  {http.MethodGet, "/api/v3/openOrders", true},
	core.OpGetOrderInfo:   {http.MethodGet, "/api/v3/order", true},
	core.OpCreateOrder:    {http.MethodPost, "/api/v3/order", true},
	core.OpCancelOrder:    {http.MethodDelete, "/api/v3/order", true},
}

var operations = []core.Operation{
	core.OpPing,
	core.OpGetServerTime,
	core.OpGetSymbolData,
	core.OpGetSymbolPrice,
	core.OpGetUserData,
	core.OpGetOpenOrders,
	core.OpGetOrderInfo,
	core.OpCreateOrder,
	core.OpCancelOrder,
}

// Lookup returns the endpoint registered for op.
func Lookup(op core.Operation) (Endpoint, error) {
	ep, ok := endpoints[op]
	if !ok {
		return Endpoint{}, fmt.Errorf("%w: %q", core.ErrUnknownOperation, string(op))
	}
	return ep, nil
}

// Operations returns every registered operation in table order.
func Operations() []core.Operation {
	return append([]core.Operation(nil), operations...)
}
