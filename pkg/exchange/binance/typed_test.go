package binance

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"binancebus/pkg/core"
)

func TestClient_ServerTime(t *testing.T) {
	server := newTestServer(t, http.StatusOK, `{"serverTime":1499827319559}`)
	client := newTestClient(t, server.URL)

	st, err := client.ServerTime(context.Background())
	require.NoError(t, err)
	assert.Equal(t, time.UnixMilli(1499827319559), st.Time)
}

func TestClient_SymbolPrice(t *testing.T) {
	server := newTestServer(t, http.StatusOK, `{"symbol":"ETHUSDT","price":"1850.55000000"}`)
	client := newTestClient(t, server.URL)

	price, err := client.SymbolPrice(context.Background(), "ETHUSDT")
	require.NoError(t, err)
	assert.Equal(t, "ETHUSDT", price.Symbol)
	assert.Equal(t, "1850.55000000", price.Price.String())
	assert.Equal(t, "symbol=ETHUSDT", server.last.Load().RawQuery)
}

func TestClient_Account(t *testing.T) {
	server := newTestServer(t, http.StatusOK,
		`{"canTrade":true,"balances":[{"asset":"USDT","free":"100.5","locked":"0"}]}`)
	client := newTestClient(t, server.URL)

	account, err := client.Account(context.Background())
	require.NoError(t, err)

	usdt, ok := account.Balance("USDT")
	require.True(t, ok)
	assert.Equal(t, "100.5", usdt.Free.String())
	assert.Equal(t, "test-key", server.last.Load().Header.Get(HeaderAPIKey))
}

func TestClient_OpenOrders(t *testing.T) {
	server := newTestServer(t, http.StatusOK,
		`[{"symbol":"BTCUSDT","orderId":7,"price":"30000","origQty":"1","executedQty":"0","status":"NEW","side":"BUY","type":"LIMIT"}]`)
	client := newTestClient(t, server.URL)

	orders, err := client.OpenOrders(context.Background(), "BTCUSDT")
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, int64(7), orders[0].ID)
	assert.Equal(t, core.StatusNew, orders[0].Status)
}

func TestClient_OrderLifecycle(t *testing.T) {
	server := newTestServer(t, http.StatusOK,
		`{"symbol":"BTCUSDT","orderId":9,"price":"30000","origQty":"0.01","executedQty":"0","status":"NEW","side":"BUY","type":"LIMIT","timeInForce":"GTC","transactTime":1700000000001}`)
	client := newTestClient(t, server.URL)
	ctx := context.Background()

	placed, err := client.PlaceLimitOrder(ctx, "BTCUSDT", core.SideBuy, "0.01", "30000")
	require.NoError(t, err)
	assert.Equal(t, int64(9), placed.ID)
	assert.Equal(t, "GTC", placed.TimeInForce)
	assert.Equal(t, http.MethodPost, server.last.Load().Method)

	info, err := client.Order(ctx, "BTCUSDT", placed.ID)
	require.NoError(t, err)
	assert.Equal(t, placed.ID, info.ID)
	assert.Equal(t, http.MethodGet, server.last.Load().Method)

	server.respond(`{"symbol":"BTCUSDT","orderId":9,"price":"30000","origQty":"0.01","executedQty":"0","status":"CANCELED","side":"BUY","type":"LIMIT"}`)
	canceled, err := client.Cancel(ctx, "BTCUSDT", placed.ID)
	require.NoError(t, err)
	assert.True(t, canceled.Status.IsTerminal())
	assert.Equal(t, http.MethodDelete, server.last.Load().Method)

	assert.Equal(t, int32(3), server.hits.Load())
}

func TestClient_TypedPropagatesBusError(t *testing.T) {
	server := newTestServer(t, http.StatusUnauthorized, `{"code":-2015,"msg":"Invalid API-key, IP, or permissions for action."}`)
	client := newTestClient(t, server.URL)

	_, err := client.Account(context.Background())

	require.Error(t, err)
	assert.True(t, core.IsAPIError(err))
	assert.Equal(t, "ERROR: <Binance API>: Code -2015 MSG Invalid API-key, IP, or permissions for action.", err.Error())
}
