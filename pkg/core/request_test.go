package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRequest(t *testing.T) {
	req := NewRequest("GET", "https://api.binance.com/api/v3/ticker/price")

	assert.Equal(t, "GET", req.Method)
	assert.Equal(t, "https://api.binance.com/api/v3/ticker/price", req.URL)
	assert.NotNil(t, req.Query)
	assert.NotNil(t, req.Headers)
	assert.False(t, req.RequireAuth)
}

func TestRequest_SetQuery(t *testing.T) {
	req := NewRequest("GET", "/api/v3/ticker/price")
	result := req.SetQuery("symbol", "BTCUSDT")

	assert.Equal(t, req, result)
	v, ok := req.Query.Get("symbol")
	assert.True(t, ok)
	assert.Equal(t, "BTCUSDT", v)
}

func TestRequest_SetHeader(t *testing.T) {
	req := NewRequest("GET", "/api/v3/ticker/price")
	result := req.SetHeader("X-Custom", "value")

	assert.Equal(t, req, result)
	assert.Equal(t, "value", req.Headers["X-Custom"])
}

func TestRequest_SetHeaders_Copies(t *testing.T) {
	src := map[string]string{"Accept": "application/json"}
	req := NewRequest("GET", "/api/v3/ping").SetHeaders(src)
	req.SetHeader("X-MBX-APIKEY", "key")

	assert.Len(t, src, 1)
	assert.Len(t, req.Headers, 2)
}

func TestRequest_FullURL(t *testing.T) {
	req := NewRequest("GET", "https://api.binance.com/api/v3/ping")
	assert.Equal(t, "https://api.binance.com/api/v3/ping", req.FullURL())

	req.SetQuery("symbol", "BTCUSDT").SetQuery("orderId", 42)
	assert.Equal(t, "https://api.binance.com/api/v3/ping?symbol=BTCUSDT&orderId=42", req.FullURL())
}

func TestParams_EncodeKeepsInsertionOrder(t *testing.T) {
	p := NewParams(3).
		Add("symbol", "BTCUSDT").
		Add("side", "BUY").
		Add("apple", "x")

	assert.Equal(t, "symbol=BTCUSDT&side=BUY&apple=x", p.Encode())
	assert.Equal(t, []string{"symbol", "side", "apple"}, p.Keys())
}

func TestParams_EncodeEscapes(t *testing.T) {
	p := NewParams(2).Add("note", "a b&c").Add("id", "x/y")

	assert.Equal(t, "note=a+b%26c&id=x%2Fy", p.Encode())
}

func TestParams_Clone(t *testing.T) {
	p := NewParams(1).Add("symbol", "BTCUSDT")
	c := p.Clone().Add("timestamp", int64(1))

	assert.Len(t, p, 1)
	assert.Len(t, c, 2)
}

func TestParams_GetMissing(t *testing.T) {
	_, ok := NewParams(0).Get("symbol")
	assert.False(t, ok)
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  string
	}{
		{"string", "0.01", "0.01"},
		{"int", 5000, "5000"},
		{"int64", int64(1700000000000), "1700000000000"},
		{"uint64", uint64(7), "7"},
		{"float64", 30000.5, "30000.5"},
		{"float64_integral", float64(30000), "30000"},
		{"bool", true, "true"},
		{"other", int32(-3), "-3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatValue(tt.value))
		})
	}
}
