package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOperation_String(t *testing.T) {
	tests := []struct {
		name string
		op   Operation
		want string
	}{
		{"ping", OpPing, "ping"},
		{"get_server_time", OpGetServerTime, "get_server_time"},
		{"get_symbol_data", OpGetSymbolData, "get_symbol_data"},
		{"get_symbol_price", OpGetSymbolPrice, "get_symbol_price"},
		{"get_user_data", OpGetUserData, "get_user_data"},
		{"get_open_orders", OpGetOpenOrders, "get_open_orders"},
		{"get_order_info", OpGetOrderInfo, "get_order_info"},
		{"create_order", OpCreateOrder, "create_order"},
		{"cancel_order", OpCancelOrder, "cancel_order"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.op.String())
		})
	}
}
