package core

// Operation is the logical name of a REST call known to the endpoint registry.
type Operation string

// Operation constants name every call the client can make.
const (
	// OpPing tests connectivity to the REST API.
	OpPing Operation = "ping"
	// OpGetServerTime retrieves the current server time.
	OpGetServerTime Operation = "get_server_time"
	// OpGetSymbolData retrieves exchange trading rules and symbol information.
	OpGetSymbolData Operation = "get_symbol_data"
	// OpGetSymbolPrice retrieves the latest price for a symbol.
	OpGetSymbolPrice Operation = "get_symbol_price"
	// OpGetUserData retrieves account information.
	OpGetUserData Operation = "get_user_data"
	// OpGetOpenOrders retrieves all open orders on a symbol.
	OpGetOpenOrders Operation = "get_open_orders"
	// OpGetOrderInfo retrieves the status of a single order.
	OpGetOrderInfo Operation = "get_order_info"
	// OpCreateOrder submits a new limit order.
	OpCreateOrder Operation = "create_order"
	// OpCancelOrder cancels an active order.
	OpCancelOrder Operation = "cancel_order"
)

// String returns the operation name.
func (o Operation) String() string {
	return string(o)
}
