package core

import (
	"time"

	"github.com/cockroachdb/apd/v3"
)

// OrderSide is the direction of an order as the API spells it.
type OrderSide string

// Order side constants.
const (
	SideBuy  OrderSide = "BUY"
	SideSell OrderSide = "SELL"
)

// String returns the wire value of the side.
func (s OrderSide) String() string {
	return string(s)
}

// Fixed order options sent with every CreateOrder call.
const (
	OrderTypeLimit         = "LIMIT"
	TimeInForceGTC         = "GTC"
	NewOrderRespTypeResult = "RESULT"
)

// OrderStatus is the lifecycle state reported for an order.
type OrderStatus string

// Order status constants.
const (
	StatusNew             OrderStatus = "NEW"
	StatusPartiallyFilled OrderStatus = "PARTIALLY_FILLED"
	StatusFilled          OrderStatus = "FILLED"
	StatusCanceled        OrderStatus = "CANCELED"
	StatusPendingCancel   OrderStatus = "PENDING_CANCEL"
	StatusRejected        OrderStatus = "REJECTED"
	StatusExpired         OrderStatus = "EXPIRED"
)

// IsTerminal returns true if the order is in a terminal state (no further changes possible).
func (s OrderStatus) IsTerminal() bool {
	return s == StatusFilled || s == StatusCanceled || s == StatusRejected || s == StatusExpired
}

// ServerTime is the exchange clock.
type ServerTime struct {
	Time time.Time `json:"time"`
}

// SymbolPrice is the latest price of a trading pair.
type SymbolPrice struct {
	Symbol string      `json:"symbol"`
	Price  apd.Decimal `json:"price"`
}

// Order represents an exchange order with all its details.
type Order struct {
	// ID is the exchange-assigned order identifier.
	ID int64 `json:"id"`
	// ClientOrderID is the client-assigned order identifier.
	ClientOrderID string `json:"client_order_id"`
	// Symbol is the trading pair for this order.
	Symbol string      `json:"symbol"`
	Side   OrderSide   `json:"side"`
	Type   string      `json:"type"`
	Status OrderStatus `json:"status"`
	// TimeInForce defines how long the order remains active.
	TimeInForce string `json:"time_in_force"`
	// Price is the limit price for limit orders.
	Price apd.Decimal `json:"price"`
	// Quantity is the total order quantity.
	Quantity apd.Decimal `json:"quantity"`
	// FilledQuantity is the amount that has been executed.
	FilledQuantity apd.Decimal `json:"filled_quantity"`
	// RemainingQty is the unfilled portion of the order.
	RemainingQty apd.Decimal `json:"remaining_quantity"`
	// CreatedAt is when the order was submitted, zero if not reported.
	CreatedAt time.Time `json:"created_at"`
	// UpdatedAt is when the order was last modified, zero if not reported.
	UpdatedAt time.Time `json:"updated_at"`
}

// Balance represents account balance for a single asset.
type Balance struct {
	// Asset is the currency or token symbol (e.g., "BTC", "USDT").
	Asset string `json:"asset"`
	// Free is the available balance for trading.
	Free apd.Decimal `json:"free"`
	// Locked is the balance locked in open orders.
	Locked apd.Decimal `json:"locked"`
}

// Account is the trading account state.
type Account struct {
	CanTrade    bool      `json:"can_trade"`
	CanWithdraw bool      `json:"can_withdraw"`
	CanDeposit  bool      `json:"can_deposit"`
	Balances    []Balance `json:"balances"`
}

// Balance returns the balance of asset, or false if the account holds none.
func (a *Account) Balance(asset string) (Balance, bool) {
	for _, b := range a.Balances {
		if b.Asset == asset {
			return b, true
		}
	}
	return Balance{}, false
}
