package binance

import (
	"fmt"
	"time"

	"github.com/cockroachdb/apd/v3"

	"binancebus/pkg/core"
)

// binanceServerTime represents the raw server time response from Binance API.
type binanceServerTime struct {
	ServerTime int64 `json:"serverTime"`
}

// binanceSymbolPrice represents the raw ticker price response from Binance API.
type binanceSymbolPrice struct {
	Symbol string `json:"symbol"`
	Price  string `json:"price"`
}

// binanceOrder represents the raw order response from Binance API.
type binanceOrder struct {
	Symbol        string `json:"symbol"`
	OrderID       int64  `json:"orderId"`
	ClientOrderID string `json:"clientOrderId"`
	Price         string `json:"price"`
	OrigQty       string `json:"origQty"`
	ExecutedQty   string `json:"executedQty"`
	Status        string `json:"status"`
	Type          string `json:"type"`
	Side          string `json:"side"`
	TimeInForce   string `json:"timeInForce"`
	TransactTime  int64  `json:"transactTime"`
	Time          int64  `json:"time"`
	UpdateTime    int64  `json:"updateTime"`
}

// binanceBalance represents a single asset balance from Binance API.
type binanceBalance struct {
	Asset  string `json:"asset"`
	Free   string `json:"free"`
	Locked string `json:"locked"`
}

// binanceAccount represents the account information response from Binance API.
type binanceAccount struct {
	CanTrade    bool             `json:"canTrade"`
	CanWithdraw bool             `json:"canWithdraw"`
	CanDeposit  bool             `json:"canDeposit"`
	Balances    []binanceBalance `json:"balances"`
}

// Normalizer converts Binance-specific payloads to core types.
type Normalizer struct{}

// NewNormalizer creates a new Normalizer instance.
func NewNormalizer() *Normalizer {
	return &Normalizer{}
}

// DecodeServerTime decodes a get_server_time body.
func (n *Normalizer) DecodeServerTime(body []byte) (*core.ServerTime, error) {
	var data binanceServerTime
	if err := jsonAPI.Unmarshal(body, &data); err != nil {
		return nil, fmt.Errorf("unmarshal server time: %w", err)
	}
	return &core.ServerTime{Time: time.UnixMilli(data.ServerTime)}, nil
}

// DecodeSymbolPrice decodes a get_symbol_price body for a single symbol.
func (n *Normalizer) DecodeSymbolPrice(body []byte) (*core.SymbolPrice, error) {
	var data binanceSymbolPrice
	if err := jsonAPI.Unmarshal(body, &data); err != nil {
		return nil, fmt.Errorf("unmarshal symbol price: %w", err)
	}

	price := &core.SymbolPrice{Symbol: data.Symbol}
	if err := parseDecimal(&price.Price, data.Price); err != nil {
		return nil, fmt.Errorf("parse price: %w", err)
	}
	return price, nil
}

// DecodeAccount decodes a get_user_data body.
func (n *Normalizer) DecodeAccount(body []byte) (*core.Account, error) {
	var data binanceAccount
	if err := jsonAPI.Unmarshal(body, &data); err != nil {
		return nil, fmt.Errorf("unmarshal account: %w", err)
	}

	account := &core.Account{
		CanTrade:    data.CanTrade,
		CanWithdraw: data.CanWithdraw,
		CanDeposit:  data.CanDeposit,
		Balances:    make([]core.Balance, 0, len(data.Balances)),
	}
	for _, b := range data.Balances {
		balance, err := n.NormalizeBalance(&b)
		if err != nil {
			return nil, fmt.Errorf("normalize balance %s: %w", b.Asset, err)
		}
		account.Balances = append(account.Balances, *balance)
	}
	return account, nil
}

// DecodeOrder decodes a single order body (get_order_info, create_order, cancel_order).
func (n *Normalizer) DecodeOrder(body []byte) (*core.Order, error) {
	var data binanceOrder
	if err := jsonAPI.Unmarshal(body, &data); err != nil {
		return nil, fmt.Errorf("unmarshal order: %w", err)
	}
	return n.NormalizeOrder(&data)
}

// DecodeOrders decodes a get_open_orders body.
func (n *Normalizer) DecodeOrders(body []byte) ([]core.Order, error) {
	var data []binanceOrder
	if err := jsonAPI.Unmarshal(body, &data); err != nil {
		return nil, fmt.Errorf("unmarshal orders: %w", err)
	}
	return n.NormalizeOrders(data)
}

// NormalizeBalance converts a Binance balance to a canonical Balance.
func (n *Normalizer) NormalizeBalance(data *binanceBalance) (*core.Balance, error) {
	balance := &core.Balance{Asset: data.Asset}
	if err := parseDecimal(&balance.Free, data.Free); err != nil {
		return nil, fmt.Errorf("parse free: %w", err)
	}
	if err := parseDecimal(&balance.Locked, data.Locked); err != nil {
		return nil, fmt.Errorf("parse locked: %w", err)
	}
	return balance, nil
}

// NormalizeOrder converts a Binance order response to a canonical Order.
// It calculates the remaining quantity from total and filled quantities.
func (n *Normalizer) NormalizeOrder(data *binanceOrder) (*core.Order, error) {
	order := &core.Order{
		ID:            data.OrderID,
		ClientOrderID: data.ClientOrderID,
		Symbol:        data.Symbol,
		Side:          core.OrderSide(data.Side),
		Type:          data.Type,
		Status:        core.OrderStatus(data.Status),
		TimeInForce:   data.TimeInForce,
	}

	if err := parseDecimal(&order.Price, data.Price); err != nil {
		return nil, fmt.Errorf("parse price: %w", err)
	}
	if err := parseDecimal(&order.Quantity, data.OrigQty); err != nil {
		return nil, fmt.Errorf("parse quantity: %w", err)
	}
	if err := parseDecimal(&order.FilledQuantity, data.ExecutedQty); err != nil {
		return nil, fmt.Errorf("parse executed quantity: %w", err)
	}

	switch {
	case data.TransactTime > 0:
		order.CreatedAt = time.UnixMilli(data.TransactTime)
	case data.Time > 0:
		order.CreatedAt = time.UnixMilli(data.Time)
	}

	if data.UpdateTime > 0 {
		order.UpdatedAt = time.UnixMilli(data.UpdateTime)
	}

	var remaining apd.Decimal
	_, err := apd.BaseContext.Sub(&remaining, &order.Quantity, &order.FilledQuantity)
	if err != nil {
		return nil, fmt.Errorf("calculate remaining: %w", err)
	}
	order.RemainingQty = remaining

	return order, nil
}

// NormalizeOrders converts multiple Binance orders to canonical Orders.
func (n *Normalizer) NormalizeOrders(data []binanceOrder) ([]core.Order, error) {
	orders := make([]core.Order, 0, len(data))
	for _, o := range data {
		order, err := n.NormalizeOrder(&o)
		if err != nil {
			return nil, fmt.Errorf("normalize order: %w", err)
		}
		orders = append(orders, *order)
	}
	return orders, nil
}

func parseDecimal(dest *apd.Decimal, s string) error {
	if s == "" {
		*dest = apd.Decimal{}
		return nil
	}

	_, _, err := apd.BaseContext.SetString(dest, s)
	if err != nil {
		return fmt.Errorf("set decimal from string: %w", err)
	}

	return nil
}
