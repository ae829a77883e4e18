// Package binance implements a client for the Binance spot REST API.
//
// The package includes:
//   - Registry: the fixed table of operations, HTTP methods and endpoint paths
//   - Protocol: request building, HMAC-SHA256 signing and response classification
//   - Client: one method per operation plus the generic Response call
//   - Normalizer: decoding of response bodies into core types
//
// Example usage:
//
//	client, err := binance.New(core.DefaultConfig().WithCredentials(key, secret))
//	price, err := client.GetSymbolPrice(ctx, "BTCUSDT")
package binance
