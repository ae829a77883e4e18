package binance

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/bytedance/sonic"

	httpClient "binancebus/internal/http"
	"binancebus/pkg/core"
)

const (
	// HeaderAPIKey carries the API key on signed requests.
	HeaderAPIKey = "X-MBX-APIKEY"
	// RecvWindow is the number of milliseconds after timestamp the server accepts the request.
	RecvWindow = 5000
)

// jsonAPI keeps numbers as json.Number so ids and codes pass through unchanged.
var jsonAPI = sonic.Config{UseNumber: true}.Froze()

// Protocol builds, signs and parses Binance REST calls. It performs no I/O.
type Protocol struct {
	baseURL   string
	userAgent string
	now       func() time.Time
}

// NewProtocol creates a protocol targeting baseURL.
func NewProtocol(baseURL, userAgent string, now func() time.Time) *Protocol {
	if now == nil {
		now = time.Now
	}
	return &Protocol{
		baseURL:   baseURL,
		userAgent: userAgent,
		now:       now,
	}
}

// Name returns the protocol identifier "binance".
func (p *Protocol) Name() string {
	return "binance"
}

// Version returns the Binance API version string.
func (p *Protocol) Version() string {
	return "3"
}

// BaseURL returns the host every endpoint path is joined to.
func (p *Protocol) BaseURL() string {
	return p.baseURL
}

// headers returns a fresh header map for one request.
func (p *Protocol) headers() map[string]string {
	return map[string]string{
		"Content-Type": "application/x-www-form-urlencoded",
		"Accept":       "application/json",
		"User-Agent":   p.userAgent,
	}
}

// BuildRequest resolves op and returns the request to send. params is copied,
// never modified. Signed endpoints require creds.
func (p *Protocol) BuildRequest(op core.Operation, params core.Params, creds *core.Credentials) (*core.Request, error) {
	ep, err := Lookup(op)
	if err != nil {
		return nil, err
	}

	req := core.NewRequest(ep.Method, ep.URL(p.baseURL)).
		SetHeaders(p.headers()).
		SetQueryParams(params).
		SetRequireAuth(ep.RequiresAuth)

	if ep.RequiresAuth {
		if err := p.SignRequest(req, creds); err != nil {
			return nil, fmt.Errorf("sign request: %w", err)
		}
	}

	return req, nil
}

// SignRequest appends timestamp, recvWindow and signature to the query, in
// that order, and sets the API key header. The signature covers every
// parameter before it.
func (p *Protocol) SignRequest(req *core.Request, creds *core.Credentials) error {
	if creds == nil || creds.APIKey == "" || creds.SecretKey == "" {
		return core.ErrNoCredentials
	}

	req.SetHeader(HeaderAPIKey, creds.APIKey)
	req.SetQuery("timestamp", p.now().UnixMilli())
	req.SetQuery("recvWindow", RecvWindow)
	req.SetQuery("signature", signHMAC(req.Query.Encode(), creds.SecretKey))

	return nil
}

// ParseResponse decodes a 2xx body verbatim, or classifies the failure.
func (p *Protocol) ParseResponse(resp *httpClient.Response) (any, error) {
	if resp == nil {
		return nil, fmt.Errorf("nil response")
	}

	if !resp.IsSuccess() {
		return nil, p.parseError(resp)
	}

	var result any
	if err := jsonAPI.Unmarshal(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return result, nil
}

// parseError maps a non-2xx response to a BusError. A body with both code and
// msg is an API error; anything else only reports the status.
func (p *Protocol) parseError(resp *httpClient.Response) *core.BusError {
	var body map[string]any
	if err := jsonAPI.Unmarshal(resp.Body, &body); err == nil {
		code, hasCode := body["code"]
		msg, hasMsg := body["msg"]
		if hasCode && hasMsg {
			return core.NewAPIError(resp.StatusCode, fmt.Sprint(code), fmt.Sprint(msg))
		}
	}
	return core.NewHTTPError(resp.StatusCode)
}

func signHMAC(message, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(message))
	return hex.EncodeToString(h.Sum(nil))
}
