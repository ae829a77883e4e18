package core

import (
	"fmt"
	"maps"
	"net/url"
	"strconv"
	"strings"
)

// Param is a single query parameter.
type Param struct {
	Key   string
	Value any
}

// Params is an ordered parameter set. Order is significant: the signature
// covers the encoded parameters exactly as they are sent.
type Params []Param

// NewParams creates an empty parameter set with room for n entries.
func NewParams(n int) Params {
	return make(Params, 0, n)
}

// Add appends a parameter and returns the extended set.
func (p Params) Add(key string, value any) Params {
	return append(p, Param{Key: key, Value: value})
}

// Get returns the formatted value of the first parameter named key.
func (p Params) Get(key string) (string, bool) {
	for _, param := range p {
		if param.Key == key {
			return FormatValue(param.Value), true
		}
	}
	return "", false
}

// Keys returns the parameter names in insertion order.
func (p Params) Keys() []string {
	keys := make([]string, len(p))
	for i, param := range p {
		keys[i] = param.Key
	}
	return keys
}

// Clone returns a copy that can be appended to without touching p.
func (p Params) Clone() Params {
	out := make(Params, len(p), len(p)+3)
	copy(out, p)
	return out
}

// Encode serializes the set as "k1=v1&k2=v2" with query escaping, keeping
// insertion order.
func (p Params) Encode() string {
	var sb strings.Builder
	for i, param := range p {
		if i > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(url.QueryEscape(param.Key))
		sb.WriteByte('=')
		sb.WriteString(url.QueryEscape(FormatValue(param.Value)))
	}
	return sb.String()
}

// FormatValue renders a parameter value the way it appears on the wire.
func FormatValue(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case uint64:
		return strconv.FormatUint(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprintf("%v", val)
	}
}

// Request is a fully built REST call, ready to be sent.
type Request struct {
	Method      string            `json:"method"`
	URL         string            `json:"url"`
	Query       Params            `json:"query,omitempty"`
	Headers     map[string]string `json:"headers,omitempty"`
	RequireAuth bool              `json:"require_auth"`
}

func NewRequest(method, url string) *Request {
	return &Request{
		Method:  method,
		URL:     url,
		Query:   NewParams(0),
		Headers: make(map[string]string),
	}
}

func (r *Request) SetQuery(key string, value any) *Request {
	r.Query = r.Query.Add(key, value)
	return r
}

func (r *Request) SetQueryParams(params Params) *Request {
	r.Query = append(r.Query, params...)
	return r
}

func (r *Request) SetHeader(key, value string) *Request {
	if r.Headers == nil {
		r.Headers = make(map[string]string)
	}
	r.Headers[key] = value
	return r
}

func (r *Request) SetHeaders(headers map[string]string) *Request {
	if r.Headers == nil {
		r.Headers = make(map[string]string, len(headers))
	}
	maps.Copy(r.Headers, headers)
	return r
}

func (r *Request) SetRequireAuth(require bool) *Request {
	r.RequireAuth = require
	return r
}

// FullURL returns the URL with the encoded query appended.
func (r *Request) FullURL() string {
	if len(r.Query) == 0 {
		return r.URL
	}
	return r.URL + "?" + r.Query.Encode()
}
