package core

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

const (
	// ProductionURL is the Binance spot REST API host.
	ProductionURL = "https://api.binance.com"
	// SandboxURL is the Binance spot testnet host.
	SandboxURL = "https://testnet.binance.vision"

	// DefaultUserAgent is sent with every request.
	DefaultUserAgent = "binance/go/api"
)

// Credentials holds API authentication credentials.
type Credentials struct {
	// APIKey is the public API key identifier sent in the X-MBX-APIKEY header.
	APIKey string `json:"api_key" validate:"required"`
	// SecretKey is the private key used to sign requests.
	SecretKey string `json:"secret_key" validate:"required"`
}

// String masks the API key and omits the secret.
func (c Credentials) String() string {
	return fmt.Sprintf("Credentials{APIKey:%s}", maskKey(c.APIKey))
}

func maskKey(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "****" + key[len(key)-4:]
}

// Config contains all configuration options for a REST client.
type Config struct {
	// BaseURL is prefixed to every endpoint path.
	BaseURL     string       `json:"base_url" validate:"required,url"`
	Credentials *Credentials `json:"credentials,omitempty"`

	// Timeout is the maximum duration of a single HTTP round trip.
	Timeout   time.Duration `json:"timeout" validate:"min=1ms"`
	UserAgent string        `json:"user_agent" validate:"required"`

	LogLevel string `json:"log_level" validate:"omitempty,oneof=debug info warn error"`
}

// DefaultConfig returns a Config for the production API with a 10s timeout
// and no credentials.
func DefaultConfig() *Config {
	return &Config{
		BaseURL:   ProductionURL,
		Timeout:   10 * time.Second,
		UserAgent: DefaultUserAgent,
		LogLevel:  "info",
	}
}

var validate = validator.New()

func (c *Config) Validate() error {
	return validate.Struct(c)
}

// WithCredentials sets the API credentials and returns the config for chaining.
func (c *Config) WithCredentials(apiKey, secretKey string) *Config {
	c.Credentials = &Credentials{APIKey: apiKey, SecretKey: secretKey}
	return c
}

// WithSandbox switches between the testnet and production hosts.
func (c *Config) WithSandbox(sandbox bool) *Config {
	if sandbox {
		c.BaseURL = SandboxURL
	} else {
		c.BaseURL = ProductionURL
	}
	return c
}

// WithBaseURL overrides the API host and returns the config for chaining.
func (c *Config) WithBaseURL(baseURL string) *Config {
	c.BaseURL = baseURL
	return c
}

// WithTimeout sets the request timeout and returns the config for chaining.
func (c *Config) WithTimeout(timeout time.Duration) *Config {
	c.Timeout = timeout
	return c
}
