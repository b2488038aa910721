package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/stratapay/client-go/internal/crypto"
	"github.com/stratapay/client-go/internal/jsonval"
)

// Default client configuration.
const (
	// DefaultBaseURL is the production Strata API endpoint.
	DefaultBaseURL = "https://api.stratapay.io"
	// DefaultTimeout is the HTTP client timeout when none is configured.
	DefaultTimeout = 30 * time.Second
)

// Client is the HTTP API client. Credentials are immutable after
// construction; each call builds, signs, and dispatches its own request, so
// a Client is safe for concurrent use.
type Client struct {
	baseURL    string
	apiToken   string
	secretKey  []byte
	httpClient *http.Client

	// now is the timestamp source for request signing. Tests pin it to
	// verify digests without mocking the wall clock.
	now func() time.Time
}

// Config holds explicit client configuration.
type Config struct {
	BaseURL    string
	APIToken   string
	SecretKey  string
	HTTPClient *http.Client
	Timeout    time.Duration
}

// Option configures the API client.
type Option func(*Client)

// WithBaseURL sets the base URL.
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = url
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.httpClient = client
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// NewClient creates an API client from explicit configuration.
func NewClient(cfg Config) (*Client, error) {
	if cfg.APIToken == "" {
		return nil, ErrMissingAPIToken
	}
	if cfg.SecretKey == "" {
		return nil, ErrMissingSecretKey
	}
	if cfg.BaseURL == "" {
		return nil, ErrMissingBaseURL
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout == 0 {
			timeout = DefaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	} else if cfg.Timeout != 0 {
		// Copy so the timeout does not leak into the caller's client.
		clone := *httpClient
		clone.Timeout = cfg.Timeout
		httpClient = &clone
	}

	return &Client{
		baseURL:    cfg.BaseURL,
		apiToken:   cfg.APIToken,
		secretKey:  []byte(cfg.SecretKey),
		httpClient: httpClient,
		now:        time.Now,
	}, nil
}

// New creates an API client using the functional options pattern.
func New(apiToken, secretKey string, opts ...Option) (*Client, error) {
	c, err := NewClient(Config{
		BaseURL:   DefaultBaseURL,
		APIToken:  apiToken,
		SecretKey: secretKey,
	})
	if err != nil {
		return nil, err
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.baseURL == "" {
		return nil, ErrMissingBaseURL
	}
	return c, nil
}

// BaseURL returns the configured base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// HTTPClient returns the underlying HTTP client.
func (c *Client) HTTPClient() *http.Client {
	return c.httpClient
}

// SetHTTPClient sets a custom HTTP client.
func (c *Client) SetHTTPClient(client *http.Client) {
	c.httpClient = client
}

// SetNowFunc overrides the timestamp source used for signing.
func (c *Client) SetNowFunc(now func() time.Time) {
	c.now = now
}

// signRequest adds the authentication headers to a descriptor: the API
// token, a unix timestamp, and the HMAC digest over the canonical request.
// The descriptor must not be mutated afterwards.
func (c *Client) signRequest(d *requestDescriptor) {
	ts := c.now().Unix()
	digest := crypto.SignRequest(c.secretKey, d.method, d.url, ts, d.body)
	d.header.Set(crypto.HeaderAPIToken, c.apiToken)
	d.header.Set(crypto.HeaderTimestamp, fmt.Sprintf("%d", ts))
	d.header.Set(crypto.HeaderSignature, digest)
}

// roundTrip builds, signs, and dispatches a request, returning the raw
// status and body. A transport failure (no response at all) is returned as
// a *NetworkError; an HTTP error status is not an error at this layer.
func (c *Client) roundTrip(ctx context.Context, method, path string, params Params) (int, []byte, error) {
	d, err := c.buildRequest(method, path, params)
	if err != nil {
		return 0, nil, err
	}

	// Signing last: the digest covers exactly the bytes sent.
	c.signRequest(d)

	var bodyReader io.Reader
	if d.body != nil {
		bodyReader = bytes.NewReader(d.body)
	}
	req, err := http.NewRequestWithContext(ctx, d.method, d.url, bodyReader)
	if err != nil {
		return 0, nil, fmt.Errorf("create request: %w", err)
	}
	req.Header = d.header

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, &NetworkError{Err: err, URL: d.url}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, &NetworkError{Err: err, URL: d.url}
	}

	return resp.StatusCode, body, nil
}

// Do executes a call through the full pipeline and, on success, decodes the
// response body into result when result is non-nil.
func (c *Client) Do(ctx context.Context, method, path string, params Params, result interface{}) error {
	status, body, err := c.roundTrip(ctx, method, path, params)
	if err != nil {
		return err
	}

	if _, err := interpretResponse(status, body); err != nil {
		return err
	}

	if result == nil || status == http.StatusNoContent {
		return nil
	}
	if err := json.Unmarshal(body, result); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// DoValue executes a call and returns the decoded payload as a generic JSON
// value. A 204 response yields a null value.
func (c *Client) DoValue(ctx context.Context, method, path string, params Params) (jsonval.Value, error) {
	status, body, err := c.roundTrip(ctx, method, path, params)
	if err != nil {
		return jsonval.Value{}, err
	}
	return interpretResponse(status, body)
}
