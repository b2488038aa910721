package stratapay

import (
	"context"
	"time"

	"github.com/stratapay/client-go/internal/api"
)

// Client is the main Strata client. Credentials are supplied once at
// construction and never mutated, so a Client is safe for concurrent use;
// several independently-configured clients can coexist in one process.
type Client struct {
	apiClient *api.Client
}

// New creates a new Strata client with the given API token and secret key.
func New(apiToken, secretKey string, opts ...Option) (*Client, error) {
	if apiToken == "" {
		return nil, ErrMissingAPIToken
	}
	if secretKey == "" {
		return nil, ErrMissingSecretKey
	}

	cfg := &clientConfig{
		baseURL: defaultBaseURL,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	apiClient, err := api.NewClient(api.Config{
		BaseURL:    cfg.baseURL,
		APIToken:   apiToken,
		SecretKey:  secretKey,
		HTTPClient: cfg.httpClient,
		Timeout:    cfg.timeout,
	})
	if err != nil {
		return nil, wrapError(err)
	}

	return &Client{apiClient: apiClient}, nil
}

// BaseURL returns the configured API base URL.
func (c *Client) BaseURL() string {
	return c.apiClient.BaseURL()
}

// setNowFunc pins the signing timestamp source. Test hook.
func (c *Client) setNowFunc(now func() time.Time) {
	c.apiClient.SetNowFunc(now)
}

// GetAccount retrieves the account that owns the API token.
func (c *Client) GetAccount(ctx context.Context) (*Account, error) {
	info, err := c.apiClient.GetAccount(ctx)
	if err != nil {
		return nil, wrapError(err)
	}
	return accountFromAPI(info), nil
}

// UpdateAccount updates account fields. Empty fields are left unchanged.
func (c *Client) UpdateAccount(ctx context.Context, name, email string) (*Account, error) {
	info, err := c.apiClient.UpdateAccount(ctx, name, email)
	if err != nil {
		return nil, wrapError(err)
	}
	return accountFromAPI(info), nil
}

// AccountBalance retrieves the aggregate balance per asset across all
// addresses of the account.
func (c *Client) AccountBalance(ctx context.Context) ([]Balance, error) {
	balances, err := c.apiClient.GetAccountBalance(ctx)
	if err != nil {
		return nil, wrapError(err)
	}
	out := make([]Balance, len(balances))
	for i, b := range balances {
		out[i] = balanceFromAPI(b)
	}
	return out, nil
}
