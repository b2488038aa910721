package stratapay

import (
	"context"
	"time"

	"github.com/stratapay/client-go/internal/api"
)

// Address represents a receiving address managed by the service.
type Address struct {
	ID        string
	Label     string
	Address   string
	Asset     string
	Archived  bool
	CreatedAt time.Time
}

// CreateAddress creates a new receiving address with the given label.
func (c *Client) CreateAddress(ctx context.Context, label, asset string) (*Address, error) {
	addr, err := c.apiClient.CreateAddress(ctx, label, asset)
	if err != nil {
		return nil, wrapError(err)
	}
	return addressFromAPI(addr), nil
}

// ListAddresses lists all active addresses. Set includeArchived to also
// return archived ones.
func (c *Client) ListAddresses(ctx context.Context, includeArchived bool) ([]*Address, error) {
	addrs, err := c.apiClient.ListAddresses(ctx, includeArchived)
	if err != nil {
		return nil, wrapError(err)
	}
	out := make([]*Address, len(addrs))
	for i := range addrs {
		out[i] = addressFromAPI(&addrs[i])
	}
	return out, nil
}

// GetAddress retrieves a single address by label.
func (c *Client) GetAddress(ctx context.Context, label string) (*Address, error) {
	addr, err := c.apiClient.GetAddress(ctx, label)
	if err != nil {
		return nil, wrapError(err)
	}
	return addressFromAPI(addr), nil
}

// AddressBalance retrieves the balance of a single address.
func (c *Client) AddressBalance(ctx context.Context, label string) (*Balance, error) {
	b, err := c.apiClient.GetAddressBalance(ctx, label)
	if err != nil {
		return nil, wrapError(err)
	}
	balance := balanceFromAPI(*b)
	return &balance, nil
}

// ArchiveAddress archives an address. Archived addresses keep their funds
// but are excluded from default listings.
func (c *Client) ArchiveAddress(ctx context.Context, label string) error {
	return wrapError(c.apiClient.ArchiveAddress(ctx, label))
}

func addressFromAPI(a *api.Address) *Address {
	return &Address{
		ID:        a.ID,
		Label:     a.Label,
		Address:   a.Address,
		Asset:     a.Asset,
		Archived:  a.Archived,
		CreatedAt: a.CreatedAt,
	}
}
